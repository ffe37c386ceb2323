package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Finalizer restores the terminal before crash output is printed
type Finalizer interface {
	Fini()
}

var crashScreen Finalizer

// SetCrashScreen registers the screen to finalize on panic
func SetCrashScreen(f Finalizer) {
	crashScreen = f
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if crashScreen != nil {
		crashScreen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
