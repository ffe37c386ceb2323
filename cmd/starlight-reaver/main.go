package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/lixenwraith/starlight-reaver/audio"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/game"
	"github.com/lixenwraith/starlight-reaver/input"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/render"
)

var (
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/ and show the status line")
	configFlag     = flag.String("config", "", "Tuning config TOML (defaults when empty)")
	fsmFlag        = flag.String("fsm", "", "Mode machine TOML (embedded default when empty)")
	keymapFlag     = flag.String("keymap", "", "Key bindings TOML merged over the defaults")
	envFlag        = flag.String("env", ".env", "Dotenv file loaded before environment overrides")
	seedFlag       = flag.Uint64("seed", 0, "Override the world seed (0 keeps the configured seed)")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the resolved config as TOML and exit")
)

// Keys shown on the debug status line
var statusKeys = []string{
	"engine.ticks", "game.score", "game.level", "player.lives",
	"entity.count", "enemy.killed", "powerup.collected", "player.last_hit",
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := godotenv.Load(*envFlag); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *envFlag, err)
		os.Exit(1)
	}

	cfg, err := parameter.LoadConfig(*configFlag, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	if *dumpConfigFlag {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		if keys, err = input.LoadKeyConfigFile(*keymapFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Keymap error: %v\n", err)
			os.Exit(1)
		}
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "starlight-reaver needs an interactive terminal; use reaver-soak for headless runs")
		os.Exit(1)
	}

	// Audio is optional; a manager that failed to open stays a silent player
	audioCfg := audio.LoadConfig()
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio unavailable (%s): %v", audioCfg, err)
	}
	defer sound.Close()

	g, err := game.New(engine.Options{Config: cfg, FSMPath: *fsmFlag}, sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build game: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	renderer := render.NewRenderer(screen, cfg.Playfield.Width, cfg.Playfield.Height)
	renderer.Debug = *debugFlag

	log.Printf("Starting: seed=%d playfield=%.0fx%.0f", cfg.Seed, cfg.Playfield.Width, cfg.Playfield.Height)
	run(g, screen, renderer, input.NewHoldTracker(keys))
	final := g.Snapshot()
	log.Printf("Exit at frame %d, score %d", final.Frame, final.Score)
}

// run drives the fixed-interval loop until the game requests exit or a hard-quit chord arrives
func run(g *game.Game, screen tcell.Screen, renderer *render.Renderer, tracker *input.HoldTracker) {
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()

	for !g.Done() {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.IsQuit(ev) {
					return
				}
				tracker.Observe(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			before := g.Ctx.Mode()
			g.Tick(dt.Seconds(), tracker.Frame(now))
			if g.Ctx.Mode() != before {
				// Holds from the previous mode must not leak into the next one
				tracker.Release()
			}

			snap := g.Snapshot()
			renderer.Render(&snap, g.Ctx.World.Resource.Status.Line(statusKeys...))
		}
	}
}
