package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/starlight-reaver/event"
)

// StateID indexes a node; IDs are dense and assigned at load
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect with its compiled args
type ActionFunc[T any] func(ctx T, args any)

// Action is an ActionFunc bound to its load-time arguments
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// EmitEventArgs is the compiled argument of the EmitEvent action
type EmitEventArgs struct {
	Type    event.EventType
	Payload any
}

// Transition fires on Event (EventTick for per-update checks) when Guard passes
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType
	Guard    GuardFunc[T] // nil passes
}

// Node is one state; Path runs Root -> ... -> this node
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID
	Path     []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	Transitions []Transition[T]
}

// Machine is a hierarchical state machine over context T
// The graph is immutable after load; only the active path changes at runtime
type Machine[T any] struct {
	nodes  []*Node[T] // Index is StateID, slot 0 unused
	byName map[string]StateID

	InitialStateID StateID

	activeStateID StateID
	activePath    []StateID
	timeInState   time.Duration

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]

	// OnTransition runs after every completed state change
	OnTransition func(ctx T, from, to StateID)
}

// resetGraph drops every node and installs the implicit Root
func (m *Machine[T]) resetGraph() {
	m.nodes = []*Node[T]{nil}
	m.byName = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	m.addState("Root", StateNone)
}

// addState appends a node and returns its ID; names must be unique
func (m *Machine[T]) addState(name string, parentID StateID) (StateID, error) {
	if _, dup := m.byName[name]; dup {
		return StateNone, fmt.Errorf("duplicate state '%s'", name)
	}
	id := StateID(len(m.nodes))
	m.nodes = append(m.nodes, &Node[T]{ID: id, Name: name, ParentID: parentID})
	m.byName[name] = id
	return id, nil
}

func (m *Machine[T]) lookup(id StateID) (*Node[T], bool) {
	if id <= StateNone || int(id) >= len(m.nodes) {
		return nil, false
	}
	return m.nodes[id], true
}

// compilePaths resolves every node's Root path and rejects dangling parents or cycles
func (m *Machine[T]) compilePaths() error {
	for _, node := range m.nodes[1:] {
		var rev []StateID
		for curr := node; ; {
			rev = append(rev, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			if len(rev) >= len(m.nodes) {
				return fmt.Errorf("state '%s' is part of a parent cycle", node.Name)
			}
			parent, ok := m.lookup(curr.ParentID)
			if !ok {
				return fmt.Errorf("state '%s' references missing parent %d", curr.Name, curr.ParentID)
			}
			curr = parent
		}

		node.Path = make([]StateID, len(rev))
		for i, id := range rev {
			node.Path[len(rev)-1-i] = id
		}
	}
	return nil
}
