package fsm

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/starlight-reaver/event"
)

// ActionEmitEvent is the built-in action name whose args are compiled from the event registry
const ActionEmitEvent = "EmitEvent"

// fileConfig is the TOML layout of a machine
type fileConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*stateConfig `toml:"states"`
}

type stateConfig struct {
	Parent      string             `toml:"parent,omitempty"`
	OnEnter     []actionConfig     `toml:"on_enter,omitempty"`
	OnUpdate    []actionConfig     `toml:"on_update,omitempty"`
	OnExit      []actionConfig     `toml:"on_exit,omitempty"`
	Transitions []transitionConfig `toml:"transitions,omitempty"`
}

type transitionConfig struct {
	Trigger string `toml:"trigger"` // Event name or "Tick"
	Target  string `toml:"target"`
	Guard   string `toml:"guard,omitempty"`
}

type actionConfig struct {
	Action  string         `toml:"action"`
	Event   string         `toml:"event,omitempty"`   // EmitEvent only
	Payload map[string]any `toml:"payload,omitempty"` // EmitEvent only, decoded into the event's payload struct
}

// LoadConfig replaces the graph with the one described by a TOML document
// Every state, guard, action and event reference is resolved here so a
// loaded machine cannot fail at runtime on a bad name
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config fileConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown FSM config key '%s'", undecoded[0])
	}

	m.resetGraph()

	// Sorted names give stable IDs across loads
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	// Pass 1: allocate IDs so parents and targets may be declared in any order
	for _, name := range names {
		if _, err := m.addState(name, StateNone); err != nil {
			return err
		}
	}

	// Pass 2: parents, actions, transitions
	for _, name := range append([]string{"Root"}, names...) {
		cfg := config.States[name]
		if cfg == nil {
			continue // Root without a table
		}
		node := m.nodes[m.byName[name]]

		if name != "Root" {
			pName := cfg.Parent
			if pName == "" {
				pName = "Root"
			}
			parentID, ok := m.byName[pName]
			if !ok {
				return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
			}
			node.ParentID = parentID
		}

		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if node.Transitions, err = m.compileTransitions(cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.compilePaths(); err != nil {
		return err
	}

	if config.InitialState == "" {
		return fmt.Errorf("FSM config has no initial state")
	}
	initialID, ok := m.byName[config.InitialState]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID
	return nil
}

// LoadConfigFile loads FSM config from path
func (m *Machine[T]) LoadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read FSM config %s: %w", path, err)
	}
	if err := m.LoadConfig(data); err != nil {
		return fmt.Errorf("FSM config %s: %w", path, err)
	}
	return nil
}

// LoadConfigAuto loads FSM config from customPath when set, else from the embedded fallback
func (m *Machine[T]) LoadConfigAuto(customPath, embeddedFallback string) error {
	if customPath != "" {
		return m.LoadConfigFile(customPath)
	}
	return m.LoadConfig([]byte(embeddedFallback))
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	id, ok := m.byName[name]
	return id, ok
}

func (m *Machine[T]) compileActions(configs []actionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}

		var args any
		if cfg.Action == ActionEmitEvent {
			if cfg.Event == "" {
				return nil, fmt.Errorf("EmitEvent action requires 'event' field")
			}
			et, ok := event.GetEventType(cfg.Event)
			if !ok || et == event.EventTick {
				return nil, fmt.Errorf("unknown event type '%s'", cfg.Event)
			}
			payload := event.NewPayloadStruct(et)
			if payload != nil && cfg.Payload != nil {
				if err := decodePayload(cfg.Payload, payload); err != nil {
					return nil, fmt.Errorf("failed to decode payload for event '%s': %w", cfg.Event, err)
				}
			}
			args = &EmitEventArgs{
				Type:    et,
				Payload: payload,
			}
		}

		actions = append(actions, Action[T]{
			Func: fn,
			Args: args,
		})
	}
	return actions, nil
}

// decodePayload maps a generic TOML table onto a typed payload struct
// Unknown keys are rejected so typos in config fail at load time
func decodePayload(src map[string]any, dst any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(src); err != nil {
		return err
	}
	md, err := toml.Decode(buf.String(), dst)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown payload key '%s'", undecoded[0])
	}
	return nil
}

func (m *Machine[T]) compileTransitions(configs []transitionConfig) ([]Transition[T], error) {
	out := make([]Transition[T], 0, len(configs))
	for _, cfg := range configs {
		targetID, ok := m.byName[cfg.Target]
		if !ok || targetID == StateRoot {
			return nil, fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		eventType, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return nil, fmt.Errorf("unknown event type '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			if guard, ok = m.guardReg[cfg.Guard]; !ok {
				return nil, fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		out = append(out, Transition[T]{TargetID: targetID, Event: eventType, Guard: guard})
	}
	return out, nil
}
