package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/starlight-reaver/event"
)

type testCtx struct {
	log     []string
	emitted []*EmitEventArgs
	open    bool
}

func newTestMachine(t *testing.T, cfg string) (*Machine[*testCtx], *testCtx) {
	t.Helper()
	m := NewMachine[*testCtx]()
	m.RegisterAction("Log", func(c *testCtx, args any) {
		c.log = append(c.log, "log")
	})
	m.RegisterAction(ActionEmitEvent, func(c *testCtx, args any) {
		a := args.(*EmitEventArgs)
		c.emitted = append(c.emitted, a)
		c.log = append(c.log, event.GetEventName(a.Type))
	})
	m.RegisterGuard("Open", func(c *testCtx) bool { return c.open })

	if err := m.LoadConfig([]byte(cfg)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	ctx := &testCtx{}
	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return m, ctx
}

const hierarchyConfig = `
initial = "Menu"

[states.Menu]
transitions = [{ trigger = "EventGameStart", target = "Run" }]

[states.Session]
on_enter = [{ action = "EmitEvent", event = "EventMusicStart", payload = { bpm = 90 } }]
on_exit = [{ action = "EmitEvent", event = "EventMusicStop" }]

[states.Run]
parent = "Session"
transitions = [
    { trigger = "EventPauseToggle", target = "Hold" },
    { trigger = "Tick", target = "Menu", guard = "Open" },
]

[states.Hold]
parent = "Session"
on_enter = [{ action = "EmitEvent", event = "EventMusicPause" }]
on_exit = [{ action = "EmitEvent", event = "EventMusicResume" }]
transitions = [{ trigger = "EventPauseToggle", target = "Run" }]
`

func TestMachineInitialState(t *testing.T) {
	m, _ := newTestMachine(t, hierarchyConfig)
	if m.ActiveStateName() != "Menu" {
		t.Errorf("Expected initial state Menu, got %s", m.ActiveStateName())
	}
}

func TestMachineEnterThroughParent(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyConfig)

	if !m.HandleEvent(ctx, event.EventGameStart) {
		t.Fatal("Expected EventGameStart to transition")
	}
	if m.ActiveStateName() != "Run" {
		t.Fatalf("Expected Run, got %s", m.ActiveStateName())
	}
	if !m.IsActive("Session") {
		t.Error("Expected Session on active path")
	}
	if len(ctx.emitted) != 1 || ctx.emitted[0].Type != event.EventMusicStart {
		t.Fatalf("Expected single EventMusicStart, got %v", ctx.log)
	}
	p, ok := ctx.emitted[0].Payload.(*event.MusicStartPayload)
	if !ok || p.BPM != 90 {
		t.Errorf("Expected decoded payload bpm=90, got %#v", ctx.emitted[0].Payload)
	}
}

func TestMachineSiblingTransitionSkipsParent(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyConfig)
	m.HandleEvent(ctx, event.EventGameStart)
	ctx.log = nil

	m.HandleEvent(ctx, event.EventPauseToggle)
	m.HandleEvent(ctx, event.EventPauseToggle)

	want := []string{"EventMusicPause", "EventMusicResume"}
	if strings.Join(ctx.log, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, ctx.log)
	}
	if m.ActiveStateName() != "Run" {
		t.Errorf("Expected Run, got %s", m.ActiveStateName())
	}
}

func TestMachineExitOrder(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyConfig)
	m.HandleEvent(ctx, event.EventGameStart)
	m.HandleEvent(ctx, event.EventPauseToggle)
	ctx.log = nil

	// Tick guard only exists on Run; from Hold it must not fire
	ctx.open = true
	m.Update(ctx, time.Millisecond)
	if m.ActiveStateName() != "Hold" {
		t.Fatalf("Tick transition fired from wrong state: %s", m.ActiveStateName())
	}

	m.HandleEvent(ctx, event.EventPauseToggle)
	ctx.log = nil
	m.Update(ctx, time.Millisecond)

	if m.ActiveStateName() != "Menu" {
		t.Fatalf("Expected guarded Tick to reach Menu, got %s", m.ActiveStateName())
	}
	if strings.Join(ctx.log, ",") != "EventMusicStop" {
		t.Errorf("Expected only Session exit action, got %v", ctx.log)
	}
}

func TestMachineGuardBlocks(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyConfig)
	m.HandleEvent(ctx, event.EventGameStart)

	m.Update(ctx, 10*time.Millisecond)
	if m.ActiveStateName() != "Run" {
		t.Errorf("Expected closed guard to hold Run, got %s", m.ActiveStateName())
	}
	if m.TimeInState() != 10*time.Millisecond {
		t.Errorf("Expected 10ms in state, got %v", m.TimeInState())
	}
}

func TestMachineUnhandledEvent(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyConfig)
	if m.HandleEvent(ctx, event.EventPauseToggle) {
		t.Error("Expected EventPauseToggle to be ignored in Menu")
	}
	if m.HandleEvent(ctx, event.EventTick) {
		t.Error("Expected EventTick to be rejected by HandleEvent")
	}
}

func TestMachineReset(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyConfig)
	m.HandleEvent(ctx, event.EventGameStart)
	ctx.log = nil

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if m.ActiveStateName() != "Menu" {
		t.Errorf("Expected Menu after reset, got %s", m.ActiveStateName())
	}
	if len(ctx.log) != 1 || ctx.log[0] != "EventMusicStop" {
		t.Errorf("Expected Session exit on reset, got %v", ctx.log)
	}
}

func TestMachineOnTransition(t *testing.T) {
	m, ctx := newTestMachine(t, hierarchyConfig)
	var from, to string
	m.OnTransition = func(_ *testCtx, f, t StateID) {
		from, to = m.StateName(f), m.StateName(t)
	}
	m.HandleEvent(ctx, event.EventGameStart)
	if from != "Menu" || to != "Run" {
		t.Errorf("Expected Menu -> Run, got %s -> %s", from, to)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  string
		want string
	}{
		{"no initial", `[states.A]`, "no initial state"},
		{"missing initial", `initial = "B"
[states.A]`, "initial state 'B' not found"},
		{"unknown parent", `initial = "A"
[states.A]
parent = "Ghost"`, "unknown parent"},
		{"unknown target", `initial = "A"
[states.A]
transitions = [{ trigger = "EventGameStart", target = "Nowhere" }]`, "unknown target"},
		{"unknown event", `initial = "A"
[states.A]
transitions = [{ trigger = "EventFly", target = "A" }]`, "unknown event type"},
		{"unknown guard", `initial = "A"
[states.A]
transitions = [{ trigger = "Tick", target = "A", guard = "Maybe" }]`, "unknown guard"},
		{"unknown action", `initial = "A"
[states.A]
on_enter = [{ action = "Dance" }]`, "unknown action"},
		{"emit without event", `initial = "A"
[states.A]
on_enter = [{ action = "EmitEvent" }]`, "requires 'event'"},
		{"bad payload key", `initial = "A"
[states.A]
on_enter = [{ action = "EmitEvent", event = "EventMusicStart", payload = { tempo = 1 } }]`, "unknown payload key"},
		{"parent cycle", `initial = "A"
[states.A]
parent = "B"
[states.B]
parent = "A"`, "cycle"},
		{"malformed", `initial = `, "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*testCtx]()
			m.RegisterAction(ActionEmitEvent, func(*testCtx, any) {})
			err := m.LoadConfig([]byte(tt.cfg))
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
