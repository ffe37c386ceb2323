package game

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

const dt = 1.0 / 60.0

func newGame(t *testing.T, seed uint64, player engine.AudioPlayer) *Game {
	t.Helper()
	cfg := parameter.DefaultConfig()
	cfg.Seed = seed
	g, err := New(engine.Options{Config: cfg}, player)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func frame(pressed []core.Intent, held ...core.Intent) core.InputFrame {
	var f core.InputFrame
	for _, i := range pressed {
		f.Press(i)
	}
	for _, i := range held {
		f.Hold(i)
	}
	return f
}

// autopilot weaves left and right while firing
func autopilot(tick int) core.InputFrame {
	if (tick/90)%2 == 0 {
		return frame(nil, core.IntentShoot, core.IntentMoveLeft)
	}
	return frame(nil, core.IntentShoot, core.IntentMoveRight)
}

func start(t *testing.T, g *Game) {
	t.Helper()
	g.Tick(dt, frame([]core.Intent{core.IntentConfirm}))
	if g.Ctx.Mode() != core.ModePlaying {
		t.Fatalf("Expected Playing, got %v", g.Ctx.Mode())
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newGame(t, 42, nil)
	start(t, g)
	g.Ctx.World.Player.Lives = parameter.MaxLives
	for i := 0; i < 120; i++ {
		g.Tick(dt, autopilot(i))
	}
	g.Ctx.World.Player.Buffs[component.BuffMultiShot].Activate(3)

	g.Tick(dt, frame([]core.Intent{core.IntentCancel}))
	if g.Ctx.Mode() != core.ModePaused {
		t.Fatalf("Expected Paused, got %v", g.Ctx.Mode())
	}
	before := g.Snapshot()

	for i := 0; i < 500; i++ {
		g.Tick(dt, frame(nil, core.IntentShoot, core.IntentMoveRight))
	}
	after := g.Snapshot()

	if !reflect.DeepEqual(before.Enemies, after.Enemies) {
		t.Error("Enemies changed while paused")
	}
	if !reflect.DeepEqual(before.Projectiles, after.Projectiles) {
		t.Error("Projectiles changed while paused")
	}
	if before.Player != after.Player {
		t.Errorf("Player changed while paused: %+v -> %+v", before.Player, after.Player)
	}
	if before.SimTime != after.SimTime {
		t.Error("Simulation clock advanced while paused")
	}
}

func TestLivesDepletedMidTick(t *testing.T) {
	g := newGame(t, 7, nil)
	start(t, g)
	w := g.Ctx.World

	w.Player.Lives = 1
	pb := w.Player.Bounds
	w.Enemies.Add(w.CreateEntity(), component.EnemyComponent{
		Bounds: core.Rect{X: pb.X, Y: pb.Y - 10, Width: parameter.EnemyWidth, Height: parameter.EnemyHeight},
	})
	w.Resource.Game.Score = 1500

	g.Tick(dt, core.InputFrame{})

	if g.Ctx.Mode() != core.ModeMainMenu {
		t.Fatalf("Expected MainMenu by end of tick, got %v", g.Ctx.Mode())
	}
	if w.Player.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", w.Player.Lives)
	}

	// Menu ticks leave the final state visible
	g.Tick(dt, core.InputFrame{})
	if w.Resource.Game.Score != 1500 {
		t.Errorf("Score changed in menu: %d", w.Resource.Game.Score)
	}

	start(t, g)
	if w.EntityCount() != 0 {
		t.Errorf("Expected empty world on new game, got %d entities", w.EntityCount())
	}
	if w.Player.Lives != parameter.StartingLives || w.Resource.Game.Score != 0 || w.Resource.Game.Level != 1 {
		t.Errorf("Expected fresh session, got lives=%d score=%d level=%d",
			w.Player.Lives, w.Resource.Game.Score, w.Resource.Game.Level)
	}
}

func TestResumeIsNotReset(t *testing.T) {
	g := newGame(t, 3, nil)
	start(t, g)
	for i := 0; i < 200; i++ {
		g.Tick(dt, autopilot(i))
	}
	g.Ctx.World.Resource.Game.Score = 300

	g.Tick(dt, frame([]core.Intent{core.IntentCancel}))
	g.Tick(dt, frame([]core.Intent{core.IntentConfirm})) // Resume is selected by default
	if g.Ctx.Mode() != core.ModePlaying {
		t.Fatalf("Expected Playing after Resume, got %v", g.Ctx.Mode())
	}
	if g.Ctx.World.Resource.Game.Score != 300 {
		t.Errorf("Resume reset the session")
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() uint64 {
		g := newGame(t, 99, nil)
		start(t, g)
		for i := 0; i < 1200 && g.Ctx.Mode() == core.ModePlaying; i++ {
			g.Tick(dt, autopilot(i))
		}
		s := g.Snapshot()
		fp, err := s.Fingerprint()
		if err != nil {
			t.Fatalf("Fingerprint: %v", err)
		}
		return fp
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Same seed and input diverged: %x vs %x", a, b)
	}
}

func TestGameplayProducesOutcomes(t *testing.T) {
	g := newGame(t, 5, nil)
	start(t, g)
	for i := 0; i < 3600 && g.Ctx.Mode() == core.ModePlaying; i++ {
		g.Tick(dt, autopilot(i))
	}

	reg := g.Ctx.World.Resource.Status
	if reg.Ints.Get("enemy.spawned").Load() == 0 {
		t.Error("No enemies spawned in a minute of play")
	}
	if reg.Ints.Get("player.shots").Load() == 0 {
		t.Error("No shots fired while holding shoot")
	}
}

type cueCounter struct {
	sounds [core.SoundTypeCount]int
	starts int
}

func (c *cueCounter) PlaySound(s core.SoundType)           { c.sounds[s]++ }
func (c *cueCounter) StartMusic(int)                       { c.starts++ }
func (c *cueCounter) StopMusic()                           {}
func (c *cueCounter) PauseMusic()                          {}
func (c *cueCounter) ResumeMusic()                         {}
func (c *cueCounter) SetVolume(core.AudioChannel, float64) {}

func TestAudioCuesReachPlayer(t *testing.T) {
	cc := &cueCounter{}
	g := newGame(t, 11, cc)
	start(t, g)
	for i := 0; i < 60; i++ {
		g.Tick(dt, autopilot(i))
	}

	if cc.starts != 1 {
		t.Errorf("Expected music started once, got %d", cc.starts)
	}
	if cc.sounds[core.SoundShoot] == 0 {
		t.Error("Expected shoot cues while firing")
	}
}
