package system

import (
	"testing"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
)

func TestPowerUpEffects(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(p *component.PlayerComponent)
		pu      core.PowerUpType
		applied bool
		message string
		check   func(t *testing.T, p *component.PlayerComponent)
	}{
		{
			name:    "health below max",
			pu:      core.PowerUpHealth,
			applied: true,
			message: "Health Increased!",
			check: func(t *testing.T, p *component.PlayerComponent) {
				if p.Lives != 4 {
					t.Errorf("Expected 4 lives, got %d", p.Lives)
				}
			},
		},
		{
			name:  "health at max",
			setup: func(p *component.PlayerComponent) { p.Lives = 5 },
			pu:    core.PowerUpHealth,
			check: func(t *testing.T, p *component.PlayerComponent) {
				if p.Lives != 5 {
					t.Errorf("Expected 5 lives, got %d", p.Lives)
				}
			},
		},
		{
			name:    "damage unbounded",
			setup:   func(p *component.PlayerComponent) { p.DamageMultiplier = 10 },
			pu:      core.PowerUpDamage,
			applied: true,
			message: "Damage Increased!",
			check: func(t *testing.T, p *component.PlayerComponent) {
				if p.DamageMultiplier != 10.5 {
					t.Errorf("Expected 10.5, got %v", p.DamageMultiplier)
				}
			},
		},
		{
			name:    "speed step",
			pu:      core.PowerUpSpeed,
			applied: true,
			message: "Speed Boost! Now x1.1",
		},
		{
			name:    "speed near cap",
			setup:   func(p *component.PlayerComponent) { p.SpeedMultiplier = 1.95 },
			pu:      core.PowerUpSpeed,
			applied: true,
			message: "Speed Boost! Now x2.0",
			check: func(t *testing.T, p *component.PlayerComponent) {
				if p.SpeedMultiplier != 2.0 {
					t.Errorf("Expected cap 2.0, got %v", p.SpeedMultiplier)
				}
			},
		},
		{
			name:  "speed at cap",
			setup: func(p *component.PlayerComponent) { p.SpeedMultiplier = 2.0 },
			pu:    core.PowerUpSpeed,
		},
		{
			name:    "rapid fire",
			pu:      core.PowerUpRapidFire,
			applied: true,
			message: "Rapid Fire Activated For 10 seconds!",
			check: func(t *testing.T, p *component.PlayerComponent) {
				if !p.Buffs[component.BuffRapidFire].Active || p.Buffs[component.BuffRapidFire].Remaining != 10 {
					t.Errorf("Expected rapid fire for 10s, got %+v", p.Buffs[component.BuffRapidFire])
				}
			},
		},
		{
			name:    "multi shot",
			pu:      core.PowerUpMultiShot,
			applied: true,
			message: "Multi-Shot Activated For 5 seconds!",
			check: func(t *testing.T, p *component.PlayerComponent) {
				if !p.Buffs[component.BuffMultiShot].Active || p.Buffs[component.BuffMultiShot].Remaining != 5 {
					t.Errorf("Expected multi-shot for 5s, got %+v", p.Buffs[component.BuffMultiShot])
				}
			},
		},
		{
			name: "unknown type",
			pu:   core.PowerUpTypeCount + 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newPlayingContext(t)
			w := ctx.World
			if tt.setup != nil {
				tt.setup(&w.Player)
			}

			applied := ApplyPowerUp(w, tt.pu)
			if applied != tt.applied {
				t.Errorf("Expected applied=%v, got %v", tt.applied, applied)
			}

			var msgs []string
			for _, n := range w.Notifications.Values() {
				msgs = append(msgs, n.Message)
			}
			if tt.message == "" && len(msgs) != 0 {
				t.Errorf("Expected no notification, got %v", msgs)
			}
			if tt.message != "" && (len(msgs) != 1 || msgs[0] != tt.message) {
				t.Errorf("Expected notification %q, got %v", tt.message, msgs)
			}
			if tt.check != nil {
				tt.check(t, &w.Player)
			}
		})
	}
}

func TestRapidFireCooldownRestored(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewBuffSystem(w)
	base := w.Resource.Config.Player.ShootCooldown

	ApplyPowerUp(w, core.PowerUpRapidFire)
	if !approx(w.Player.ShootCooldown, base*0.8) {
		t.Fatalf("Expected cooldown %v, got %v", base*0.8, w.Player.ShootCooldown)
	}

	for i := 0; i < 99; i++ {
		step(ctx, s, 0.1)
	}
	if !w.Player.Buffs[component.BuffRapidFire].Active {
		t.Fatal("Rapid fire expired early")
	}

	step(ctx, s, 0.2)
	if w.Player.Buffs[component.BuffRapidFire].Active {
		t.Fatal("Rapid fire did not expire")
	}
	if w.Player.ShootCooldown != base {
		t.Errorf("Expected base cooldown %v restored exactly, got %v", base, w.Player.ShootCooldown)
	}
}

func TestBuffsTimedIndependently(t *testing.T) {
	ctx := newPlayingContext(t)
	w := ctx.World
	s := NewBuffSystem(w)

	ApplyPowerUp(w, core.PowerUpRapidFire)
	ApplyPowerUp(w, core.PowerUpMultiShot)

	step(ctx, s, 6)
	if w.Player.Buffs[component.BuffMultiShot].Active {
		t.Error("Expected multi-shot expired after 6s")
	}
	if !w.Player.Buffs[component.BuffRapidFire].Active {
		t.Error("Rapid fire must outlive multi-shot")
	}
	if w.Player.ShootCooldown == w.Resource.Config.Player.ShootCooldown {
		t.Error("Multi-shot expiry must not restore the rapid-fire cooldown")
	}
}
