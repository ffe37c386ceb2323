package engine

import (
	"bytes"
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/starlight-reaver/component"
	"github.com/lixenwraith/starlight-reaver/core"
)

// Snapshot is the read-only view of a world after a tick
// Consumed by the renderer, the soak runner, and determinism tests
type Snapshot struct {
	Frame   int64         `msgpack:"frame"`
	SimTime float64       `msgpack:"sim_time"`
	Mode    core.GameMode `msgpack:"mode"`

	Score int `msgpack:"score"`
	Level int `msgpack:"level"`

	Player PlayerView `msgpack:"player"`

	Enemies       []core.Rect        `msgpack:"enemies"`
	EnemyVariants []int              `msgpack:"enemy_variants"`
	Projectiles   []ProjectileView   `msgpack:"projectiles"`
	PowerUps      []PowerUpView      `msgpack:"powerups"`
	Explosions    []ExplosionView    `msgpack:"explosions"`
	Notifications []NotificationView `msgpack:"notifications"`

	MenuSelected int                        `msgpack:"menu_selected"`
	Volumes      [core.ChannelCount]float64 `msgpack:"volumes"`
}

type PlayerView struct {
	Bounds           core.Rect                        `msgpack:"bounds"`
	Lives            int                              `msgpack:"lives"`
	DamageMultiplier float64                          `msgpack:"damage"`
	SpeedMultiplier  float64                          `msgpack:"speed"`
	ShootCooldown    float64                          `msgpack:"cooldown"`
	Buffs            [component.BuffTypeCount]float64 `msgpack:"buffs"` // Remaining seconds, 0 when inactive
}

type ProjectileView struct {
	Bounds  core.Rect    `msgpack:"bounds"`
	Faction core.Faction `msgpack:"faction"`
}

type PowerUpView struct {
	Bounds core.Rect        `msgpack:"bounds"`
	Type   core.PowerUpType `msgpack:"type"`
}

type ExplosionView struct {
	Bounds   core.Rect `msgpack:"bounds"`
	Progress float64   `msgpack:"progress"`
}

type NotificationView struct {
	Message string  `msgpack:"message"`
	Alpha   float64 `msgpack:"alpha"`
}

// Snapshot captures the world state
func (w *World) Snapshot() Snapshot {
	res := w.Resource
	s := Snapshot{
		Frame:        res.Time.FrameNumber,
		SimTime:      res.Time.SimTime,
		Mode:         res.Game.Mode,
		Score:        res.Game.Score,
		Level:        res.Game.Level,
		MenuSelected: res.Menu.Selected,
		Volumes:      res.Audio.Volumes,
		Player: PlayerView{
			Bounds:           w.Player.Bounds,
			Lives:            w.Player.Lives,
			DamageMultiplier: w.Player.DamageMultiplier,
			SpeedMultiplier:  w.Player.SpeedMultiplier,
			ShootCooldown:    w.Player.ShootCooldown,
		},
	}
	for b := range w.Player.Buffs {
		if w.Player.Buffs[b].Active {
			s.Player.Buffs[b] = w.Player.Buffs[b].Remaining
		}
	}

	for _, e := range w.Enemies.Values() {
		s.Enemies = append(s.Enemies, e.Bounds)
		s.EnemyVariants = append(s.EnemyVariants, e.Variant)
	}
	for f := range w.Projectiles {
		for _, p := range w.Projectiles[f].Values() {
			s.Projectiles = append(s.Projectiles, ProjectileView{Bounds: p.Bounds, Faction: p.Faction})
		}
	}
	for _, p := range w.PowerUps.Values() {
		s.PowerUps = append(s.PowerUps, PowerUpView{Bounds: p.Bounds, Type: p.Type})
	}
	for _, e := range w.Explosions.Values() {
		s.Explosions = append(s.Explosions, ExplosionView{Bounds: e.Bounds, Progress: e.Progress()})
	}
	for _, n := range w.Notifications.Values() {
		s.Notifications = append(s.Notifications, NotificationView{Message: n.Message, Alpha: n.Alpha()})
	}
	return s
}

// Snapshot captures the context's world state
func (ctx *GameContext) Snapshot() Snapshot {
	return ctx.World.Snapshot()
}

// Encode serializes the snapshot to msgpack with sorted map keys
func (s *Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot parses a snapshot produced by Encode
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// Fingerprint hashes the encoded snapshot; equal fingerprints imply equal worlds
func (s *Snapshot) Fingerprint() (uint64, error) {
	data, err := s.Encode()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64(), nil
}
