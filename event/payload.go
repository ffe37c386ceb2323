package event

import "github.com/lixenwraith/starlight-reaver/core"

// SoundRequestPayload selects an effect to play
type SoundRequestPayload struct {
	SoundType core.SoundType `toml:"sound_type"`
}

// MusicStartPayload configures the background track
type MusicStartPayload struct {
	BPM int `toml:"bpm"` // 0 keeps the default tempo
}

// VolumeChangePayload carries the new absolute volume of a channel
type VolumeChangePayload struct {
	Channel core.AudioChannel `toml:"channel"`
	Volume  float64           `toml:"volume"` // [0, 1]
}

// DamageCause identifies what cost the player a life
type DamageCause int

const (
	CauseEnemyEscaped DamageCause = iota
	CauseEnemyProjectile
	CauseEnemyCollision
)

func (c DamageCause) String() string {
	switch c {
	case CauseEnemyEscaped:
		return "escaped"
	case CauseEnemyProjectile:
		return "projectile"
	case CauseEnemyCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// EnemyDestroyedPayload describes a kill
type EnemyDestroyedPayload struct {
	Faction core.Faction
	Pos     core.Vec2
	Dropped bool
}

// PlayerDamagedPayload describes a lost life
type PlayerDamagedPayload struct {
	Cause     DamageCause
	LivesLeft int
}

// PowerUpCollectedPayload describes a pickup
type PowerUpCollectedPayload struct {
	Type    core.PowerUpType
	Applied bool // False when the pickup was consumed without effect
}

// LevelChangedPayload carries the new level
type LevelChangedPayload struct {
	Level int
}
