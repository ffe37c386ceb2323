package engine

import (
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/status"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// Resource holds singleton game resources, initialized during GameContext creation, accessed via World.Resource
type Resource struct {
	Time   *TimeResource
	Config *parameter.Config
	Game   *GameStateResource
	Input  *InputResource
	Event  *EventQueueResource
	Random *RandomResource
	Menu   *MenuResource
	Audio  *AudioResource

	// Telemetry
	Status *status.Registry
}

// TimeResource wraps time data for systems
// Updated by GameContext at the start of every tick
type TimeResource struct {
	// DeltaTime is the elapsed seconds handed to this tick
	DeltaTime float64

	// SimTime is total gameplay seconds; frozen outside Playing
	SimTime float64

	// FrameNumber is the current tick count
	FrameNumber int64
}

// GameStateResource is the session's progression and spawner bookkeeping
type GameStateResource struct {
	Mode core.GameMode

	Score int // Non-decreasing within a session
	Level int // Derived from Score

	SpawnTimer      float64 // Seconds since the last enemy spawn
	EnemyShootTimer float64 // Seconds since the last enemy fire roll

	ExitRequested bool
}

// InputResource is the current tick's input
type InputResource struct {
	Frame core.InputFrame
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// RandomResource is the world's injectable random source
type RandomResource struct {
	Source vmath.Random

	// NewDropSource builds a per-enemy pickup-drop source at spawn
	// Default derives a FastRand seeded from Source
	NewDropSource func() vmath.Random
}

// MenuResource is pause menu state that survives across pauses
type MenuResource struct {
	Selected int
}

// AudioResource holds channel volumes and the audio collaborator
type AudioResource struct {
	Volumes [core.ChannelCount]float64
	Player  AudioPlayer
}

// AudioPlayer is the audio collaborator boundary
// Implementations must not block the tick
type AudioPlayer interface {
	PlaySound(s core.SoundType)
	StartMusic(bpm int)
	StopMusic()
	PauseMusic()
	ResumeMusic()
	SetVolume(ch core.AudioChannel, volume float64)
}

// Volume returns a channel volume
func (a *AudioResource) Volume(ch core.AudioChannel) float64 {
	return a.Volumes[ch]
}
