package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Channel default volumes in [0, 1]
const (
	DefaultMusicVolume     = 0.5
	DefaultShootVolume     = 0.5
	DefaultExplosionVolume = 0.5
	DefaultMasterVolume    = 1.0
)

// Shoot Sound
const (
	ShootSoundDuration = 60 * time.Millisecond
	ShootSoundStartHz  = 1400.0
	ShootSoundEndHz    = 500.0
)

// Explosion Sound
const (
	ExplosionSoundDuration = 350 * time.Millisecond
	ExplosionSoundBaseHz   = 70.0
)

// Background Track
const (
	MusicBPM          = 132
	MusicNoteDuration = time.Minute / MusicBPM / 2 // eighth notes
	MusicAmplitude    = 0.12
)
