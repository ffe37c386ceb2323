package audio

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/starlight-reaver/parameter"
)

// Environment overrides
const (
	EnvAudioEnabled  = "STARLIGHT_AUDIO_ENABLED"
	EnvMasterVolume  = "STARLIGHT_MASTER_VOLUME" // 0-100
	EnvAudioRate     = "STARLIGHT_SAMPLE_RATE"
	EnvAudioBufferMs = "STARLIGHT_AUDIO_BUFFER_MS"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrDisabled       = errors.New("audio: disabled by configuration")
)

// Config holds output device settings
// Channel volumes are game state and live in the world, not here
type Config struct {
	Enabled        bool
	MasterVolume   float64
	SampleRate     int
	BufferDuration time.Duration
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:        true,
		MasterVolume:   parameter.DefaultMasterVolume,
		SampleRate:     parameter.AudioSampleRate,
		BufferDuration: parameter.AudioBufferDuration,
	}
}

// LoadConfig returns defaults with environment overrides applied
// Malformed values are ignored so audio problems never block startup
func LoadConfig() *Config {
	return LoadConfigFrom(os.LookupEnv)
}

// LoadConfigFrom resolves overrides through lookup
func LoadConfigFrom(lookup parameter.LookupFunc) *Config {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}

	if v, ok := lookup(EnvMasterVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = float64(n) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if v, ok := lookup(EnvAudioRate); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}

	if v, ok := lookup(EnvAudioBufferMs); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BufferDuration = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}

func (c *Config) String() string {
	return fmt.Sprintf("enabled=%t master=%.2f rate=%d buffer=%s",
		c.Enabled, c.MasterVolume, c.SampleRate, c.BufferDuration)
}
