package parameter

import (
	"fmt"
	"os"
	"strconv"
)

// Environment overrides applied after file configuration
const (
	EnvSeed              = "STARLIGHT_SEED"
	EnvWidth             = "STARLIGHT_WIDTH"
	EnvHeight            = "STARLIGHT_HEIGHT"
	EnvStartingLives     = "STARLIGHT_STARTING_LIVES"
	EnvMaxLives          = "STARLIGHT_MAX_LIVES"
	EnvLegacyShootTiming = "STARLIGHT_LEGACY_SHOOT_TIMING"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv applies environment overrides from the process environment
func (c *Config) ApplyEnv() error {
	return c.ApplyEnvFrom(os.LookupEnv)
}

// ApplyEnvFrom applies overrides resolved through lookup
// A present but malformed value is an error
func (c *Config) ApplyEnvFrom(lookup LookupFunc) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvWidth, &c.Playfield.Width},
		{EnvHeight, &c.Playfield.Height},
	}
	for _, f := range floats {
		if v, ok := lookup(f.key); ok {
			val, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = val
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvStartingLives, &c.Player.StartingLives},
		{EnvMaxLives, &c.Player.MaxLives},
	}
	for _, i := range ints {
		if v, ok := lookup(i.key); ok {
			val, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", i.key, err)
			}
			*i.dst = val
		}
	}

	if v, ok := lookup(EnvLegacyShootTiming); ok {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLegacyShootTiming, err)
		}
		c.Enemy.LegacyShootTiming = val
	}

	return nil
}
