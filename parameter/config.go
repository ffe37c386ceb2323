package parameter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the static tuning block consumed by the simulation
// All durations are seconds, all distances pixels, all speeds pixels per second
type Config struct {
	Seed       uint64           `toml:"seed"`
	Playfield  PlayfieldConfig  `toml:"playfield"`
	Player     PlayerConfig     `toml:"player"`
	Projectile ProjectileConfig `toml:"projectile"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Scoring    ScoringConfig    `toml:"scoring"`
	PowerUp    PowerUpConfig    `toml:"powerup"`
	Effect     EffectConfig     `toml:"effect"`
}

type PlayfieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PlayerConfig struct {
	BaseSpeed       float64 `toml:"base_speed"`
	ShootCooldown   float64 `toml:"shoot_cooldown"`
	RapidFireFactor float64 `toml:"rapid_fire_factor"`
	StartingLives   int     `toml:"starting_lives"`
	MaxLives        int     `toml:"max_lives"`
}

type ProjectileConfig struct {
	PlayerSpeed     float64 `toml:"player_speed"`
	RapidFireSpeed  float64 `toml:"rapid_fire_speed"`
	EnemySpeed      float64 `toml:"enemy_speed"`
	MultiShotSpread float64 `toml:"multi_shot_spread"`
}

type EnemyConfig struct {
	Speed              float64 `toml:"speed"`
	SpawnInterval      float64 `toml:"spawn_interval"`
	SpawnStep          float64 `toml:"spawn_step"`
	SpawnLevelsPerStep int     `toml:"spawn_levels_per_step"`
	SpawnFloor         float64 `toml:"spawn_floor"`
	ShootInterval      float64 `toml:"shoot_interval"`
	FireOdds           int     `toml:"fire_odds"`
	RefireDelay        float64 `toml:"refire_delay"`

	// LegacyShootTiming compares the shoot timer against ShootInterval scaled by
	// the current tick's elapsed time, making the fire rate frame-rate dependent
	LegacyShootTiming bool `toml:"legacy_shoot_timing"`
}

type ScoringConfig struct {
	PointsPerKill  int `toml:"points_per_kill"`
	PointsPerLevel int `toml:"points_per_level"`
}

type PowerUpConfig struct {
	DropChance         int     `toml:"drop_chance"`
	FallSpeed          float64 `toml:"fall_speed"`
	PickupMargin       float64 `toml:"pickup_margin"`
	RapidFireDuration  float64 `toml:"rapid_fire_duration"`
	MultiShotDuration  float64 `toml:"multi_shot_duration"`
	DamageIncrement    float64 `toml:"damage_increment"`
	SpeedIncrement     float64 `toml:"speed_increment"`
	MaxSpeedMultiplier float64 `toml:"max_speed_multiplier"`
}

type EffectConfig struct {
	ExplosionLife    float64 `toml:"explosion_life"`
	NotificationLife float64 `toml:"notification_life"`
}

// DefaultConfig returns the built-in tuning
func DefaultConfig() *Config {
	return &Config{
		Seed: DefaultSeed,
		Playfield: PlayfieldConfig{
			Width:  PlayfieldWidth,
			Height: PlayfieldHeight,
		},
		Player: PlayerConfig{
			BaseSpeed:       PlayerBaseSpeed,
			ShootCooldown:   BaseShootCooldown,
			RapidFireFactor: RapidFireCooldownFactor,
			StartingLives:   StartingLives,
			MaxLives:        MaxLives,
		},
		Projectile: ProjectileConfig{
			PlayerSpeed:     PlayerProjectileSpeed,
			RapidFireSpeed:  RapidFireProjectileSpeed,
			EnemySpeed:      EnemyProjectileSpeed,
			MultiShotSpread: MultiShotSpread,
		},
		Enemy: EnemyConfig{
			Speed:              EnemySpeed,
			SpawnInterval:      SpawnIntervalBase,
			SpawnStep:          SpawnIntervalStep,
			SpawnLevelsPerStep: SpawnLevelsPerStep,
			SpawnFloor:         SpawnIntervalFloor,
			ShootInterval:      EnemyShootInterval,
			FireOdds:           EnemyFireOdds,
			RefireDelay:        EnemyRefireDelay,
		},
		Scoring: ScoringConfig{
			PointsPerKill:  PointsPerKill,
			PointsPerLevel: PointsPerLevel,
		},
		PowerUp: PowerUpConfig{
			DropChance:         DropChancePercent,
			FallSpeed:          PowerUpFallSpeed,
			PickupMargin:       PickupMargin,
			RapidFireDuration:  RapidFireDuration,
			MultiShotDuration:  MultiShotDuration,
			DamageIncrement:    DamageIncrement,
			SpeedIncrement:     SpeedIncrement,
			MaxSpeedMultiplier: MaxSpeedMultiplier,
		},
		Effect: EffectConfig{
			ExplosionLife:    ExplosionLife,
			NotificationLife: NotificationLife,
		},
	}
}

// DecodeConfig overlays a TOML document on the defaults
// Keys not present keep their default; unknown keys are rejected
func DecodeConfig(data string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a TOML config file
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := DecodeConfig(string(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfig resolves the startup config: defaults or file, then environment, then Validate
// Empty path skips the file
func LoadConfig(path string, lookup LookupFunc) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfigFile(path); err != nil {
			return nil, err
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.ApplyEnvFrom(lookup); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes the config as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// String renders the config as TOML for logging
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return fmt.Sprintf("<config encode error: %v>", err)
	}
	return buf.String()
}

// Validate checks every field and reports all violations at once
func (c *Config) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...)))
	}

	if c.Playfield.Width < PlayerWidth || c.Playfield.Width < EnemyWidth+1 {
		bad("playfield.width", "must fit the player and an enemy, got %v", c.Playfield.Width)
	}
	if c.Playfield.Height < PlayerHeight+PlayerStartOffsetY {
		bad("playfield.height", "must be at least %d, got %v", PlayerHeight+PlayerStartOffsetY, c.Playfield.Height)
	}

	if c.Player.BaseSpeed <= 0 {
		bad("player.base_speed", "must be positive, got %v", c.Player.BaseSpeed)
	}
	if c.Player.ShootCooldown <= 0 {
		bad("player.shoot_cooldown", "must be positive, got %v", c.Player.ShootCooldown)
	}
	if c.Player.RapidFireFactor <= 0 || c.Player.RapidFireFactor > 1 {
		bad("player.rapid_fire_factor", "must be in (0, 1], got %v", c.Player.RapidFireFactor)
	}
	if c.Player.MaxLives < 1 {
		bad("player.max_lives", "must be at least 1, got %d", c.Player.MaxLives)
	}
	if c.Player.StartingLives < 1 || c.Player.StartingLives > c.Player.MaxLives {
		bad("player.starting_lives", "must be in [1, max_lives], got %d", c.Player.StartingLives)
	}

	if c.Projectile.PlayerSpeed <= 0 || c.Projectile.RapidFireSpeed <= 0 || c.Projectile.EnemySpeed <= 0 {
		bad("projectile", "speeds must be positive")
	}

	if c.Enemy.Speed <= 0 {
		bad("enemy.speed", "must be positive, got %v", c.Enemy.Speed)
	}
	if c.Enemy.SpawnFloor <= 0 || c.Enemy.SpawnInterval < c.Enemy.SpawnFloor {
		bad("enemy.spawn_interval", "must be at least spawn_floor > 0, got %v (floor %v)", c.Enemy.SpawnInterval, c.Enemy.SpawnFloor)
	}
	if c.Enemy.SpawnLevelsPerStep < 1 {
		bad("enemy.spawn_levels_per_step", "must be at least 1, got %d", c.Enemy.SpawnLevelsPerStep)
	}
	if c.Enemy.ShootInterval <= 0 {
		bad("enemy.shoot_interval", "must be positive, got %v", c.Enemy.ShootInterval)
	}
	if c.Enemy.FireOdds < 1 {
		bad("enemy.fire_odds", "must be at least 1, got %d", c.Enemy.FireOdds)
	}
	if c.Enemy.RefireDelay < 0 {
		bad("enemy.refire_delay", "must not be negative, got %v", c.Enemy.RefireDelay)
	}

	if c.Scoring.PointsPerKill < 0 {
		bad("scoring.points_per_kill", "must not be negative, got %d", c.Scoring.PointsPerKill)
	}
	if c.Scoring.PointsPerLevel <= 0 {
		bad("scoring.points_per_level", "must be positive, got %d", c.Scoring.PointsPerLevel)
	}

	if c.PowerUp.DropChance < 0 || c.PowerUp.DropChance > 100 {
		bad("powerup.drop_chance", "must be in [0, 100], got %d", c.PowerUp.DropChance)
	}
	if c.PowerUp.FallSpeed <= 0 {
		bad("powerup.fall_speed", "must be positive, got %v", c.PowerUp.FallSpeed)
	}
	if c.PowerUp.PickupMargin < 0 {
		bad("powerup.pickup_margin", "must not be negative, got %v", c.PowerUp.PickupMargin)
	}
	if c.PowerUp.MaxSpeedMultiplier < BaseSpeedMultiplier {
		bad("powerup.max_speed_multiplier", "must be at least %v, got %v", BaseSpeedMultiplier, c.PowerUp.MaxSpeedMultiplier)
	}
	if c.PowerUp.RapidFireDuration <= 0 || c.PowerUp.MultiShotDuration <= 0 {
		bad("powerup", "buff durations must be positive")
	}

	if c.Effect.ExplosionLife <= 0 || c.Effect.NotificationLife <= 0 {
		bad("effect", "lifetimes must be positive")
	}

	return errors.Join(errs...)
}
