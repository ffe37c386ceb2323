package parameter

// Player body
const (
	PlayerWidth  = 32
	PlayerHeight = 32

	// PlayerStartOffsetY is the spawn distance of the player's top edge from the playfield bottom
	PlayerStartOffsetY = 100

	// PlayerBaseSpeed in pixels per second before the speed multiplier
	PlayerBaseSpeed = 300.0
)

// Player Lives
const (
	StartingLives = 3
	MaxLives      = 5
)

// Player Attributes
const (
	BaseDamageMultiplier = 1.0
	DamageIncrement      = 0.5

	BaseSpeedMultiplier = 1.0
	SpeedIncrement      = 0.1
	MaxSpeedMultiplier  = 2.0
)

// Player Firing
const (
	// BaseShootCooldown in seconds between shots (15 frames at 60 FPS)
	BaseShootCooldown = 15.0 / 60.0

	// RapidFireCooldownFactor scales the cooldown while rapid-fire is active
	RapidFireCooldownFactor = 0.8
)
