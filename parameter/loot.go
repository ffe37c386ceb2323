package parameter

// Power-up drops
const (
	// DropChancePercent is the chance an enemy kill drops a power-up
	DropChancePercent = 30

	PowerUpWidth  = 15
	PowerUpHeight = 15

	// PowerUpFallSpeed in pixels per second (2 px per frame at 60 FPS)
	PowerUpFallSpeed = 120.0

	// PickupMargin enlarges the player box on every side for pickups
	PickupMargin = 20
)

// Buff durations in seconds
const (
	RapidFireDuration = 10.0
	MultiShotDuration = 5.0
)
