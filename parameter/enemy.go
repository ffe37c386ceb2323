package parameter

// Enemy body
const (
	EnemyWidth  = 32
	EnemyHeight = 32

	// EnemySpeed in pixels per second (2.5 px per frame at 60 FPS)
	EnemySpeed = 150.0

	// EnemyVariantCount is the number of visual variants picked at spawn
	EnemyVariantCount = 3
)

// Enemy Spawning
const (
	// SpawnIntervalBase in seconds at level 1
	SpawnIntervalBase = 1.0

	// SpawnIntervalStep is subtracted once per SpawnLevelsPerStep levels
	SpawnIntervalStep  = 0.1
	SpawnLevelsPerStep = 5

	// SpawnIntervalFloor is the minimum spawn interval in seconds
	SpawnIntervalFloor = 0.5
)

// Enemy Firing
const (
	// EnemyShootInterval in seconds between fire rolls (100 frames at 60 FPS)
	EnemyShootInterval = 100.0 / 60.0

	// EnemyFireOdds is the denominator of the per-enemy fire roll (1 in N)
	EnemyFireOdds = 3

	// EnemyRefireDelay is the minimum time between two shots of one enemy
	EnemyRefireDelay = 0.5
)
