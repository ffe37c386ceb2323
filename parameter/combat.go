package parameter

// Projectile body
const (
	ProjectileWidth  = 4
	ProjectileHeight = 8
)

// Projectile speeds in pixels per second
const (
	PlayerProjectileSpeed    = 400.0
	RapidFireProjectileSpeed = 600.0
	EnemyProjectileSpeed     = 300.0

	// MultiShotSpread is the horizontal speed of the angled multi-shot projectiles
	MultiShotSpread = 200.0
)

// Multi-shot muzzle offsets from the player's left edge
const (
	MultiShotLeftOffset  = 4
	MultiShotRightInset  = 8 // measured from the right edge
	CenterMuzzleHalfSize = ProjectileWidth / 2
)

// Scoring
const (
	PointsPerKill  = 100
	PointsPerLevel = 1000
)

// Explosion
const (
	// ExplosionLife in seconds
	ExplosionLife = 0.3
)
