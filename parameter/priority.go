package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer       = 10 // Input-driven movement and firing
	PriorityKinetic      = 20 // Move and prune after the player acts
	PrioritySpawn        = 30 // New enemies appear above the playfield, untouched by this tick's movement
	PriorityCombat       = 40 // After movement and spawning
	PriorityBuff         = 50 // Expiry after pickups
	PriorityProgression  = 60 // After kills are scored
	PriorityExplosion    = 70
	PriorityNotification = 80
	PriorityStatus       = 900 // After game logic, telemetry collection
)
