package parameter

// Notifications
const (
	// NotificationLife in seconds
	NotificationLife = 2.0

	// NotificationFadeStart is the remaining life below which alpha fades linearly
	NotificationFadeStart = 1.0
)

// Pause Menu
const (
	VolumeStep = 0.1
)
