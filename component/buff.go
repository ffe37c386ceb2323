package component

// BuffType identifies a timed player modifier
type BuffType int

const (
	BuffMultiShot BuffType = iota
	BuffRapidFire
	BuffTypeCount
)

func (b BuffType) String() string {
	switch b {
	case BuffMultiShot:
		return "MultiShot"
	case BuffRapidFire:
		return "RapidFire"
	default:
		return "Unknown"
	}
}

// BuffTimer is one independently timed buff
type BuffTimer struct {
	Active    bool
	Remaining float64 // Seconds left while active
}

// Activate (re)starts the buff for duration seconds
func (b *BuffTimer) Activate(duration float64) {
	b.Active = true
	b.Remaining = duration
}

// Tick decrements the timer and reports whether the buff expired on this call
func (b *BuffTimer) Tick(dt float64) bool {
	if !b.Active {
		return false
	}
	b.Remaining -= dt
	if b.Remaining <= 0 {
		b.Active = false
		b.Remaining = 0
		return true
	}
	return false
}
