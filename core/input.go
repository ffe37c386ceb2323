package core

// Intent is a device-independent player action
type Intent uint8

const (
	IntentMoveUp Intent = iota
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentShoot
	IntentConfirm
	IntentCancel
	IntentCount
)

func (i Intent) String() string {
	switch i {
	case IntentMoveUp:
		return "up"
	case IntentMoveDown:
		return "down"
	case IntentMoveLeft:
		return "left"
	case IntentMoveRight:
		return "right"
	case IntentShoot:
		return "shoot"
	case IntentConfirm:
		return "confirm"
	case IntentCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// InputFrame is one tick of already-debounced input
// Pressed holds edges (went down this frame), Held holds levels (down now)
// Menu navigation uses the directional intents as edges
type InputFrame struct {
	Pressed [IntentCount]bool
	Held    [IntentCount]bool
}

// Press marks an intent as both pressed this frame and held
func (f *InputFrame) Press(i Intent) {
	f.Pressed[i] = true
	f.Held[i] = true
}

// Hold marks an intent as held without a new edge
func (f *InputFrame) Hold(i Intent) {
	f.Held[i] = true
}

// JustPressed reports an edge for i
func (f InputFrame) JustPressed(i Intent) bool {
	return f.Pressed[i]
}

// IsHeld reports whether i is down
func (f InputFrame) IsHeld(i Intent) bool {
	return f.Held[i]
}
