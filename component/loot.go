package component

import "github.com/lixenwraith/starlight-reaver/core"

// PowerUpComponent is a falling pickup
// Fall speed is a config constant, not stored per pickup
type PowerUpComponent struct {
	Type   core.PowerUpType
	Bounds core.Rect
}
