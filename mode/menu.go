package mode

import (
	"math"

	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// MenuOption is one pause menu entry, in display order
type MenuOption int

const (
	OptionResume MenuOption = iota
	OptionMusicVolume
	OptionShootVolume
	OptionExplosionVolume
	OptionReturnToMenu
	OptionExit
	OptionCount
)

// optionDef is the behavior of a menu entry
// Adjustable entries bind a channel; actionable entries bind activate
type optionDef struct {
	label      string
	adjustable bool
	channel    core.AudioChannel
	activate   func(r *Router)
}

var pauseMenu = [OptionCount]optionDef{
	OptionResume: {
		label:    "Resume",
		activate: func(r *Router) { r.ctx.SendModeEvent(event.EventResume) },
	},
	OptionMusicVolume:     {label: "Music Volume", adjustable: true, channel: core.ChannelMusic},
	OptionShootVolume:     {label: "Shoot Volume", adjustable: true, channel: core.ChannelShoot},
	OptionExplosionVolume: {label: "Explosion Volume", adjustable: true, channel: core.ChannelExplosion},
	OptionReturnToMenu: {
		label:    "Return to Main Menu",
		activate: func(r *Router) { r.ctx.SendModeEvent(event.EventReturnToMenu) },
	},
	OptionExit: {
		label:    "Exit",
		activate: func(r *Router) { r.ctx.RequestExit() },
	},
}

func (o MenuOption) valid() bool {
	return o >= 0 && o < OptionCount
}

// Label is the display text of the entry
func (o MenuOption) Label() string {
	if !o.valid() {
		return ""
	}
	return pauseMenu[o].label
}

// Adjustable reports whether left/right change a value for this entry
func (o MenuOption) Adjustable() bool {
	return o.valid() && pauseMenu[o].adjustable
}

// Channel returns the volume channel of an adjustable entry
func (o MenuOption) Channel() (core.AudioChannel, bool) {
	if !o.Adjustable() {
		return 0, false
	}
	return pauseMenu[o].channel, true
}

// wrapOption moves the selection by delta, wrapping at both ends
func wrapOption(selected, delta int) int {
	n := int(OptionCount)
	return ((selected+delta)%n + n) % n
}

// stepVolume applies one adjustment step, clamped to [0,1] and snapped to the step grid
func stepVolume(v float64, dir int) float64 {
	v = vmath.Clamp(v+float64(dir)*parameter.VolumeStep, 0, 1)
	grid := math.Round(1 / parameter.VolumeStep)
	return math.Round(v*grid) / grid
}
