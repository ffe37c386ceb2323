package mode

import (
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/event"
)

// Router interprets per-tick input for the current mode
// Mode changes go through the FSM; the Router never sets the mode directly
type Router struct {
	ctx *engine.GameContext

	// Look-up table: GameMode → handler
	modeLUT [3]func(frame core.InputFrame)
}

// NewRouter creates a router and installs it as the context's mode handler
func NewRouter(ctx *engine.GameContext) *Router {
	r := &Router{
		ctx: ctx,
	}

	r.modeLUT = [...]func(core.InputFrame){
		core.ModeMainMenu: r.handleMainMenu,
		core.ModePlaying:  r.handlePlaying,
		core.ModePaused:   r.handlePaused,
	}

	ctx.SetModeHandler(r)
	return r
}

// HandleInput routes one tick of input to the active mode
func (r *Router) HandleInput(frame core.InputFrame) {
	m := r.ctx.Mode()
	if int(m) < 0 || int(m) >= len(r.modeLUT) {
		return
	}
	r.modeLUT[m](frame)
}

// Selected returns the highlighted pause menu entry
func (r *Router) Selected() MenuOption {
	return MenuOption(r.ctx.World.Resource.Menu.Selected)
}

func (r *Router) handleMainMenu(frame core.InputFrame) {
	switch {
	case frame.JustPressed(core.IntentConfirm):
		r.ctx.SendModeEvent(event.EventGameStart)
	case frame.JustPressed(core.IntentCancel):
		r.ctx.RequestExit()
	}
}

func (r *Router) handlePlaying(frame core.InputFrame) {
	if frame.JustPressed(core.IntentCancel) {
		r.ctx.SendModeEvent(event.EventPauseToggle)
	}
}

func (r *Router) handlePaused(frame core.InputFrame) {
	if frame.JustPressed(core.IntentCancel) {
		r.ctx.SendModeEvent(event.EventPauseToggle)
		return
	}

	menu := r.ctx.World.Resource.Menu
	if frame.JustPressed(core.IntentMoveUp) {
		menu.Selected = wrapOption(menu.Selected, -1)
	}
	if frame.JustPressed(core.IntentMoveDown) {
		menu.Selected = wrapOption(menu.Selected, 1)
	}

	selected := r.Selected()
	if selected.Adjustable() {
		switch {
		case frame.JustPressed(core.IntentMoveLeft):
			r.adjustVolume(selected, -1)
		case frame.JustPressed(core.IntentMoveRight):
			r.adjustVolume(selected, 1)
		}
	}

	if frame.JustPressed(core.IntentConfirm) {
		if act := pauseMenu[selected].activate; act != nil {
			act(r)
		}
	}
}

func (r *Router) adjustVolume(o MenuOption, dir int) {
	ch, _ := o.Channel()
	audio := r.ctx.World.Resource.Audio

	v := stepVolume(audio.Volumes[ch], dir)
	if v == audio.Volumes[ch] {
		return
	}
	audio.Volumes[ch] = v
	r.ctx.World.PushEvent(event.EventVolumeChange, &event.VolumeChangePayload{Channel: ch, Volume: v})
}
