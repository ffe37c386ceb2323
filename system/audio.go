package system

import (
	"github.com/lixenwraith/starlight-reaver/core"
	"github.com/lixenwraith/starlight-reaver/engine"
	"github.com/lixenwraith/starlight-reaver/event"
	"github.com/lixenwraith/starlight-reaver/parameter"
)

// AudioSystem forwards audio cues to the audio player after the tick completes
// It has no gameplay update; cues arrive through the event router
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	s := &AudioSystem{
		world: world,
	}
	s.Init()
	return s
}

// Init pushes the current channel volumes to the player
func (s *AudioSystem) Init() {
	a := s.world.Resource.Audio
	if a.Player == nil {
		return
	}
	for ch := core.AudioChannel(0); ch < core.ChannelCount; ch++ {
		a.Player.SetVolume(ch, a.Volume(ch))
	}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventMusicStart,
		event.EventMusicStop,
		event.EventMusicPause,
		event.EventMusicResume,
		event.EventVolumeChange,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	a := s.world.Resource.Audio
	player := a.Player
	if player == nil {
		return
	}

	switch ev.Type {
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			if a.Volume(core.ChannelForSound(payload.SoundType)) > 0 {
				player.PlaySound(payload.SoundType)
			}
		}

	case event.EventMusicStart:
		bpm := parameter.MusicBPM
		if payload, ok := ev.Payload.(*event.MusicStartPayload); ok && payload.BPM > 0 {
			bpm = payload.BPM
		}
		player.StartMusic(bpm)

	case event.EventMusicStop:
		player.StopMusic()

	case event.EventMusicPause:
		player.PauseMusic()

	case event.EventMusicResume:
		player.ResumeMusic()

	case event.EventVolumeChange:
		if payload, ok := ev.Payload.(*event.VolumeChangePayload); ok {
			player.SetVolume(payload.Channel, payload.Volume)
		}
	}
}
