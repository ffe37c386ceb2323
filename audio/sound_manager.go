package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starlight-reaver/core"
)

// speakerInit opens the output device; replaced in tests
var speakerInit = speaker.Init

// SoundManager renders game audio through the beep speaker
// Every channel is a sub-mixer behind its own volume stage; music is a single
// paused-or-playing Ctrl on the music channel
// All methods are safe to call before Initialize and after Close, they only
// update state that is applied once the speaker runs
type SoundManager struct {
	mu  sync.Mutex
	cfg *Config
	sr  beep.SampleRate

	master   *beep.Mixer
	channels [core.ChannelCount]*beep.Mixer
	gain     [core.ChannelCount]*effects.Volume
	volumes  [core.ChannelCount]float64

	music     *beep.Ctrl
	noiseSeed uint64

	initialized bool
}

// NewSoundManager creates a manager; nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sm := &SoundManager{
		cfg:       cfg,
		sr:        beep.SampleRate(cfg.SampleRate),
		master:    &beep.Mixer{},
		noiseSeed: 1,
	}
	for ch := range sm.channels {
		sm.channels[ch] = &beep.Mixer{}
		sm.gain[ch] = &effects.Volume{
			Streamer: sm.channels[ch],
			Base:     2,
		}
		sm.volumes[ch] = 1
		sm.applyGain(core.AudioChannel(ch))
		sm.master.Add(sm.gain[ch])
	}
	return sm
}

// Initialize opens the output device
// Returns ErrDisabled when audio is turned off; callers keep the manager as a
// silent player either way
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	if err := speakerInit(sm.sr, sm.sr.N(sm.cfg.BufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.sr, err)
	}
	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close stops all sound and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.music = nil
	for _, m := range sm.channels {
		m.Clear()
	}
	sm.initialized = false
}

// withSpeaker runs fn under the speaker lock when the speaker is running
// Caller holds sm.mu
func (sm *SoundManager) withSpeaker(fn func()) {
	if !sm.initialized {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}

// PlaySound fires a one-shot effect on its channel
func (sm *SoundManager) PlaySound(s core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var st beep.Streamer
	switch s {
	case core.SoundShoot:
		st = newShootSound(sm.sr)
	case core.SoundExplosion:
		sm.noiseSeed++
		st = newExplosionSound(sm.sr, sm.noiseSeed)
	default:
		return
	}

	ch := sm.channels[core.ChannelForSound(s)]
	sm.withSpeaker(func() { ch.Add(st) })
}

// StartMusic replaces any running track with a fresh loop at bpm
func (sm *SoundManager) StartMusic(bpm int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newMelody(sm.sr, bpm)}
	sm.withSpeaker(func() {
		if sm.music != nil {
			// A nil streamer makes the old Ctrl drain out of the mixer
			sm.music.Streamer = nil
		}
		sm.music = ctrl
		sm.channels[core.ChannelMusic].Add(ctrl)
	})
}

// StopMusic ends the current track
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	sm.withSpeaker(func() {
		sm.music.Streamer = nil
		sm.music = nil
	})
}

// PauseMusic freezes the track in place
func (sm *SoundManager) PauseMusic() {
	sm.setMusicPaused(true)
}

// ResumeMusic continues a paused track
func (sm *SoundManager) ResumeMusic() {
	sm.setMusicPaused(false)
}

func (sm *SoundManager) setMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	sm.withSpeaker(func() { sm.music.Paused = paused })
}

// MusicPlaying reports whether a track exists and is not paused
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return false
	}
	var playing bool
	sm.withSpeaker(func() { playing = !sm.music.Paused })
	return playing
}

// SetVolume sets a channel volume in [0, 1]
func (sm *SoundManager) SetVolume(ch core.AudioChannel, volume float64) {
	if ch < 0 || ch >= core.ChannelCount {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volumes[ch] = volume
	sm.withSpeaker(func() { sm.applyGain(ch) })
}

// Volume returns the last volume set on a channel
func (sm *SoundManager) Volume(ch core.AudioChannel) float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volumes[ch]
}

// applyGain maps linear channel volume times master onto the base-2 volume stage
func (sm *SoundManager) applyGain(ch core.AudioChannel) {
	g := sm.volumes[ch] * sm.cfg.MasterVolume
	v := sm.gain[ch]
	if g <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(g)
}
