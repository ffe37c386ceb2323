package audio

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/starlight-reaver/core"
)

// Recorder is a silent player that logs every cue it receives
// Used by headless runs and tests in place of SoundManager
type Recorder struct {
	mu      sync.Mutex
	sounds  [core.SoundTypeCount]int
	cues    []string
	volumes [core.ChannelCount]float64
	keep    int
}

// NewRecorder keeps at most keep cue strings; counters are unbounded
func NewRecorder(keep int) *Recorder {
	return &Recorder{keep: keep}
}

func (r *Recorder) record(cue string) {
	if len(r.cues) >= r.keep {
		return
	}
	r.cues = append(r.cues, cue)
}

func (r *Recorder) PlaySound(s core.SoundType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s >= 0 && s < core.SoundTypeCount {
		r.sounds[s]++
	}
	r.record(fmt.Sprintf("sound:%d", s))
}

func (r *Recorder) StartMusic(bpm int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(fmt.Sprintf("music:start:%d", bpm))
}

func (r *Recorder) StopMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("music:stop")
}

func (r *Recorder) PauseMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("music:pause")
}

func (r *Recorder) ResumeMusic() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("music:resume")
}

func (r *Recorder) SetVolume(ch core.AudioChannel, volume float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch >= 0 && ch < core.ChannelCount {
		r.volumes[ch] = volume
	}
	r.record(fmt.Sprintf("volume:%s:%.1f", ch, volume))
}

// Sounds returns how many times s was played
func (r *Recorder) Sounds(s core.SoundType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sounds[s]
}

// Cues returns a copy of the recorded cue log
func (r *Recorder) Cues() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.cues))
	copy(out, r.cues)
	return out
}

// Volume returns the last volume set on ch
func (r *Recorder) Volume(ch core.AudioChannel) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.volumes[ch]
}
