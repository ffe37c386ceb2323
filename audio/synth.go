package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/starlight-reaver/parameter"
	"github.com/lixenwraith/starlight-reaver/vmath"
)

// sweep is a falling sine chirp with a linear fade, used for shots
type sweep struct {
	sr             beep.SampleRate
	startHz, endHz float64
	phase          float64
	pos, length    int
}

func newShootSound(sr beep.SampleRate) beep.Streamer {
	return &sweep{
		sr:      sr,
		startHz: parameter.ShootSoundStartHz,
		endHz:   parameter.ShootSoundEndHz,
		length:  sr.N(parameter.ShootSoundDuration),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.length)
		freq := s.startHz + (s.endHz-s.startHz)*progress
		v := 0.3 * (1 - progress) * math.Sin(2*math.Pi*s.phase)

		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// burst is decaying noise over a low rumble, used for explosions
type burst struct {
	sr          beep.SampleRate
	rng         *vmath.FastRand
	baseHz      float64
	pos, length int
}

func newExplosionSound(sr beep.SampleRate, seed uint64) beep.Streamer {
	return &burst{
		sr:     sr,
		rng:    vmath.NewFastRand(seed),
		baseHz: parameter.ExplosionSoundBaseHz,
		length: sr.N(parameter.ExplosionSoundDuration),
	}
}

func (b *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.length {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.sr)
		env := math.Exp(-t * 10)
		noise := float64(b.rng.Next()>>11)/float64(1<<53)*2 - 1
		rumble := math.Sin(2 * math.Pi * b.baseHz * t)
		v := env * (0.25*noise + 0.3*rumble)

		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *burst) Err() error { return nil }

// A-minor arpeggio, one entry per eighth note
var musicPattern = []float64{
	220.00, 261.63, 329.63, 440.00,
	329.63, 261.63, 196.00, 246.94,
	293.66, 392.00, 293.66, 246.94,
	174.61, 220.00, 261.63, 349.23,
}

// melody loops musicPattern forever at the given tempo
// Each note is a generators sine tone cut to one step with a short release
type melody struct {
	sr    beep.SampleRate
	step  int
	index int
	pos   int
	note  beep.Streamer
	amp   float64
}

func newMelody(sr beep.SampleRate, bpm int) *melody {
	if bpm <= 0 {
		bpm = parameter.MusicBPM
	}
	step := time.Minute / time.Duration(bpm) / 2
	return &melody{
		sr:   sr,
		step: sr.N(step),
		amp:  parameter.MusicAmplitude,
	}
}

func (m *melody) nextNote() {
	tone, err := generators.SineTone(m.sr, musicPattern[m.index])
	if err != nil {
		// Sample rate too low for the note; keep silence in its slot
		tone = beep.Silence(-1)
	}
	m.note = beep.Take(m.step, tone)
	m.index = (m.index + 1) % len(musicPattern)
	m.pos = 0
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if m.note == nil || m.pos >= m.step {
			m.nextNote()
		}
		want := min(len(samples)-n, m.step-m.pos)
		got, _ := m.note.Stream(samples[n : n+want])
		if got == 0 {
			// Note ended early; force the next one
			m.pos = m.step
			continue
		}
		for i := n; i < n+got; i++ {
			// Release over the last quarter of the step
			rel := float64(m.step-m.pos) / float64(m.step/4+1)
			env := m.amp * math.Min(rel, 1)
			samples[i][0] *= env
			samples[i][1] *= env
			m.pos++
		}
		n += got
	}
	return n, true
}

func (m *melody) Err() error { return nil }
