package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and synthesizes the game's audio cues. Every
// tone is generated; no audio files are read.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. On failure the manager stays silent and
// every cue becomes a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// PlayJump plays a short blip for the jump impulse.
func (m *Manager) PlayJump() {
	m.play(440, time.Millisecond*60)
}

// PlayStomp plays a higher blip for a defeated enemy.
func (m *Manager) PlayStomp() {
	m.play(880, time.Millisecond*80)
}

// PlayReset plays a low tone when the player is sent back to spawn.
func (m *Manager) PlayReset() {
	m.play(180, time.Millisecond*200)
}

func (m *Manager) play(freq float64, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Add(beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, freq)))
}

// ToneGenerator produces a sine tone with a short attack envelope so cues
// start without clicking.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t)

		envelope := math.Min(t/0.005, 1.0)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
