package sfx

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneGeneratorStream(t *testing.T) {
	cases := []struct {
		name string
		freq float64
	}{
		{"reset", 180},
		{"jump", 440},
		{"stomp", 880},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewToneGenerator(sampleRate, c.freq)
			buf := make([][2]float64, 1024)
			n, ok := g.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("Stream returned n=%d ok=%t", n, ok)
			}

			peak := 0.0
			for i, s := range buf {
				if s[0] != s[1] {
					t.Fatalf("sample %d: channels differ: %v vs %v", i, s[0], s[1])
				}
				if a := math.Abs(s[0]); a > peak {
					peak = a
				}
			}
			if peak == 0 {
				t.Fatalf("generator produced silence")
			}
			if peak > 0.25+1e-9 {
				t.Fatalf("peak %v exceeds the amplitude bound", peak)
			}
		})
	}
}

func TestTakeLimitsCueLength(t *testing.T) {
	cue := beep.Take(sampleRate.N(time.Millisecond*60), NewToneGenerator(sampleRate, 440))

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := cue.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := sampleRate.N(time.Millisecond * 60); total != want {
		t.Fatalf("cue length = %d samples, want %d", total, want)
	}
}

func TestUninitializedManagerCuesAreNoOps(t *testing.T) {
	m := NewManager()

	// must not panic or touch the speaker
	m.PlayJump()
	m.PlayStomp()
	m.PlayReset()

	if m.initialized {
		t.Fatalf("manager should stay uninitialized")
	}
}
