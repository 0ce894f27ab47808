package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the samples produced
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Expected stream to end")
	return nil
}

func TestSquareWave(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := newSquare(1000, 10*time.Millisecond, rate)

	samples := drain(t, s)
	if len(samples) != 80 {
		t.Fatalf("Expected 80 samples, got %d", len(samples))
	}
	for i, smp := range samples {
		if smp[0] != 1 && smp[0] != -1 {
			t.Errorf("Sample %d should be -1 or 1, got %f", i, smp[0])
		}
		if smp[0] != smp[1] {
			t.Errorf("Sample %d should be mono, got %v", i, smp)
		}
	}
	// 8 samples per period, half high
	if samples[0][0] != 1 || samples[4][0] != -1 {
		t.Errorf("Expected high then low half period, got %f and %f", samples[0][0], samples[4][0])
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := newSquare(0, time.Second, rate) // phase stays 0, constant 1
	e := newEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(t, e)
	if len(samples) != 100 {
		t.Fatalf("Expected envelope to cut at 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if got := samples[5][0]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected half volume mid attack, got %f", got)
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full volume in sustain, got %f", samples[50][0])
	}
	if got := samples[90][0]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected half volume mid release, got %f", got)
	}
}

func TestTones(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		alert Alert
		want  int
	}{
		{AlertError, rate.N(errorToneDuration)},
		{AlertInfo, 2 * rate.N(infoNoteDuration)},
	}
	for _, tt := range tests {
		t.Run(tt.alert.String(), func(t *testing.T) {
			s, err := tone(tt.alert, cfg)
			if err != nil {
				t.Fatalf("tone failed: %v", err)
			}
			samples := drain(t, s)
			if len(samples) != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, len(samples))
			}
			var peak float64
			for _, smp := range samples {
				peak = math.Max(peak, math.Abs(smp[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Expected audible peak within [-1, 1], got %f", peak)
			}
		})
	}
}

func TestToneMuted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000
	cfg.MasterVolume = 0

	for _, smp := range drain(t, errorTone(cfg)) {
		if smp[0] != 0 {
			t.Fatalf("Expected silence at zero volume, got %f", smp[0])
		}
	}
}
