package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	errorToneFreq     = 110.0
	errorToneDuration = 180 * time.Millisecond
	errorToneAttack   = 5 * time.Millisecond
	errorToneRelease  = 60 * time.Millisecond

	infoToneLow      = 659.25 // E5
	infoToneHigh     = 987.77 // B5
	infoNoteDuration = 90 * time.Millisecond
	infoToneAttack   = 3 * time.Millisecond
	infoToneRelease  = 50 * time.Millisecond
)

// square is a naive square wave of fixed length
type square struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newSquare(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &square{freq: freq, length: rate.N(d), rate: rate}
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// envelope shapes a stream with a linear attack and release and ends it
// after the given duration
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if rest := e.total - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less silences it since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// errorTone is a short harsh square buzz
func errorTone(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := newSquare(errorToneFreq, errorToneDuration, rate)
	shaped := newEnvelope(buzz, errorToneDuration, errorToneAttack, errorToneRelease, rate)
	return newVolume(shaped, 0.25*cfg.Volumes[AlertError]*cfg.MasterVolume)
}

// infoTone plays two rising sine notes
func infoTone(cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	note := func(freq float64) (beep.Streamer, error) {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, err
		}
		return newEnvelope(sine, infoNoteDuration, infoToneAttack, infoToneRelease, rate), nil
	}
	low, err := note(infoToneLow)
	if err != nil {
		return nil, err
	}
	high, err := note(infoToneHigh)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(low, high), 0.5*cfg.Volumes[AlertInfo]*cfg.MasterVolume), nil
}

// tone builds the streamer for a
func tone(a Alert, cfg *Config) (beep.Streamer, error) {
	switch a {
	case AlertError:
		return errorTone(cfg), nil
	case AlertInfo:
		return infoTone(cfg)
	default:
		return nil, nil
	}
}
