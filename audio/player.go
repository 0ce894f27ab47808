package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays notification tones through the system speaker. Every method
// is safe to call when the speaker could not be opened; it then does nothing
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	last        map[Alert]time.Time
	now         func() time.Time
}

// NewPlayer creates a player; cfg nil means DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		last:  make(map[Alert]time.Time),
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker open at %d Hz", p.cfg.SampleRate)
	return nil
}

// Cleanup silences pending tones and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Error plays the error buzz
func (p *Player) Error() { p.Play(AlertError) }

// Info plays the information chime
func (p *Player) Info() { p.Play(AlertInfo) }

// Play mixes the tone for a into the output
func (p *Player) Play(a Alert) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.admit(a) {
		return
	}
	s, err := tone(a, p.cfg)
	if err != nil {
		log.Printf("audio: build %s tone: %v", a, err)
		return
	}
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// admit rate-limits repeats of the same alert; caller holds p.mu
func (p *Player) admit(a Alert) bool {
	now := p.now()
	if prev, ok := p.last[a]; ok && now.Sub(prev) < p.cfg.MinGap {
		return false
	}
	p.last[a] = now
	return true
}
