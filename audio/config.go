package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Alert identifies one of the notification tones
type Alert int

const (
	AlertError Alert = iota // Low buzz for error dialogs
	AlertInfo               // Two-note chime for information dialogs
	alertCount
)

// String returns the name used in CELLGUI_ALERT_VOLUMES
func (a Alert) String() string {
	switch a {
	case AlertError:
		return "error"
	case AlertInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Config holds alert player settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	Volumes      map[Alert]float64
	MinGap       time.Duration // same alert is dropped if repeated sooner
	SampleRate   int
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		Volumes: map[Alert]float64{
			AlertError: 0.8,
			AlertInfo:  0.6,
		},
		MinGap:     80 * time.Millisecond,
		SampleRate: 44100,
	}
}

// LoadConfig applies environment overrides to DefaultConfig
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("CELLGUI_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100
	if volume := os.Getenv("CELLGUI_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	// JSON object keyed by alert name, e.g. {"error":0.5}
	if vols := os.Getenv("CELLGUI_ALERT_VOLUMES"); vols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(vols), &volumes); err == nil {
			for a := Alert(0); a < alertCount; a++ {
				if v, ok := volumes[a.String()]; ok {
					cfg.Volumes[a] = clamp01(v)
				}
			}
		}
	}

	if rate := os.Getenv("CELLGUI_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
