package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/vmath"
)

// Environment overrides read by LoadAudioConfig
const (
	EnvAudioEnabled = "ORBITS_AUDIO_ENABLED"
	EnvMasterVolume = "ORBITS_MASTER_VOLUME" // percent, 0-100
	EnvCueVolumes   = "ORBITS_CUE_VOLUMES"   // JSON object keyed by cue name
	EnvSampleRate   = "ORBITS_SAMPLE_RATE"
)

// DefaultAudioConfig returns the built-in levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		CueVolumes: [cueTypeCount]float64{
			CueClick:  0.4,
			CueBump:   0.6,
			CueToggle: 0.5,
			CueError:  0.7,
		},
	}
}

// LoadAudioConfig applies environment overrides to the defaults
// Unparseable values are ignored
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if v, ok := envBool(EnvAudioEnabled); ok {
		cfg.Enabled = v
	}
	if v, ok := envInt(EnvMasterVolume); ok {
		cfg.MasterVolume = vmath.Clamp(float64(v)/100, 0, 1)
	}
	if v, ok := envInt(EnvSampleRate); ok && v > 0 {
		cfg.SampleRate = v
	}

	if raw := os.Getenv(EnvCueVolumes); raw != "" {
		var byName map[string]float64
		if json.Unmarshal([]byte(raw), &byName) == nil {
			for c := range cfg.CueVolumes {
				if v, ok := byName[CueType(c).String()]; ok {
					cfg.CueVolumes[c] = v
				}
			}
		}
	}

	return cfg
}

func envBool(key string) (bool, bool) {
	v, err := strconv.ParseBool(os.Getenv(key))
	return v, err == nil
}

func envInt(key string) (int, bool) {
	v, err := strconv.Atoi(os.Getenv(key))
	return v, err == nil
}
