package audio

// CueType represents the feedback sounds
type CueType int

const (
	CueClick  CueType = iota // State change applied
	CueBump                  // Request hit a limit
	CueToggle                // Mode switched
	CueError                 // Rejected input
	cueTypeCount
)

func (c CueType) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueBump:
		return "bump"
	case CueToggle:
		return "toggle"
	case CueError:
		return "error"
	default:
		return "unknown"
	}
}

// AudioConfig holds volume and format settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   [cueTypeCount]float64
}

// level is the effective gain of cue c
func (cfg *AudioConfig) level(c CueType) float64 {
	return cfg.CueVolumes[c] * cfg.MasterVolume
}
