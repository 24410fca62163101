package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/orbits/parameter"
)

// Wave selects the generator behind a cue tone
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSawtooth
)

// Tone returns d worth of wave w at freq
// A frequency the rate cannot carry yields silence of the same length
func Tone(w Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	switch w {
	case WaveSquare:
		s, err = generators.SquareTone(rate, freq)
	case WaveSawtooth:
		s, err = generators.SawtoothTone(rate, freq)
	default:
		s, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}

// Shape fades s in over attack and out over release, total is the stream length in samples
func Shape(s beep.Streamer, total int, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	att, rel := rate.N(attack), rate.N(release)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := gain(pos, total, att, rel)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// gain is the linear envelope level at sample pos
func gain(pos, total, att, rel int) float64 {
	g := 1.0
	if att > 0 && pos < att {
		g = float64(pos) / float64(att)
	}
	if left := total - pos; rel > 0 && left < rel {
		g = math.Min(g, float64(left)/float64(rel))
	}
	return math.Max(g, 0)
}

// note is a shaped tone of duration d
func note(w Wave, freq float64, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(w, freq, d, rate), rate.N(d), attack, release, rate)
}

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf, so zero gain is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateClickSound generates a short tick for an applied control
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := note(WaveSine, parameter.ClickSoundFreq, parameter.ClickSoundDuration,
		parameter.ClickSoundAttack, parameter.ClickSoundRelease, rate)
	return newVolume(s, cfg.level(CueClick))
}

// CreateBumpSound generates a dull thud for a request clamped at its limit
func CreateBumpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := note(WaveSquare, parameter.BumpSoundFreq, parameter.BumpSoundDuration,
		parameter.BumpSoundAttack, parameter.BumpSoundRelease, rate)
	return newVolume(s, cfg.level(CueBump))
}

// CreateToggleSound generates a two-note rise for a mode switch
func CreateToggleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ToggleSoundNoteDuration
	low := note(WaveSine, parameter.ToggleSoundLowFreq, d, parameter.ToggleSoundAttack, parameter.ToggleSoundRelease, rate)
	high := note(WaveSine, parameter.ToggleSoundHighFreq, d, parameter.ToggleSoundAttack, parameter.ToggleSoundRelease, rate)
	return newVolume(beep.Seq(low, high), cfg.level(CueToggle))
}

// CreateErrorSound generates a short harsh buzz for rejected input
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := note(WaveSawtooth, parameter.ErrorSoundFreq, parameter.ErrorSoundDuration,
		parameter.ErrorSoundAttack, parameter.ErrorSoundRelease, rate)
	return newVolume(s, cfg.level(CueError))
}

var cueBuilders = [cueTypeCount]func(*AudioConfig) beep.Streamer{
	CueClick:  CreateClickSound,
	CueBump:   CreateBumpSound,
	CueToggle: CreateToggleSound,
	CueError:  CreateErrorSound,
}

// GetCue returns the streamer for the given cue, nil for unknown cues
func GetCue(cue CueType, cfg *AudioConfig) beep.Streamer {
	if cue < 0 || cue >= cueTypeCount {
		return nil
	}
	return cueBuilders[cue](cfg)
}
