package main

import (
	"github.com/lixenwraith/orbits/audio"
	"github.com/lixenwraith/orbits/input"
)

// cueFor picks the feedback sound for a dispatched control
func cueFor(in input.Intent, res input.Result) audio.CueType {
	if !res.Changed {
		return audio.CueBump
	}
	switch in.Type {
	case input.IntentTogglePause, input.IntentTogglePolicy, input.IntentToggleAutoFit, input.IntentToggleDebug:
		return audio.CueToggle
	default:
		return audio.CueClick
	}
}
