package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive cues, key repeat would otherwise stack them
	MinSoundGap = 40 * time.Millisecond

	// AudioMasterVolume is the default master gain in [0, 1]
	AudioMasterVolume = 0.5
)

// Click cue, a state change was applied
const (
	ClickSoundDuration = 30 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 20 * time.Millisecond
	ClickSoundFreq     = 1200.0 // Hz
)

// Bump cue, request hit a limit and changed nothing
const (
	BumpSoundDuration = 60 * time.Millisecond
	BumpSoundAttack   = 5 * time.Millisecond
	BumpSoundRelease  = 40 * time.Millisecond
	BumpSoundFreq     = 220.0 // Hz
)

// Toggle cue, two rising notes
const (
	ToggleSoundNoteDuration = 50 * time.Millisecond
	ToggleSoundAttack       = 3 * time.Millisecond
	ToggleSoundRelease      = 30 * time.Millisecond
	ToggleSoundLowFreq      = 660.0 // Hz
	ToggleSoundHighFreq     = 880.0 // Hz
)

// Error cue, rejected input
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
	ErrorSoundFreq     = 100.0 // Hz
)
