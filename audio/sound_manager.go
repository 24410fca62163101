package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orbits/parameter"
)

// speakerStart opens the output device and attaches the mixer, replaced in tests
var speakerStart = func(rate beep.SampleRate, mixer *beep.Mixer) error {
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// speakerLock guards the mixer against the speaker goroutine, replaced in tests
var (
	speakerLock   = speaker.Lock
	speakerUnlock = speaker.Unlock
)

// SoundManager plays control feedback cues through one mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlay    time.Time

	muted  atomic.Bool
	played atomic.Int64
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	// Endless silence keeps the mixer attached to the speaker between cues
	sm.mixer.Add(beep.Silence(-1))
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speakerStart(beep.SampleRate(sm.cfg.SampleRate), sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speakerLock()
	sm.mixer.Clear()
	sm.mixer.Add(beep.Silence(-1))
	speakerUnlock()
	sm.initialized = false
}

// Play queues a cue, dropped when muted, uninitialized or within MinSoundGap of the previous cue
func (sm *SoundManager) Play(cue CueType) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	now := time.Now()
	if now.Sub(sm.lastPlay) < parameter.MinSoundGap {
		return false
	}
	s := GetCue(cue, sm.cfg)
	if s == nil {
		return false
	}
	sm.lastPlay = now

	speakerLock()
	sm.mixer.Add(s)
	speakerUnlock()
	sm.played.Add(1)
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports whether cues are suppressed
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns the number of cues queued since creation
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Active returns the number of cues still streaming
func (sm *SoundManager) Active() int {
	speakerLock()
	defer speakerUnlock()
	return sm.mixer.Len() - 1
}
