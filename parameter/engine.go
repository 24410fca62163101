package parameter

import "time"

// Simulation loop timing
const (
	// FrameInterval is the real-time tick of the interactive front end (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// StepsPerTick is the default number of logical steps per real-time tick
	StepsPerTick = 1

	// MaxStepsPerTick bounds the configurable steps per tick
	MaxStepsPerTick = 1000

	// InputQueueSize is the buffered capacity of the key event channel
	InputQueueSize = 64
)

// Headless run defaults
const (
	// HeadlessSteps is the default number of steps for a batch run
	HeadlessSteps = 3650

	// SampleEvery is the default trajectory sampling stride for plots
	SampleEvery = 10
)
