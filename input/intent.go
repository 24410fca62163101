package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the front end
	IntentQuit       // Esc, q, Ctrl+C
	IntentToggleMute // m

	// Run control
	IntentTogglePause   // Enter
	IntentStep          // 0
	IntentSubstepsUp    // 9
	IntentSubstepsDown  // 7
	IntentTogglePolicy  // s
	IntentTimescaleUp   // +
	IntentTimescaleDown // -

	// Camera
	IntentPan           // 8/4/6/2, arrows
	IntentZoomIn        // /
	IntentZoomOut       // *
	IntentFitNow        // 5
	IntentResetBounds   // b
	IntentToggleAutoFit // f
	IntentFollowNext    // ]
	IntentFollowPrev    // [
	IntentUnfollow      // u

	// Presentation
	IntentObjectSizeUp   // 3
	IntentObjectSizeDown // 1
	IntentToggleDebug    // d
)

var intentNames = [...]string{
	IntentNone:           "None",
	IntentQuit:           "Quit",
	IntentToggleMute:     "ToggleMute",
	IntentTogglePause:    "TogglePause",
	IntentStep:           "Step",
	IntentSubstepsUp:     "SubstepsUp",
	IntentSubstepsDown:   "SubstepsDown",
	IntentTogglePolicy:   "TogglePolicy",
	IntentTimescaleUp:    "TimescaleUp",
	IntentTimescaleDown:  "TimescaleDown",
	IntentPan:            "Pan",
	IntentZoomIn:         "ZoomIn",
	IntentZoomOut:        "ZoomOut",
	IntentFitNow:         "FitNow",
	IntentResetBounds:    "ResetBounds",
	IntentToggleAutoFit:  "ToggleAutoFit",
	IntentFollowNext:     "FollowNext",
	IntentFollowPrev:     "FollowPrev",
	IntentUnfollow:       "Unfollow",
	IntentObjectSizeUp:   "ObjectSizeUp",
	IntentObjectSizeDown: "ObjectSizeDown",
	IntentToggleDebug:    "ToggleDebug",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "Unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	DX, DY int8 // pan direction in pan steps, screen orientation (+Y is down)
}
