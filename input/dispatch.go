package input

// Controls is the simulation control surface driven by intents
type Controls interface {
	Step() bool
	TogglePause() bool
	SubstepsUp() bool
	SubstepsDown() bool
	ToggleSubstepPolicy() bool
	TimescaleUp() bool
	TimescaleDown() bool
	Pan(dx, dy float64) bool
	ZoomIn() bool
	ZoomOut() bool
	FitNow() bool
	ResetBounds() bool
	ToggleAutoFit() bool
	FollowNext() bool
	FollowPrev() bool
	Unfollow() bool
	ObjectSizeUp() bool
	ObjectSizeDown() bool
	ToggleDebug() bool
}

// Result reports what dispatching an intent did
type Result struct {
	Handled bool // intent maps to a control operation
	Changed bool // the operation changed simulation state
}

// Dispatch routes a control intent into the simulation
// System intents (quit, mute) are not handled here and return Handled=false
func Dispatch(c Controls, in Intent) Result {
	var op func() bool

	switch in.Type {
	case IntentTogglePause:
		op = c.TogglePause
	case IntentStep:
		op = c.Step
	case IntentSubstepsUp:
		op = c.SubstepsUp
	case IntentSubstepsDown:
		op = c.SubstepsDown
	case IntentTogglePolicy:
		op = c.ToggleSubstepPolicy
	case IntentTimescaleUp:
		op = c.TimescaleUp
	case IntentTimescaleDown:
		op = c.TimescaleDown
	case IntentPan:
		dx, dy := float64(in.DX), float64(in.DY)
		op = func() bool { return c.Pan(dx, dy) }
	case IntentZoomIn:
		op = c.ZoomIn
	case IntentZoomOut:
		op = c.ZoomOut
	case IntentFitNow:
		op = c.FitNow
	case IntentResetBounds:
		op = c.ResetBounds
	case IntentToggleAutoFit:
		op = c.ToggleAutoFit
	case IntentFollowNext:
		op = c.FollowNext
	case IntentFollowPrev:
		op = c.FollowPrev
	case IntentUnfollow:
		op = c.Unfollow
	case IntentObjectSizeUp:
		op = c.ObjectSizeUp
	case IntentObjectSizeDown:
		op = c.ObjectSizeDown
	case IntentToggleDebug:
		op = c.ToggleDebug
	default:
		return Result{}
	}

	return Result{Handled: true, Changed: op()}
}
