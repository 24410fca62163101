package input

import "strings"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve binding strings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":        {Intent: IntentQuit},
	"toggle_mute": {Intent: IntentToggleMute},

	// Run control
	"pause":          {Intent: IntentTogglePause},
	"step":           {Intent: IntentStep},
	"substeps_up":    {Intent: IntentSubstepsUp},
	"substeps_down":  {Intent: IntentSubstepsDown},
	"toggle_policy":  {Intent: IntentTogglePolicy},
	"timescale_up":   {Intent: IntentTimescaleUp},
	"timescale_down": {Intent: IntentTimescaleDown},

	// Camera
	"pan_up":          {Intent: IntentPan, DY: -1},
	"pan_down":        {Intent: IntentPan, DY: 1},
	"pan_left":        {Intent: IntentPan, DX: -1},
	"pan_right":       {Intent: IntentPan, DX: 1},
	"zoom_in":         {Intent: IntentZoomIn},
	"zoom_out":        {Intent: IntentZoomOut},
	"fit":             {Intent: IntentFitNow},
	"reset_bounds":    {Intent: IntentResetBounds},
	"toggle_auto_fit": {Intent: IntentToggleAutoFit},
	"follow_next":     {Intent: IntentFollowNext},
	"follow_prev":     {Intent: IntentFollowPrev},
	"unfollow":        {Intent: IntentUnfollow},

	// Presentation
	"size_up":      {Intent: IntentObjectSizeUp},
	"size_down":    {Intent: IntentObjectSizeDown},
	"toggle_debug": {Intent: IntentToggleDebug},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[strings.ToLower(name)]
	return e, ok
}
