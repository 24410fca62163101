package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	DX, DY int8
}

// KeyTable maps keys to intents
// Runes follow the numeric keypad layout:
//
//	/  zoom in     *  zoom out    -  shorter step
//	7  substeps-   8  up          9  substeps+
//	4  left        5  fit         6  right       +  longer step
//	1  size-       2  down        3  size+       Enter  pause
//	0  single step
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyEnter:  {Intent: IntentTogglePause},
			tcell.KeyUp:     {Intent: IntentPan, DY: -1},
			tcell.KeyDown:   {Intent: IntentPan, DY: 1},
			tcell.KeyLeft:   {Intent: IntentPan, DX: -1},
			tcell.KeyRight:  {Intent: IntentPan, DX: 1},
		},

		Runes: map[rune]KeyEntry{
			// Keypad
			'/': {Intent: IntentZoomIn},
			'*': {Intent: IntentZoomOut},
			'-': {Intent: IntentTimescaleDown},
			'+': {Intent: IntentTimescaleUp},
			'7': {Intent: IntentSubstepsDown},
			'9': {Intent: IntentSubstepsUp},
			'8': {Intent: IntentPan, DY: -1},
			'2': {Intent: IntentPan, DY: 1},
			'4': {Intent: IntentPan, DX: -1},
			'6': {Intent: IntentPan, DX: 1},
			'5': {Intent: IntentFitNow},
			'1': {Intent: IntentObjectSizeDown},
			'3': {Intent: IntentObjectSizeUp},
			'0': {Intent: IntentStep},

			// Follow
			'[': {Intent: IntentFollowPrev},
			']': {Intent: IntentFollowNext},
			'u': {Intent: IntentUnfollow},

			// Toggles
			' ': {Intent: IntentTogglePause},
			'f': {Intent: IntentToggleAutoFit},
			'b': {Intent: IntentResetBounds},
			's': {Intent: IntentTogglePolicy},
			'd': {Intent: IntentToggleDebug},
			'm': {Intent: IntentToggleMute},
			'q': {Intent: IntentQuit},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to an intent
// Rune keys are matched on the rune, all other keys on the key code
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = kt.Runes[ev.Rune()]
	} else {
		entry, ok = kt.SpecialKeys[ev.Key()]
	}
	if !ok || entry.Intent == IntentNone {
		return Intent{}, false
	}
	return Intent{Type: entry.Intent, DX: entry.DX, DY: entry.DY}, true
}
