package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write bare in a config file
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"hash":      '#',
	"semicolon": ';',
}

// keysByName indexes tcell key names, lower-cased ("left", "enter", "ctrl-c")
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses "key action" binding lines into a sparse override KeyTable
// A single character or rune alias binds a rune, anything longer must be a tcell key name
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings []string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for i, line := range bindings {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("binding %d %q: expected \"key action\"", i, line)
		}
		keyStr, actionName := fields[0], fields[1]

		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("binding %d key %q: %w", i, keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = entry
			continue
		}
		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("binding %d: unknown key name: %q", i, keyStr)
		}
		kt.SpecialKeys[k] = entry
	}

	return kt, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by the override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
