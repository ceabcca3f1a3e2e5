// Package keyrouter classifies raw key events into intents. Classification
// depends on the surface mode: while search capture is active printable
// runes extend the query, otherwise a printable rune jumps focus to the
// first matching title.
package keyrouter

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runebar/runebar/internal/ui/intents"
)

// Mode selects how printable runes are interpreted.
type Mode int

const (
	// ModeNavigate routes printable runes to jump-key focus moves.
	ModeNavigate Mode = iota
	// ModeSearch routes printable runes into the filter query.
	ModeSearch
)

// keyAliases folds terminal-dependent names onto one canonical spelling
// before the named-key table is consulted.
var keyAliases = map[string]string{
	"return": "enter",
	"escape": "esc",
	" ":      "space",
	"pgup":   "pageup",
	"pgdown": "pagedown",
}

var namedKeys = map[string]intents.Intent{
	"up":        intents.MoveUp{},
	"ctrl+p":    intents.MoveUp{},
	"shift+tab": intents.MoveUp{},
	"down":      intents.MoveDown{},
	"ctrl+n":    intents.MoveDown{},
	"tab":       intents.MoveDown{},
	"home":      intents.Home{},
	"end":       intents.End{},
	"pageup":    intents.PageUp{},
	"pagedown":  intents.PageDown{},
	"enter":     intents.Select{},
	"esc":       intents.Cancel{},
	"ctrl+c":    intents.Cancel{},
}

// Classify maps a key event to an intent. The named-key table always wins
// over rune interpretation, so "space" and "enter" never leak into the query
// or jump to a title. Unmapped keys return ok=false and must be ignored.
func Classify(msg tea.KeyMsg, mode Mode) (intents.Intent, bool) {
	name := strings.ToLower(msg.String())
	if canonical, ok := keyAliases[name]; ok {
		name = canonical
	}

	if name == "backspace" {
		if mode == ModeSearch {
			return intents.Backspace{}, true
		}
		return nil, false
	}
	// Space is a named key: it types into the query while composing and
	// selects the focused row while navigating, but never jumps to a title.
	if name == "space" {
		if mode == ModeSearch {
			return intents.TypeChar{Rune: ' '}, true
		}
		return intents.Select{}, true
	}
	if intent, ok := namedKeys[name]; ok {
		return intent, true
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if !unicode.IsPrint(r) {
			return nil, false
		}
		if mode == ModeSearch {
			return intents.TypeChar{Rune: r}, true
		}
		return intents.JumpKey{Rune: unicode.ToLower(r)}, true
	}

	return nil, false
}
