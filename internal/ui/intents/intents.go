// Package intents defines the high-level inputs the dialog and command bar
// act on. Intents decouple raw key events from behavior: the key router
// classifies tea.KeyMsg values into intents, and the models consume intents
// without knowing which keys produced them.
package intents

import tea "github.com/charmbracelet/bubbletea"

// Intent is a classified input. The set is closed; consumers switch over the
// concrete types.
type Intent interface {
	isIntent()
}

// Invoke wraps an intent as a command so models can re-enter their own
// update loop with it.
func Invoke(intent Intent) tea.Cmd {
	return func() tea.Msg {
		return intent
	}
}

type MoveUp struct{}

func (MoveUp) isIntent() {}

type MoveDown struct{}

func (MoveDown) isIntent() {}

type Home struct{}

func (Home) isIntent() {}

type End struct{}

func (End) isIntent() {}

type PageUp struct{}

func (PageUp) isIntent() {}

type PageDown struct{}

func (PageDown) isIntent() {}

// Select executes the focused action (or the coerced nearest one when focus
// sits on a non-actionable row).
type Select struct{}

func (Select) isIntent() {}

// Cancel dismisses the surface without executing anything.
type Cancel struct{}

func (Cancel) isIntent() {}

// Backspace removes the last rune of the capture query.
type Backspace struct{}

func (Backspace) isIntent() {}

// TypeChar appends a printable rune to the capture query. Only produced
// while search capture is active.
type TypeChar struct {
	Rune rune
}

func (TypeChar) isIntent() {}

// JumpKey moves focus to the first visible action whose title starts with
// the pressed rune. Only produced while navigating without search capture.
type JumpKey struct {
	Rune rune
}

func (JumpKey) isIntent() {}
