// Package styles centralizes the lipgloss styling for every surface so the
// dialog, command bar, HUD and confirmation prompt stay visually consistent.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DetectBackground primes lipgloss's adaptive colors from the terminal's
// actual background. Call once before any style is built.
func DetectBackground() {
	lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
}

var (
	accent    = lipgloss.AdaptiveColor{Light: "63", Dark: "105"}
	dimmed    = lipgloss.AdaptiveColor{Light: "243", Dark: "241"}
	danger    = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
	success   = lipgloss.AdaptiveColor{Light: "28", Dark: "78"}
	textColor = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
)

// Dialog carries the styles for the actions popup.
type Dialog struct {
	Border        lipgloss.Style
	ContextTitle  lipgloss.Style
	SectionHeader lipgloss.Style
	Separator     lipgloss.Style
	Row           lipgloss.Style
	RowSelected   lipgloss.Style
	RowDanger     lipgloss.Style
	Shortcut      lipgloss.Style
	Search        lipgloss.Style
	EmptyState    lipgloss.Style
	Footer        lipgloss.Style
}

func NewDialog() Dialog {
	return Dialog{
		Border:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dimmed).Padding(0, 1),
		ContextTitle:  lipgloss.NewStyle().Foreground(dimmed).Bold(true),
		SectionHeader: lipgloss.NewStyle().Foreground(dimmed).Bold(true).MarginTop(0),
		Separator:     lipgloss.NewStyle().Foreground(dimmed),
		Row:           lipgloss.NewStyle().Foreground(textColor),
		RowSelected:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accent).Bold(true),
		RowDanger:     lipgloss.NewStyle().Foreground(danger),
		Shortcut:      lipgloss.NewStyle().Foreground(dimmed),
		Search:        lipgloss.NewStyle().Foreground(textColor),
		EmptyState:    lipgloss.NewStyle().Foreground(dimmed).Italic(true),
		Footer:        lipgloss.NewStyle().Foreground(dimmed),
	}
}

// HUD carries the styles for flash messages.
type HUD struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Text    lipgloss.Style
	Border  lipgloss.Style
}

func NewHUD() HUD {
	return HUD{
		Success: lipgloss.NewStyle().Foreground(success),
		Error:   lipgloss.NewStyle().Foreground(danger),
		Text:    lipgloss.NewStyle().Foreground(textColor),
		Border:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(dimmed).Padding(0, 1),
	}
}

// Confirmation carries the styles for the destructive-action prompt.
type Confirmation struct {
	Border   lipgloss.Style
	Text     lipgloss.Style
	Selected lipgloss.Style
	Dimmed   lipgloss.Style
}

func NewConfirmation() Confirmation {
	return Confirmation{
		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(danger).Padding(0, 1),
		Text:     lipgloss.NewStyle().Foreground(textColor).PaddingRight(1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(danger).Padding(0, 2).Bold(true),
		Dimmed:   lipgloss.NewStyle().Foreground(dimmed).Padding(0, 2),
	}
}
