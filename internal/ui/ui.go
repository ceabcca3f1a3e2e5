// Package ui is the root bubbletea model: it owns the actions dialog, the
// command bar, the confirmation prompt and the HUD, and routes messages
// between them.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runebar/runebar/internal/builders"
	"github.com/runebar/runebar/internal/launchercontext"
	"github.com/runebar/runebar/internal/ui/commandbar"
	"github.com/runebar/runebar/internal/ui/confirmation"
	"github.com/runebar/runebar/internal/ui/dialog"
	"github.com/runebar/runebar/internal/ui/flash"
)

// OpenActionsMsg opens the actions dialog for a focused context.
type OpenActionsMsg struct {
	Context launchercontext.Context
}

// OpenCommandBarMsg opens the global command palette.
type OpenCommandBarMsg struct{}

type Model struct {
	dialog  *dialog.Model
	bar     *commandbar.Model
	hud     *flash.Model
	confirm *confirmation.Model

	// focused is the context the next dialog opens against; the host
	// updates it as selection moves in the main list.
	focused launchercontext.Context

	width       int
	height      int
	popupWidth  int
	popupHeight int
}

func New(executor dialog.Executor) *Model {
	hud := flash.New()
	m := &Model{
		hud: hud,
		bar: commandbar.New(executor, hud),
	}
	m.dialog = dialog.New(executor, confirmation.Gate{}, hud, m)
	return m
}

// ApplyPopupSize satisfies the dialog's geometry port; the stored size
// positions the popup in View.
func (m *Model) ApplyPopupSize(width, height int) {
	m.popupWidth = width
	m.popupHeight = height
}

// SetFocused records the context the next actions dialog resolves against.
func (m *Model) SetFocused(ctx launchercontext.Context) {
	m.focused = ctx
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.dialog.Update(msg)

	case OpenActionsMsg:
		m.focused = msg.Context
		return m, m.dialog.Open(msg.Context)
	case OpenCommandBarMsg:
		return m, m.bar.Open(builders.Build(launchercontext.Context{Kind: launchercontext.KindGlobal}))

	case confirmation.ShowMsg:
		m.confirm = msg.Model
		return m, nil
	case confirmation.CloseMsg:
		m.confirm = nil
		return m, nil

	case dialog.ConfirmationResultMsg, dialog.ExecutionResultMsg:
		return m, m.dialog.Update(msg)
	case dialog.CloseMsg, commandbar.CloseMsg:
		return m, nil

	case flash.AddMessageMsg, flash.PendingStartedMsg, flash.PendingFinishedMsg:
		return m, m.hud.Update(msg)

	case tea.KeyMsg:
		return m, m.routeKey(msg)
	}

	// Everything else (spinner ticks, expiry) belongs to the HUD.
	return m, m.hud.Update(msg)
}

// routeKey delivers keys to the topmost active surface. The confirmation
// prompt is always on top; the dialog and the bar never overlap.
func (m *Model) routeKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm != nil {
		return m.confirm.Update(msg)
	}
	if m.dialog.IsOpen() {
		return m.dialog.Update(msg)
	}
	if m.bar.IsOpen() {
		return m.bar.Update(msg)
	}

	switch msg.String() {
	case "ctrl+k":
		focused := m.focused
		return func() tea.Msg { return OpenActionsMsg{Context: focused} }
	case "ctrl+t":
		return func() tea.Msg { return OpenCommandBarMsg{} }
	case "ctrl+c", "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) View() string {
	overlay := ""
	switch {
	case m.confirm != nil:
		overlay = m.confirm.View()
	case m.dialog.IsOpen():
		overlay = m.dialog.View()
	case m.bar.IsOpen():
		overlay = m.bar.View()
	}

	body := lipgloss.Place(max(m.width, 1), max(m.height-1, 1), lipgloss.Center, lipgloss.Center, overlay)
	if m.hud.Any() {
		return lipgloss.JoinVertical(lipgloss.Right, body, m.hud.View())
	}
	return body
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
