// Package commandbar implements the always-available command palette. It is
// a lighter surface than the actions dialog: fixed geometry, no context
// header, no confirmation flow. Destructive actions are refused outright
// rather than gated, so anything requiring confirmation must go through the
// dialog.
package commandbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/config"
	"github.com/runebar/runebar/internal/launchercontext"
	"github.com/runebar/runebar/internal/ui/dialog"
	"github.com/runebar/runebar/internal/ui/intents"
	"github.com/runebar/runebar/internal/ui/keyrouter"
	"github.com/runebar/runebar/internal/ui/styles"
)

var barLog = log.WithPrefix("commandbar")

// CloseMsg tells the host the command bar dismissed itself.
type CloseMsg struct{}

// Close is the command form of CloseMsg.
func Close() tea.Msg {
	return CloseMsg{}
}

type Model struct {
	executor dialog.Executor
	notifier dialog.Notifier

	cfg    config.CommandBarConfig
	styles styles.Dialog
	input  textinput.Model

	set      action.Set
	visible  []action.Action
	selected int
	open     bool
}

func New(executor dialog.Executor, notifier dialog.Notifier) *Model {
	input := textinput.New()
	input.Placeholder = "Search commands…"
	input.Prompt = "› "
	return &Model{
		executor: executor,
		notifier: notifier,
		cfg:      config.Current.CommandBar,
		styles:   styles.NewDialog(),
		input:    input,
		selected: -1,
	}
}

// Open shows the bar over the given command set.
func (m *Model) Open(set action.Set) tea.Cmd {
	m.open = true
	m.set = set
	m.input.SetValue("")
	m.refresh()
	return m.input.Focus()
}

func (m *Model) IsOpen() bool { return m.open }

func (m *Model) Selected() (action.Action, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return action.Action{}, false
	}
	return m.visible[m.selected], true
}

// Height is fixed: the bar never grows or shrinks with its result count.
func (m *Model) Height() int {
	return m.cfg.VisibleRows + 3
}

func (m *Model) Width() int {
	return m.cfg.Width
}

func (m *Model) refresh() {
	prev := m.selected
	indices := action.Rank(m.set, m.input.Value())
	m.visible = m.visible[:0]
	for _, i := range indices {
		if len(m.visible) == m.cfg.VisibleRows {
			break
		}
		m.visible = append(m.visible, m.set.At(i))
	}
	switch {
	case len(m.visible) == 0:
		m.selected = -1
	case prev < 0:
		m.selected = 0
	case prev >= len(m.visible):
		m.selected = len(m.visible) - 1
	default:
		m.selected = prev
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	// The bar always captures search, so it classifies in search mode and
	// only hands the query-editing intents down to the text input.
	intent, ok := keyrouter.Classify(keyMsg, keyrouter.ModeSearch)
	if !ok {
		return nil
	}
	switch intent.(type) {
	case intents.Cancel:
		return m.close()
	case intents.Select:
		return m.executeSelected()
	case intents.MoveUp:
		m.moveSelection(-1)
	case intents.MoveDown:
		m.moveSelection(1)
	case intents.Home:
		if len(m.visible) > 0 {
			m.selected = 0
		}
	case intents.End:
		if len(m.visible) > 0 {
			m.selected = len(m.visible) - 1
		}
	case intents.PageUp:
		m.moveSelection(-m.cfg.VisibleRows)
	case intents.PageDown:
		m.moveSelection(m.cfg.VisibleRows)
	case intents.TypeChar, intents.Backspace:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refresh()
		}
		return cmd
	}
	return nil
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next > len(m.visible)-1 {
		next = len(m.visible) - 1
	}
	m.selected = next
}

// executeSelected runs the focused command. The bar has no confirmation
// surface, so a destructive action that slipped into the set is refused.
func (m *Model) executeSelected() tea.Cmd {
	a, ok := m.Selected()
	if !ok {
		return nil
	}
	if action.IsDestructive(a) {
		barLog.Warn("refusing destructive action in command bar", "id", a.ID)
		return m.notify("", fmt.Errorf("%s: %w", a.Title, dialog.ErrConfirmationUnavailable))
	}
	notifier := m.notifier
	run := func() tea.Msg {
		output, err := m.executor.Execute(a, launchercontext.Context{Kind: launchercontext.KindGlobal})
		if err != nil {
			err = fmt.Errorf("%s: %w", a.Title, err)
		}
		if notifier == nil {
			return nil
		}
		// HUD delivery rides the notifier's own command so slow commands
		// still notify after the bar is gone. A notifier may answer with no
		// command at all.
		if cmd := notifier.Notify(output, err); cmd != nil {
			return cmd()
		}
		return nil
	}
	if a.KeepOpen {
		return run
	}
	return tea.Batch(run, m.close())
}

func (m *Model) notify(text string, err error) tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	return m.notifier.Notify(text, err)
}

func (m *Model) close() tea.Cmd {
	if !m.open {
		return nil
	}
	m.open = false
	m.input.Blur()
	return Close
}

func (m *Model) View() string {
	if !m.open {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	if len(m.visible) == 0 {
		b.WriteString(m.styles.EmptyState.Render(action.EmptyStateMessage(m.input.Value())))
	}
	for i, a := range m.visible {
		if i > 0 {
			b.WriteByte('\n')
		}
		style := m.styles.Row
		if i == m.selected {
			style = m.styles.RowSelected
		}
		b.WriteString(style.Render(a.Title))
	}
	return m.styles.Border.Render(b.String())
}
