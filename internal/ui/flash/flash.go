// Package flash renders the HUD: short-lived execution results stacked in a
// corner, a spinner while a handler-backed action is still running, and a
// bounded history of completed actions. Messages are delivered through the
// program's message loop, so results landing after a dialog teardown still
// show up.
package flash

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runebar/runebar/internal/config"
	"github.com/runebar/runebar/internal/ui/styles"
)

// AddMessageMsg adds a message to the HUD. Error messages are sticky until
// dismissed; successes expire after the configured timeout.
type AddMessageMsg struct {
	Text   string
	Err    error
	Sticky bool
}

// PendingStartedMsg shows a spinner line while a long-running action works.
type PendingStartedMsg struct {
	ID    uint64
	Label string
}

// PendingFinishedMsg removes the spinner line for the given execution.
type PendingFinishedMsg struct {
	ID uint64
}

type expireMessageMsg struct {
	id uint64
}

type flashMessage struct {
	id   uint64
	text string
	err  error
}

type Model struct {
	messages  []flashMessage
	history   []flashMessage
	pending   map[uint64]string
	spinner   spinner.Model
	styles    styles.HUD
	currentID uint64
}

func New() *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Model{
		pending: make(map[uint64]string),
		spinner: s,
		styles:  styles.NewHUD(),
	}
}

// Add is the command form of AddMessageMsg; it satisfies the dialog's
// notifier contract through Notify.
func Add(text string, err error) tea.Cmd {
	return func() tea.Msg {
		return AddMessageMsg{Text: text, Err: err}
	}
}

// Notify lets the model itself serve as the dialog's notifier.
func (m *Model) Notify(text string, err error) tea.Cmd {
	return Add(text, err)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AddMessageMsg:
		id := m.add(msg.Text, msg.Err)
		if id == 0 || msg.Err != nil || msg.Sticky {
			return nil
		}
		timeout := config.Current.MessageTimeout()
		if timeout <= 0 {
			return nil
		}
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return expireMessageMsg{id: id}
		})
	case expireMessageMsg:
		m.removeByID(msg.id)
		return nil
	case PendingStartedMsg:
		m.pending[msg.ID] = msg.Label
		return m.spinner.Tick
	case PendingFinishedMsg:
		delete(m.pending, msg.ID)
		return nil
	default:
		if len(m.pending) > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *Model) add(text string, err error) uint64 {
	text = strings.TrimSpace(text)
	if text == "" && err == nil {
		return 0
	}
	m.currentID++
	msg := flashMessage{id: m.currentID, text: text, err: err}
	m.messages = append(m.messages, msg)
	m.history = append(m.history, msg)
	if limit := config.Current.HUD.HistoryLimit; limit > 0 && len(m.history) > limit {
		m.history = append([]flashMessage(nil), m.history[len(m.history)-limit:]...)
	}
	return msg.id
}

func (m *Model) removeByID(id uint64) {
	for i, msg := range m.messages {
		if msg.id == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return
		}
	}
}

// DismissOldest drops the oldest live message; errors are dismissed this way
// since they never expire on their own.
func (m *Model) DismissOldest() {
	if len(m.messages) > 0 {
		m.messages = m.messages[1:]
	}
}

func (m *Model) Any() bool {
	return len(m.messages) > 0 || len(m.pending) > 0
}

func (m *Model) LiveCount() int {
	return len(m.messages)
}

// HistoryEntry is one completed-message record for the history view.
type HistoryEntry struct {
	Text string
	Err  error
}

func (m *Model) History() []HistoryEntry {
	out := make([]HistoryEntry, 0, len(m.history))
	for _, msg := range m.history {
		out = append(out, HistoryEntry{Text: msg.text, Err: msg.err})
	}
	return out
}

func (m *Model) View() string {
	var blocks []string
	for _, msg := range m.messages {
		style := m.styles.Success
		body := msg.text
		mark := "✓"
		if msg.err != nil {
			style = m.styles.Error
			body = msg.err.Error()
			mark = "✗"
		}
		line := style.Render(mark) + " " + m.styles.Text.Render(body)
		blocks = append(blocks, m.styles.Border.BorderForeground(style.GetForeground()).Render(line))
	}
	for _, label := range m.pending {
		line := m.spinner.View() + " " + m.styles.Text.Render(label)
		blocks = append(blocks, m.styles.Border.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Right, blocks...)
}
