// Package confirmation implements the modal prompt guarding destructive
// actions. It is generic over options; NewDestructive preconfigures the
// confirm/cancel pair the dialog's gate expects, with cancel focused so a
// reflexive enter never destroys anything.
package confirmation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runebar/runebar/internal/ui/dialog"
	"github.com/runebar/runebar/internal/ui/intents"
	"github.com/runebar/runebar/internal/ui/styles"
)

// CloseMsg dismisses the prompt.
type CloseMsg struct{}

// Close is the command form of CloseMsg.
func Close() tea.Msg {
	return CloseMsg{}
}

// ShowMsg asks the root model to present a prompt.
type ShowMsg struct {
	Model *Model
}

type option struct {
	label      string
	cmd        tea.Cmd
	keyBinding key.Binding
}

type Model struct {
	message  string
	options  []option
	selected int
	styles   styles.Confirmation
}

// Option configures a Model.
type Option func(*Model)

// WithOption adds a choice with the command to run when it is picked.
func WithOption(label string, cmd tea.Cmd, keyBinding key.Binding) Option {
	return func(m *Model) {
		m.options = append(m.options, option{label, cmd, keyBinding})
	}
}

// WithSelected sets the initially focused option index.
func WithSelected(index int) Option {
	return func(m *Model) {
		if index >= 0 && index < len(m.options) {
			m.selected = index
		}
	}
}

func New(message string, opts ...Option) *Model {
	m := &Model{
		message: message,
		styles:  styles.NewConfirmation(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewDestructive builds the prompt for one destructive action. Both verdict
// paths emit a ConfirmationResultMsg stamped with the asking session's epoch
// and close the prompt.
func NewDestructive(title string, epoch uint64) *Model {
	verdict := func(accepted bool) tea.Cmd {
		return tea.Batch(
			func() tea.Msg {
				return dialog.ConfirmationResultMsg{Accepted: accepted, Epoch: epoch}
			},
			Close,
		)
	}
	return New(
		fmt.Sprintf("%s? This cannot be undone.", title),
		WithOption("Cancel", verdict(false), key.NewBinding(key.WithKeys("esc", "n"))),
		WithOption("Confirm", verdict(true), key.NewBinding(key.WithKeys("y"))),
		WithSelected(0),
	)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case intents.Intent:
		return m.handleIntent(msg)
	case tea.KeyMsg:
		for _, option := range m.options {
			if key.Matches(msg, option.keyBinding) {
				return option.cmd
			}
		}
		switch msg.String() {
		case "left", "shift+tab":
			return m.handleIntent(intents.MoveUp{})
		case "right", "tab":
			return m.handleIntent(intents.MoveDown{})
		case "enter":
			return m.handleIntent(intents.Select{})
		case "esc":
			return m.handleIntent(intents.Cancel{})
		}
	}
	return nil
}

func (m *Model) handleIntent(intent intents.Intent) tea.Cmd {
	switch intent.(type) {
	case intents.MoveUp:
		if m.selected > 0 {
			m.selected--
		}
	case intents.MoveDown:
		if m.selected < len(m.options)-1 {
			m.selected++
		}
	case intents.Select:
		if len(m.options) > 0 {
			return m.options[m.selected].cmd
		}
	case intents.Cancel:
		return m.runOptionForKey("esc")
	}
	return nil
}

// runOptionForKey finds the option bound to the given key name. With no such
// binding the prompt just closes, which never confirms anything.
func (m *Model) runOptionForKey(bindingKey string) tea.Cmd {
	for _, option := range m.options {
		for _, keyName := range option.keyBinding.Keys() {
			if keyName == bindingKey {
				return option.cmd
			}
		}
	}
	return Close
}

func (m *Model) Selected() int {
	return m.selected
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Text.Render(m.message))
	b.WriteByte('\n')
	for i, option := range m.options {
		style := m.styles.Dimmed
		if i == m.selected {
			style = m.styles.Selected
		}
		b.WriteString(style.Render(option.label))
	}
	return m.styles.Border.Render(b.String())
}

// Gate adapts ShowMsg delivery to the dialog's confirmer port.
type Gate struct{}

func (Gate) Confirm(title string, epoch uint64) tea.Cmd {
	model := NewDestructive(title, epoch)
	return func() tea.Msg {
		return ShowMsg{Model: model}
	}
}
