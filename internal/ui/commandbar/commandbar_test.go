package commandbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
	"github.com/runebar/runebar/internal/ui/dialog"
)

type fakeExecutor struct {
	calls []string
}

func (f *fakeExecutor) Execute(a action.Action, _ launchercontext.Context) (string, error) {
	f.calls = append(f.calls, a.ID)
	return "ok", nil
}

type fakeNotifier struct {
	errs []error
}

func (f *fakeNotifier) Notify(text string, err error) tea.Cmd {
	f.errs = append(f.errs, err)
	return nil
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func commandSet() action.Set {
	return action.Merge(action.Source{Actions: []action.Action{
		action.New("new_script", "New Script", "", action.CategoryGlobalOps),
		action.New("open_settings", "Open Settings", "", action.CategoryGlobalOps),
		action.New("reload_scripts", "Reload Scripts", "", action.CategoryGlobalOps),
		action.New("clear_history", "Clear History", "", action.CategoryDestructive),
	}})
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newBar() (*Model, *fakeExecutor, *fakeNotifier) {
	executor := &fakeExecutor{}
	notifier := &fakeNotifier{}
	return New(executor, notifier), executor, notifier
}

func TestOpenFocusesFirstCommand(t *testing.T) {
	m, _, _ := newBar()
	m.Open(commandSet())

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "new_script", selected.ID)
}

func TestTypingFiltersCommands(t *testing.T) {
	m, _, _ := newBar()
	m.Open(commandSet())

	typeString(m, "settings")
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "open_settings", selected.ID)
}

// cmdNotifier answers with a real command, the way the HUD does.
type cmdNotifier struct{}

type noteMsg struct {
	text string
	err  error
}

func (cmdNotifier) Notify(text string, err error) tea.Cmd {
	return func() tea.Msg { return noteMsg{text: text, err: err} }
}

func TestEnterSurvivesSilentNotifier(t *testing.T) {
	// The Notifier port allows a nil command in response; executing through
	// the bar must tolerate that instead of crashing the program.
	m, executor, notifier := newBar()
	m.Open(commandSet())

	msgs := drain(m.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, []string{"new_script"}, executor.calls)
	require.Len(t, notifier.errs, 1)
	assert.Contains(t, msgs, CloseMsg{})
}

func TestEnterDeliversNotifierMessage(t *testing.T) {
	executor := &fakeExecutor{}
	m := New(executor, cmdNotifier{})
	m.Open(commandSet())

	msgs := drain(m.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Contains(t, msgs, noteMsg{text: "ok"})
}

func TestEnterExecutesAndCloses(t *testing.T) {
	m, executor, notifier := newBar()
	m.Open(commandSet())

	msgs := drain(m.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, []string{"new_script"}, executor.calls)
	assert.False(t, m.IsOpen())
	assert.Contains(t, msgs, CloseMsg{})
	require.Len(t, notifier.errs, 1)
	assert.NoError(t, notifier.errs[0])
}

func TestDestructiveCommandRefused(t *testing.T) {
	m, executor, notifier := newBar()
	m.Open(commandSet())

	typeString(m, "clear")
	selected, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "clear_history", selected.ID)

	drain(m.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Empty(t, executor.calls, "the bar has no confirmation surface")
	require.Len(t, notifier.errs, 1)
	assert.ErrorIs(t, notifier.errs[0], dialog.ErrConfirmationUnavailable)
	assert.True(t, m.IsOpen())
}

func TestGeometryIsFixed(t *testing.T) {
	m, _, _ := newBar()
	m.Open(commandSet())
	height := m.Height()

	typeString(m, "zzzz")
	assert.Equal(t, height, m.Height(), "result count never changes the bar's size")
	assert.Contains(t, m.View(), "No actions match your search")
}

func TestEscCloses(t *testing.T) {
	m, _, _ := newBar()
	m.Open(commandSet())

	msgs := drain(m.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Contains(t, msgs, CloseMsg{})
	assert.False(t, m.IsOpen())
	assert.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestNavigationKeysMoveSelection(t *testing.T) {
	m, _, _ := newBar()
	m.Open(commandSet())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "clear_history", selected.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	selected, _ = m.Selected()
	assert.Equal(t, "new_script", selected.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	selected, _ = m.Selected()
	assert.Equal(t, "clear_history", selected.ID, "page down clamps at the bottom")

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	selected, _ = m.Selected()
	assert.Equal(t, "new_script", selected.ID, "page up clamps at the top")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	selected, _ = m.Selected()
	assert.Equal(t, "open_settings", selected.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	selected, _ = m.Selected()
	assert.Equal(t, "new_script", selected.ID)
}

func TestVisibleRowsCapped(t *testing.T) {
	var actions []action.Action
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
		actions = append(actions, action.New("cmd_"+title, title, "", action.CategoryGeneral))
	}
	m, _, _ := newBar()
	m.Open(action.Merge(action.Source{Actions: actions}))

	assert.LessOrEqual(t, len(m.visible), m.cfg.VisibleRows)
}
