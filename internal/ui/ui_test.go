package ui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/config"
	"github.com/runebar/runebar/internal/launchercontext"
)

func TestMain(m *testing.M) {
	// The tests pump commands synchronously; auto-expiry would both sleep
	// and remove the HUD messages under assertion.
	config.Current.HUD.MessageTimeoutMS = 0
	os.Exit(m.Run())
}

type recordingExecutor struct {
	calls []string
}

func (r *recordingExecutor) Execute(a action.Action, _ launchercontext.Context) (string, error) {
	r.calls = append(r.calls, a.ID)
	return "ok", nil
}

// step feeds a message and pumps every resulting command back through the
// model, mirroring the runtime loop.
func step(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	pumpCmd(m, cmd)
}

func pumpCmd(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			pumpCmd(m, c)
		}
		return
	}
	if _, quits := msg.(tea.QuitMsg); quits {
		return
	}
	step(m, msg)
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) []tea.Msg {
	var out []tea.Msg
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func TestCtrlKOpensDialogForFocusedContext(t *testing.T) {
	m := New(&recordingExecutor{})
	m.SetFocused(launchercontext.Context{
		Kind: launchercontext.KindFile,
		File: &launchercontext.FileEntry{Path: "/tmp/a.txt", Name: "a.txt"},
	})
	step(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	step(m, keyMsg(tea.KeyCtrlK))
	assert.True(t, m.dialog.IsOpen())
	assert.Contains(t, m.View(), "a.txt")
}

func TestDestructiveFlowEndToEnd(t *testing.T) {
	executor := &recordingExecutor{}
	m := New(executor)
	step(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	step(m, OpenActionsMsg{Context: launchercontext.Context{
		Kind: launchercontext.KindFile,
		File: &launchercontext.FileEntry{Path: "/tmp/a.txt", Name: "a.txt"},
	}})

	for _, msg := range runes("trash") {
		step(m, msg)
	}
	step(m, keyMsg(tea.KeyEnter))
	require.NotNil(t, m.confirm, "destructive action raises the prompt")
	assert.Empty(t, executor.calls)

	// Move to Confirm and accept.
	step(m, keyMsg(tea.KeyRight))
	step(m, keyMsg(tea.KeyEnter))

	assert.Equal(t, []string{"file:move_to_trash"}, executor.calls)
	assert.Nil(t, m.confirm)
	assert.False(t, m.dialog.IsOpen())
}

func TestConfirmationCancelKeepsDialogOpen(t *testing.T) {
	executor := &recordingExecutor{}
	m := New(executor)
	step(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	step(m, OpenActionsMsg{Context: launchercontext.Context{
		Kind: launchercontext.KindNote,
		Note: &launchercontext.NoteInfo{ID: "n", Title: "Ideas"},
	}})

	for _, msg := range runes("delete") {
		step(m, msg)
	}
	step(m, keyMsg(tea.KeyEnter))
	require.NotNil(t, m.confirm)

	step(m, keyMsg(tea.KeyEsc))
	assert.Empty(t, executor.calls)
	assert.Nil(t, m.confirm)
	assert.True(t, m.dialog.IsOpen())
}

func TestCommandBarOpensAndExecutes(t *testing.T) {
	executor := &recordingExecutor{}
	m := New(executor)
	step(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	step(m, keyMsg(tea.KeyCtrlT))
	require.True(t, m.bar.IsOpen())

	step(m, keyMsg(tea.KeyEnter))
	assert.Equal(t, []string{"new_script"}, executor.calls)
	assert.False(t, m.bar.IsOpen())
	assert.True(t, m.hud.Any(), "result reaches the HUD")
}

func TestExecutionResultReachesHUDAfterDialogCloses(t *testing.T) {
	executor := &recordingExecutor{}
	m := New(executor)
	step(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	step(m, OpenActionsMsg{Context: launchercontext.Context{Kind: launchercontext.KindGlobal}})

	step(m, keyMsg(tea.KeyEnter))
	assert.False(t, m.dialog.IsOpen())
	assert.True(t, m.hud.Any())
	assert.Contains(t, m.View(), "ok")
}
