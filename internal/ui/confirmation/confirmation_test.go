package confirmation

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runebar/runebar/internal/ui/dialog"
)

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

func verdictOf(t *testing.T, msgs []tea.Msg) dialog.ConfirmationResultMsg {
	t.Helper()
	for _, msg := range msgs {
		if verdict, ok := msg.(dialog.ConfirmationResultMsg); ok {
			return verdict
		}
	}
	t.Fatalf("no verdict among %v", msgs)
	return dialog.ConfirmationResultMsg{}
}

func TestDestructivePromptDefaultsToCancel(t *testing.T) {
	m := NewDestructive("Move to Trash", 3)
	assert.Equal(t, 0, m.Selected())

	msgs := drain(m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	verdict := verdictOf(t, msgs)
	assert.False(t, verdict.Accepted)
	assert.Equal(t, uint64(3), verdict.Epoch)
	assert.Contains(t, msgs, CloseMsg{})
}

func TestDestructivePromptConfirm(t *testing.T) {
	m := NewDestructive("Delete Chat", 9)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.Selected())

	verdict := verdictOf(t, drain(m.Update(tea.KeyMsg{Type: tea.KeyEnter})))
	assert.True(t, verdict.Accepted)
	assert.Equal(t, uint64(9), verdict.Epoch)
}

func TestDestructivePromptKeyBindings(t *testing.T) {
	m := NewDestructive("Delete Note", 1)

	verdict := verdictOf(t, drain(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})))
	assert.True(t, verdict.Accepted)

	verdict = verdictOf(t, drain(m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})))
	assert.False(t, verdict.Accepted)

	verdict = verdictOf(t, drain(m.Update(tea.KeyMsg{Type: tea.KeyEsc})))
	assert.False(t, verdict.Accepted, "esc is a cancel verdict, not a silent dismiss")
}

func TestSelectionClampsAtEnds(t *testing.T) {
	m := NewDestructive("Reset Ranking", 1)
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Selected())
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Selected())
}

func TestGateProducesShowMsg(t *testing.T) {
	cmd := Gate{}.Confirm("Clear Conversation", 4)
	msg := cmd()
	show, ok := msg.(ShowMsg)
	require.True(t, ok)
	assert.Contains(t, show.Model.View(), "Clear Conversation")
}
