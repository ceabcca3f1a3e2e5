package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/cliphist"
	"github.com/runebar/runebar/internal/launchercontext"
)

func TestExecuteUnknownActionErrors(t *testing.T) {
	e := &Executor{}
	_, err := e.Execute(
		action.New("made_up", "Made Up", "", action.CategoryGeneral),
		launchercontext.Context{Kind: launchercontext.KindGlobal},
	)
	assert.ErrorContains(t, err, "no handler")
}

func TestExecuteRequiresContextPayload(t *testing.T) {
	e := &Executor{}

	_, err := e.Execute(
		action.New("file:copy_path", "Copy Path", "", action.CategoryShare),
		launchercontext.Context{Kind: launchercontext.KindFile},
	)
	assert.ErrorContains(t, err, "no file entry")

	_, err = e.Execute(
		action.New("clip:clipboard_copy", "Copy", "", action.CategoryGeneral),
		launchercontext.Context{Kind: launchercontext.KindClipboard},
	)
	assert.ErrorContains(t, err, "no clipboard entry")

	_, err = e.Execute(
		action.New("copy_deeplink", "Copy Deeplink", "", action.CategoryShare),
		launchercontext.Context{Kind: launchercontext.KindScript},
	)
	assert.ErrorContains(t, err, "no script")
}

func TestClipboardHistoryActions(t *testing.T) {
	store := cliphist.New(10)
	entry := store.Add("hello", launchercontext.ClipboardText)
	e := &Executor{History: store}
	ctx := launchercontext.Context{Kind: launchercontext.KindClipboard, Clipboard: &entry}

	out, err := e.Execute(action.New("clip:clipboard_pin", "Pin Entry", "", action.CategoryGeneral), ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pinned", out)
	got, _ := store.Get(entry.ID)
	assert.True(t, got.Pinned)

	out, err = e.Execute(action.New("clip:clipboard_delete", "Delete Entry", "", action.CategoryDestructive), ctx)
	require.NoError(t, err)
	assert.Equal(t, "Entry deleted", out)
	assert.Equal(t, 0, store.Len())

	_, err = e.Execute(action.New("clip:clipboard_delete", "Delete Entry", "", action.CategoryDestructive), ctx)
	assert.ErrorContains(t, err, "no longer exists")
}

func TestClipboardHistoryUnavailable(t *testing.T) {
	e := &Executor{}
	entry := launchercontext.ClipboardEntry{ID: "e1", Preview: "x"}
	_, err := e.Execute(
		action.New("clip:clipboard_delete_all", "Delete All Entries", "", action.CategoryDestructive),
		launchercontext.Context{Kind: launchercontext.KindClipboard, Clipboard: &entry},
	)
	assert.ErrorContains(t, err, "not available")
}

func TestDeeplinkSlugsName(t *testing.T) {
	assert.Equal(t, "runebar://run/daily-backup", deeplink("Daily Backup"))
}

func TestHandlerWithUnknownToolErrors(t *testing.T) {
	e := &Executor{}
	a := action.New("scriptlet_action:x", "X", "", action.CategoryScriptOps).
		WithHandler("echo hi").
		WithKeywords("bogus")
	_, err := e.Execute(a, launchercontext.Context{Kind: launchercontext.KindScriptlet})
	assert.ErrorContains(t, err, "bogus")
}
