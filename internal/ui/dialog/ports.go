package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

// Executor runs a resolved action against the host. Handler-backed actions
// carry their payload in Value; built-ins are dispatched by id. The returned
// output feeds the HUD on success.
type Executor interface {
	Execute(a action.Action, ctx launchercontext.Context) (string, error)
}

// Confirmer presents the destructive-action prompt. The returned command
// must eventually yield a ConfirmationResultMsg carrying the given epoch.
// A nil Confirmer means confirmation is unavailable and destructive actions
// must never run.
type Confirmer interface {
	Confirm(title string, epoch uint64) tea.Cmd
}

// Notifier surfaces execution outcomes and degradations to the HUD.
type Notifier interface {
	Notify(text string, err error) tea.Cmd
}

// GeometryApplier pushes the computed popup size to the host window. Both
// the open path and live resizes go through it with heights from the same
// formula.
type GeometryApplier interface {
	ApplyPopupSize(width, height int)
}

// ConfirmationResultMsg is the confirmer's verdict. Epoch ties it to the
// dialog session that asked; a stale verdict is ignored.
type ConfirmationResultMsg struct {
	Accepted bool
	Epoch    uint64
}

// ExecutionResultMsg reports a finished action. Results from earlier
// sessions are dropped by epoch comparison.
type ExecutionResultMsg struct {
	Action action.Action
	Output string
	Err    error
	Epoch  uint64
}

// CloseMsg tells the host the dialog dismissed itself. Every close path
// emits it exactly once.
type CloseMsg struct{}

// Close is the command form of CloseMsg.
func Close() tea.Msg {
	return CloseMsg{}
}

// OutsideClickMsg dismisses the dialog when the host detects a click
// outside the popup bounds.
type OutsideClickMsg struct{}
