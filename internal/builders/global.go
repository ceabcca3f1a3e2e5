package builders

import (
	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

// globalActions apply in every context. They carry no namespace so their ids
// stay stable for shortcut bindings and ranking history.
func globalActions(ctx launchercontext.Context) []action.Action {
	actions := []action.Action{
		action.New("new_script", "New Script", "Create a script from a template", action.CategoryGlobalOps).
			WithShortcut("cmd+n").
			WithIcon(action.IconPencil).
			WithKeywords("create", "template"),
		action.New("open_settings", "Open Settings", "", action.CategoryGlobalOps).
			WithShortcut("cmd+,").
			WithIcon(action.IconSettings).
			WithKeywords("preferences", "config"),
		action.New("reload_scripts", "Reload Scripts", "Rescan the scripts directory", action.CategoryGlobalOps).
			WithIcon(action.IconRefresh).
			WithKeywords("refresh", "rescan"),
	}
	if ctx.Kind == launchercontext.KindGlobal {
		actions = append(actions,
			action.New("view_clipboard_history", "Clipboard History", "", action.CategoryGlobalOps).
				WithShortcut("cmd+shift+v").
				WithIcon(action.IconClipboard))
	}
	return actions
}
