package builders

import (
	"fmt"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

// buildScript covers both plain scripts and scriptlets: a scriptlet context
// layers its declared actions (namespaced) on top of the script-core source.
func buildScript(ctx launchercontext.Context) []action.Source {
	info := ctx.Script
	if info == nil {
		buildLog.Warn("script context without script info, skipping", "kind", ctx.Kind)
		return nil
	}

	verb := info.ActionVerb
	if verb == "" {
		verb = "Run"
	}

	core := []action.Action{
		action.New("run_script", fmt.Sprintf("%s %s", verb, info.Name), "", action.CategoryGeneral).
			WithShortcut("enter").
			WithIcon(action.IconPlay),
	}

	if info.IsScriptlet {
		core = append(core,
			action.New("edit_scriptlet", "Edit Scriptlet", "", action.CategoryEdit).
				WithShortcut("cmd+o").
				WithIcon(action.IconPencil),
			action.New("reveal_scriptlet_in_finder", "Reveal Scriptlet in Finder", "", action.CategoryEdit).
				WithIcon(action.IconFolderOpen),
			action.New("copy_scriptlet_path", "Copy Path", "", action.CategoryShare).
				WithIcon(action.IconCopy),
		)
	} else {
		core = append(core,
			action.New("edit_script", "Edit Script", "", action.CategoryEdit).
				WithShortcut("cmd+o").
				WithIcon(action.IconPencil),
			action.New("view_logs", "View Logs", "", action.CategoryEdit).
				WithShortcut("cmd+l").
				WithIcon(action.IconTerminal),
			action.New("copy_content", "Copy Script Content", "", action.CategoryShare).
				WithIcon(action.IconCopy),
			action.New("copy_deeplink", "Copy Deeplink", "", action.CategoryShare).
				WithIcon(action.IconShare).
				WithKeywords("url", "link"),
			action.New("reveal_in_finder", "Reveal in Finder", "", action.CategoryEdit).
				WithIcon(action.IconFolderOpen),
			action.New("copy_path", "Copy Path", "", action.CategoryShare).
				WithIcon(action.IconCopy),
		)
	}

	core = append(core, shortcutManagement(info)...)
	core = append(core, aliasManagement(info)...)

	if info.Suggested {
		core = append(core,
			action.New("reset_ranking", "Reset Ranking", "Forget usage history for this entry", action.CategoryScriptOps).
				WithIcon(action.IconRefresh))
	}

	sources := []action.Source{{Actions: core}}
	if info.IsScriptlet && ctx.Scriptlet != nil {
		if declared := scriptletActions(ctx.Scriptlet); len(declared) > 0 {
			sources = append(sources, action.Source{
				Namespace: action.NamespaceScriptletAction,
				Actions:   declared,
			})
		}
	}
	return sources
}

func shortcutManagement(info *launchercontext.ScriptInfo) []action.Action {
	if info.Shortcut == "" {
		return []action.Action{
			action.New("add_shortcut", "Add Keyboard Shortcut", "", action.CategoryScriptOps),
		}
	}
	return []action.Action{
		action.New("update_shortcut", "Update Keyboard Shortcut", info.Shortcut, action.CategoryScriptOps),
		action.New("remove_shortcut", "Remove Keyboard Shortcut", "", action.CategoryScriptOps),
	}
}

func aliasManagement(info *launchercontext.ScriptInfo) []action.Action {
	if info.Alias == "" {
		return []action.Action{
			action.New("add_alias", "Add Alias", "", action.CategoryScriptOps),
		}
	}
	return []action.Action{
		action.New("update_alias", "Update Alias", info.Alias, action.CategoryScriptOps),
		action.New("remove_alias", "Remove Alias", "", action.CategoryScriptOps),
	}
}
