package builders

import (
	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/scriptlet"
)

// scriptletActions converts declared H3 blocks into handler-backed actions.
// One malformed declaration poisons the whole list: a scriptlet with any
// blank-name or blank-command entry contributes no declared actions at all.
// Local ids are the slugified action names; collisions between identically
// named blocks are resolved by the merge, never here.
func scriptletActions(s *scriptlet.Scriptlet) []action.Action {
	for _, decl := range s.Actions {
		if decl.Name == "" || decl.Command == "" {
			buildLog.Warn("scriptlet declares an unusable action, dropping all of them",
				"scriptlet", s.Name, "action", decl.Name)
			return nil
		}
	}
	actions := make([]action.Action, 0, len(s.Actions))
	for _, decl := range s.Actions {
		a := action.New(decl.Command, decl.Name, decl.Description, action.CategoryScriptOps).
			WithHandler(decl.Code).
			WithKeywords(decl.Tool)
		if decl.Shortcut != "" {
			a = a.WithShortcut(decl.Shortcut)
		}
		actions = append(actions, a)
	}
	return actions
}
