// Package builders assembles the action set for a dialog session. Each
// focused-item family has one builder; Build dispatches over the closed kind
// set, merges the context source with the global source and returns the
// ordered set the dialog filters and ranks.
package builders

import (
	"github.com/charmbracelet/log"

	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

var buildLog = log.WithPrefix("builders")

type builderFunc func(launchercontext.Context) []action.Source

// contextBuilders is the closed dispatch table. A kind without an entry
// contributes no context actions; the global source still applies.
var contextBuilders = map[launchercontext.Kind]builderFunc{
	launchercontext.KindScript:    buildScript,
	launchercontext.KindScriptlet: buildScript,
	launchercontext.KindClipboard: buildClipboard,
	launchercontext.KindChat:      buildChat,
	launchercontext.KindFile:      buildFile,
	launchercontext.KindPath:      buildFile,
	launchercontext.KindNote:      buildNote,
}

// Build resolves the full action set for ctx: context-specific sources first,
// the global source last. Builders fail closed; a context with missing data
// degrades to the global actions instead of erroring.
func Build(ctx launchercontext.Context) action.Set {
	var sources []action.Source
	if build, ok := contextBuilders[ctx.Kind]; ok {
		sources = build(ctx)
	}
	sources = append(sources, action.Source{Actions: globalActions(ctx)})
	return action.Merge(sources...)
}
