package builders

import (
	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

// buildFile serves both file-search results (KindFile) and browsed paths
// (KindPath); the two differ only in how the host resolves the entry.
func buildFile(ctx launchercontext.Context) []action.Source {
	entry := ctx.File
	if entry == nil {
		buildLog.Warn("file context without entry, skipping", "kind", ctx.Kind)
		return nil
	}

	var actions []action.Action
	if entry.IsDir {
		actions = append(actions,
			action.New("open_directory", "Open Directory", "", action.CategoryGeneral).
				WithShortcut("enter").
				WithIcon(action.IconFolderOpen),
			action.New("open_in_terminal", "Open in Terminal", "", action.CategoryTerminal).
				WithIcon(action.IconTerminal))
	} else {
		actions = append(actions,
			action.New("open_file", "Open File", "", action.CategoryGeneral).
				WithShortcut("enter").
				WithIcon(action.IconPlay),
			action.New("open_with", "Open With...", "", action.CategoryGeneral),
			action.New("open_in_editor", "Open in Editor", "", action.CategoryEdit).
				WithIcon(action.IconPencil),
			action.New("quick_look", "Quick Look", "", action.CategoryGeneral).
				WithShortcut("space"))
	}

	actions = append(actions,
		action.New("reveal_in_finder", "Reveal in Finder", "", action.CategoryGeneral).
			WithShortcut("cmd+enter").
			WithIcon(action.IconFolderOpen),
		action.New("copy_path", "Copy Path", "", action.CategoryShare).
			WithIcon(action.IconCopy),
		action.New("copy_filename", "Copy Filename", "", action.CategoryShare).
			WithIcon(action.IconCopy),
		action.New("show_info", "Show Info", "", action.CategoryGeneral),
		action.New("move_to_trash", "Move to Trash", "", action.CategoryDestructive).
			WithShortcut("cmd+backspace").
			WithIcon(action.IconTrash),
	)

	return []action.Source{{Namespace: action.NamespaceFile, Actions: actions}}
}
