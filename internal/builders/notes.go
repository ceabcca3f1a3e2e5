package builders

import (
	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

func buildNote(ctx launchercontext.Context) []action.Source {
	note := ctx.Note
	if note == nil {
		buildLog.Warn("note context without note info, skipping")
		return nil
	}

	actions := []action.Action{
		action.New("new_note", "New Note", "", action.CategoryGeneral).
			WithShortcut("cmd+n").
			WithIcon(action.IconNote),
		action.New("browse_notes", "Browse Notes", "", action.CategoryGeneral).
			WithShortcut("cmd+p"),
		action.New("duplicate_note", "Duplicate Note", "", action.CategoryGeneral).
			WithIcon(action.IconCopy),
		action.New("find_in_note", "Find in Note", "", action.CategoryGeneral).
			WithShortcut("cmd+f"),
	}

	if !note.IsEmpty {
		actions = append(actions,
			action.New("copy_note_content", "Copy Note Content", "", action.CategoryShare).
				WithIcon(action.IconCopy),
			action.New("export_note", "Export Note...", "", action.CategoryShare).
				WithIcon(action.IconShare))
	}

	if note.Pinned {
		actions = append(actions,
			action.New("unpin_note", "Unpin Note", "", action.CategoryGeneral).
				WithIcon(action.IconPin))
	} else {
		actions = append(actions,
			action.New("pin_note", "Pin Note", "", action.CategoryGeneral).
				WithIcon(action.IconPin))
	}

	actions = append(actions,
		action.New("delete_note", "Delete Note", "", action.CategoryDestructive).
			WithShortcut("cmd+backspace").
			WithIcon(action.IconTrash))

	return []action.Source{{Namespace: action.NamespaceNote, Actions: actions}}
}
