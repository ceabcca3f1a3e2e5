package builders

import (
	"github.com/runebar/runebar/internal/action"
	"github.com/runebar/runebar/internal/launchercontext"
)

func buildClipboard(ctx launchercontext.Context) []action.Source {
	entry := ctx.Clipboard
	if entry == nil {
		buildLog.Warn("clipboard context without entry, skipping")
		return nil
	}

	actions := []action.Action{
		action.New("clipboard_paste", "Paste to Active App", "", action.CategoryGeneral).
			WithShortcut("enter").
			WithIcon(action.IconClipboard),
		action.New("clipboard_copy", "Copy to Clipboard", "", action.CategoryGeneral).
			WithShortcut("cmd+c").
			WithIcon(action.IconCopy),
	}

	if entry.Pinned {
		actions = append(actions,
			action.New("clipboard_unpin", "Unpin Entry", "", action.CategoryGeneral).
				WithShortcut("cmd+p").
				WithIcon(action.IconPin))
	} else {
		actions = append(actions,
			action.New("clipboard_pin", "Pin Entry", "Pinned entries survive history pruning", action.CategoryGeneral).
				WithShortcut("cmd+p").
				WithIcon(action.IconPin))
	}

	switch entry.ContentType {
	case launchercontext.ClipboardText:
		actions = append(actions,
			action.New("clipboard_save_snippet", "Save as Snippet", "", action.CategoryShare),
			action.New("clipboard_attach_to_ai", "Attach to AI Chat", "", action.CategoryShare).
				WithIcon(action.IconChat))
	case launchercontext.ClipboardImage:
		actions = append(actions,
			action.New("clipboard_ocr", "Copy Text from Image", "", action.CategoryGeneral).
				WithKeywords("ocr", "extract"),
			action.New("clipboard_save_file", "Save to File", "", action.CategoryShare))
	case launchercontext.ClipboardFilePath:
		actions = append(actions,
			action.New("clipboard_open_with", "Open With...", "", action.CategoryGeneral),
			action.New("clipboard_quick_look", "Quick Look", "", action.CategoryGeneral).
				WithShortcut("space"))
	}

	actions = append(actions,
		action.New("clipboard_share", "Share...", "", action.CategoryShare).
			WithIcon(action.IconShare),
		action.New("clipboard_delete", "Delete Entry", "", action.CategoryDestructive).
			WithShortcut("cmd+backspace").
			WithIcon(action.IconTrash),
		action.New("clipboard_delete_all", "Delete All Entries", "Clears the entire clipboard history", action.CategoryDestructive).
			WithIcon(action.IconTrash),
	)

	return []action.Source{{Namespace: action.NamespaceClipboard, Actions: actions}}
}
