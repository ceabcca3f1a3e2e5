// Package launchercontext describes what the launcher has focused when an
// actions dialog opens. The kind set is closed: builders dispatch over it
// with a table rather than an open interface.
package launchercontext

import "github.com/runebar/runebar/internal/scriptlet"

// Kind tags the focused-item family.
type Kind int

const (
	// KindGlobal means nothing is selected; only global actions apply.
	KindGlobal Kind = iota
	KindScript
	KindScriptlet
	KindClipboard
	KindChat
	KindFile
	KindPath
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindScriptlet:
		return "scriptlet"
	case KindClipboard:
		return "clipboard"
	case KindChat:
		return "chat"
	case KindFile:
		return "file"
	case KindPath:
		return "path"
	case KindNote:
		return "note"
	default:
		return "global"
	}
}

// ScriptInfo is the focused script or scriptlet entry.
type ScriptInfo struct {
	Name        string
	Path        string
	IsScriptlet bool
	// ActionVerb is the run verb shown in the primary action ("Run",
	// "Open", "Paste", ...).
	ActionVerb string
	Shortcut   string
	Alias      string
	// Suggested marks entries surfaced by frecency ranking; they gain a
	// reset-ranking action.
	Suggested bool
}

// ClipboardEntry is the focused clipboard-history item.
type ClipboardEntry struct {
	ID          string
	Preview     string
	ContentType ClipboardContentType
	Pinned      bool
}

type ClipboardContentType int

const (
	ClipboardText ClipboardContentType = iota
	ClipboardImage
	ClipboardFilePath
)

// ChatPrompt is the focused AI chat turn.
type ChatPrompt struct {
	CurrentModel string
	Models       []ChatModel
	HasResponse  bool
	SessionEmpty bool
}

// ChatModel is one selectable model in the chat actions list.
type ChatModel struct {
	ID   string
	Name string
}

// FileEntry is a file-search result or browsed path.
type FileEntry struct {
	Path  string
	Name  string
	IsDir bool
}

// NoteInfo is the focused note.
type NoteInfo struct {
	ID      string
	Title   string
	Pinned  bool
	IsEmpty bool
}

// Context is the tagged union passed to the builders. Exactly the pointer
// matching Kind is set; the rest stay nil.
type Context struct {
	Kind      Kind
	Script    *ScriptInfo
	Scriptlet *scriptlet.Scriptlet
	Clipboard *ClipboardEntry
	Chat      *ChatPrompt
	File      *FileEntry
	Note      *NoteInfo
}

// Title is the context label shown in the dialog header.
func (c Context) Title() string {
	switch c.Kind {
	case KindScript, KindScriptlet:
		if c.Script != nil {
			return c.Script.Name
		}
	case KindClipboard:
		if c.Clipboard != nil {
			return c.Clipboard.Preview
		}
	case KindChat:
		if c.Chat != nil && c.Chat.CurrentModel != "" {
			return c.Chat.CurrentModel
		}
		return "Chat"
	case KindFile, KindPath:
		if c.File != nil {
			return c.File.Name
		}
	case KindNote:
		if c.Note != nil {
			return c.Note.Title
		}
	}
	return ""
}
