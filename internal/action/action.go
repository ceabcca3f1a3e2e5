package action

import "strings"

// Category is the logical grouping of an action, orthogonal to its
// display section.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryEdit
	CategoryShare
	CategoryScriptOps
	CategoryGlobalOps
	CategoryTerminal
	CategoryDestructive
)

func (c Category) String() string {
	switch c {
	case CategoryEdit:
		return "edit"
	case CategoryShare:
		return "share"
	case CategoryScriptOps:
		return "script"
	case CategoryGlobalOps:
		return "global"
	case CategoryTerminal:
		return "terminal"
	case CategoryDestructive:
		return "destructive"
	default:
		return "general"
	}
}

// Icon names a glyph the host may render next to an action row.
type Icon string

const (
	IconNone       Icon = ""
	IconPlay       Icon = "play"
	IconPencil     Icon = "pencil"
	IconCopy       Icon = "copy"
	IconFolderOpen Icon = "folder-open"
	IconSettings   Icon = "settings"
	IconTrash      Icon = "trash"
	IconRefresh    Icon = "refresh"
	IconClipboard  Icon = "clipboard"
	IconChat       Icon = "chat"
	IconNote       Icon = "note"
	IconTerminal   Icon = "terminal"
	IconPin        Icon = "pin"
	IconShare      Icon = "share"
)

// Action is one executable command candidate shown in a dialog or the
// command bar. Actions are built once per dialog session and never mutated
// afterwards; reopening recomputes the whole set.
type Action struct {
	ID          string
	Title       string
	Description string
	Category    Category
	// Section is the display grouping label ("Actions", "Edit", ...).
	// Empty means ungrouped; Merge fills it in when siblings are grouped.
	Section  string
	Shortcut string
	Icon     Icon
	Keywords []string
	// Destructive marks the action for the confirmation gate explicitly.
	// IsDestructive also applies an id/title heuristic for third-party
	// actions that never set this flag.
	Destructive bool
	// KeepOpen opts the action out of closing the dialog after execution.
	KeepOpen bool
	// HasHandler routes execution back to the declaring source (SDK or
	// scriptlet command) instead of a built-in handler. Value carries the
	// payload to submit or run.
	HasHandler bool
	Value      string

	// Lowercase copies computed once so scoring does not re-fold strings
	// on every keystroke.
	titleLower       string
	descriptionLower string
	shortcutLower    string
	keywordsLower    []string
}

// New constructs an action and precomputes its lowercase match fields.
func New(id, title, description string, category Category) Action {
	a := Action{
		ID:          id,
		Title:       title,
		Description: description,
		Category:    category,
	}
	a.refreshLower()
	return a
}

func (a *Action) refreshLower() {
	a.titleLower = strings.ToLower(a.Title)
	a.descriptionLower = strings.ToLower(a.Description)
	a.shortcutLower = strings.ToLower(a.Shortcut)
	a.keywordsLower = a.keywordsLower[:0]
	for _, k := range a.Keywords {
		a.keywordsLower = append(a.keywordsLower, strings.ToLower(k))
	}
}

func (a Action) WithSection(section string) Action {
	a.Section = section
	return a
}

func (a Action) WithShortcut(shortcut string) Action {
	a.Shortcut = shortcut
	a.shortcutLower = strings.ToLower(shortcut)
	return a
}

func (a Action) WithIcon(icon Icon) Action {
	a.Icon = icon
	return a
}

func (a Action) WithKeywords(keywords ...string) Action {
	a.Keywords = keywords
	a.refreshLower()
	return a
}

func (a Action) WithDestructive() Action {
	a.Destructive = true
	return a
}

func (a Action) WithKeepOpen() Action {
	a.KeepOpen = true
	return a
}

// WithHandler marks the action as handled by its declaring source with the
// given payload.
func (a Action) WithHandler(value string) Action {
	a.HasHandler = true
	a.Value = value
	return a
}
