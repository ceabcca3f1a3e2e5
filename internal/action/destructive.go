package action

import "strings"

// destructiveIDs are stable built-in ids that always gate.
var destructiveIDs = map[string]struct{}{
	"move_to_trash":      {},
	"reset_ranking":      {},
	"clear_conversation": {},
}

// IsDestructive reports whether an action must pass the confirmation gate.
//
// The explicit flag wins. For dynamic or SDK-declared actions that never set
// it, an id/title heuristic applies. The heuristic can false-positive on
// benign titles that merely contain "delete" or "remove"; that risk is
// accepted rather than silently special-cased.
func IsDestructive(a Action) bool {
	if a.Destructive || a.Category == CategoryDestructive {
		return true
	}

	_, id := SplitNamespace(a.ID)
	if _, ok := destructiveIDs[id]; ok {
		return true
	}
	if strings.HasPrefix(id, "remove_") || strings.HasPrefix(id, "delete_") {
		return true
	}
	if strings.Contains(id, "_delete") || strings.Contains(id, "_trash") || strings.Contains(id, "permanently") {
		return true
	}

	title := a.titleLower
	if title == "" {
		title = strings.ToLower(a.Title)
	}
	return strings.HasPrefix(title, "remove ") ||
		strings.HasPrefix(title, "delete ") ||
		strings.HasPrefix(title, "clear ") ||
		strings.HasPrefix(title, "move to trash") ||
		strings.Contains(title, "permanently")
}
