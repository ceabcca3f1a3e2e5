package action

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Namespaces used to keep builder-local ids from colliding across sources.
// Global and script-core actions deliberately carry no namespace.
const (
	NamespaceScriptletAction = "scriptlet_action"
	NamespaceClipboard       = "clip"
	NamespaceChat            = "chat"
	NamespaceFile            = "file"
	NamespaceNote            = "note"
)

var knownNamespaces = []string{
	NamespaceScriptletAction,
	NamespaceClipboard,
	NamespaceChat,
	NamespaceFile,
	NamespaceNote,
}

var mergeLog = log.WithPrefix("actions")

// Source is one builder's output together with the namespace its local ids
// are prefixed with during merge.
type Source struct {
	Namespace string
	Actions   []Action
}

// Set is the merged, namespaced, ordered action collection owned by one
// dialog session. Destructive actions form a single trailing run.
type Set struct {
	actions []Action
}

func (s Set) Len() int          { return len(s.actions) }
func (s Set) Actions() []Action { return s.actions }

func (s Set) At(i int) Action { return s.actions[i] }

// NamespaceID prefixes a builder-local id with a source namespace.
func NamespaceID(namespace, id string) string {
	if namespace == "" {
		return id
	}
	return namespace + ":" + id
}

// SplitNamespace reverses NamespaceID for the known namespaces. The counter
// suffix appended by UniqueID stays attached: it is part of the identity
// that distinguishes which declared block to run.
func SplitNamespace(id string) (namespace, local string) {
	for _, ns := range knownNamespaces {
		if rest, ok := strings.CutPrefix(id, ns+":"); ok {
			return ns, rest
		}
	}
	return "", id
}

// UniqueID returns base if it is free in used, otherwise the first free
// counter-suffixed variant (base__2, base__3, ...). The suffixing is itself
// collision-aware: a pre-existing base__2 from another source is skipped
// over. The chosen id is recorded in used.
func UniqueID(used map[string]struct{}, base string) string {
	id := base
	for n := 2; ; n++ {
		if _, taken := used[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s__%d", base, n)
	}
	used[id] = struct{}{}
	return id
}

// Merge combines builder outputs into one Set:
//   - each source's local ids are namespaced, then deduplicated with
//     UniqueID so the set's ids are pairwise unique;
//   - destructive actions are pulled into a trailing contiguous run,
//     preserving relative order within each group;
//   - when any surviving action carries a section, sectionless siblings are
//     assigned defaults so grouping stays homogeneous ("Actions" for
//     non-destructive rows, "Trash" for destructive ones).
func Merge(sources ...Source) Set {
	used := make(map[string]struct{})
	var regular, destructive []Action

	for _, src := range sources {
		for _, a := range src.Actions {
			if strings.TrimSpace(a.ID) == "" {
				mergeLog.Warn("dropping action with empty id", "namespace", src.Namespace, "title", a.Title)
				continue
			}
			base := NamespaceID(src.Namespace, a.ID)
			id := UniqueID(used, base)
			if id != base {
				mergeLog.Debug("deduplicated colliding action id", "base", base, "id", id)
			}
			a.ID = id
			if IsDestructive(a) {
				destructive = append(destructive, a)
			} else {
				regular = append(regular, a)
			}
		}
	}

	merged := append(regular, destructive...)

	grouped := false
	for _, a := range merged {
		if a.Section != "" {
			grouped = true
			break
		}
	}
	if grouped {
		for i := range merged {
			if merged[i].Section != "" {
				continue
			}
			if i >= len(regular) {
				merged[i].Section = "Trash"
			} else {
				merged[i].Section = "Actions"
			}
		}
	}

	return Set{actions: merged}
}

// DestructiveBoundary returns the index of the first destructive action, or
// len if the set has none.
func (s Set) DestructiveBoundary() int {
	for i, a := range s.actions {
		if IsDestructive(a) {
			return i
		}
	}
	return len(s.actions)
}
