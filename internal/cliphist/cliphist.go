// Package cliphist is the in-memory clipboard history backing the clipboard
// context: most recent first, pinned entries survive pruning, and ids stay
// stable for the lifetime of an entry.
package cliphist

import (
	"fmt"
	"strings"

	"github.com/runebar/runebar/internal/launchercontext"
)

const DefaultLimit = 100

type Store struct {
	entries []launchercontext.ClipboardEntry
	limit   int
	nextID  uint64
}

func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Add records a new clipboard capture at the front. Re-copying existing
// content moves its entry to the front instead of duplicating it.
func (s *Store) Add(preview string, contentType launchercontext.ClipboardContentType) launchercontext.ClipboardEntry {
	preview = strings.TrimSpace(preview)
	for i, e := range s.entries {
		if e.Preview == preview && e.ContentType == contentType {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.entries = append([]launchercontext.ClipboardEntry{e}, s.entries...)
			return e
		}
	}

	s.nextID++
	entry := launchercontext.ClipboardEntry{
		ID:          fmt.Sprintf("e%d", s.nextID),
		Preview:     preview,
		ContentType: contentType,
	}
	s.entries = append([]launchercontext.ClipboardEntry{entry}, s.entries...)
	s.prune()
	return entry
}

// prune drops the oldest unpinned entries over the limit.
func (s *Store) prune() {
	over := len(s.entries) - s.limit
	for i := len(s.entries) - 1; i >= 0 && over > 0; i-- {
		if s.entries[i].Pinned {
			continue
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		over--
	}
}

func (s *Store) Get(id string) (launchercontext.ClipboardEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return launchercontext.ClipboardEntry{}, false
}

// SetPinned flips the pin flag; pinned entries are exempt from pruning.
func (s *Store) SetPinned(id string, pinned bool) bool {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Pinned = pinned
			return true
		}
	}
	return false
}

func (s *Store) Delete(id string) bool {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteAll clears the whole history, pinned entries included.
func (s *Store) DeleteAll() {
	s.entries = nil
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns the history, most recent first.
func (s *Store) Entries() []launchercontext.ClipboardEntry {
	out := make([]launchercontext.ClipboardEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
