package action

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Score weights, strongest signal first. A zero total excludes the action.
const (
	scoreTitlePrefix   = 100
	scoreTitleContains = 50
	scoreTitleFuzzy    = 25
	scoreKeyword       = 20
	scoreDescription   = 15
	scoreShortcut      = 10
)

// Score rates an action against a lowercase query.
func Score(a Action, queryLower string) int {
	score := 0

	switch {
	case strings.HasPrefix(a.titleLower, queryLower):
		score += scoreTitlePrefix
	case strings.Contains(a.titleLower, queryLower):
		score += scoreTitleContains
	case len(fuzzy.Find(queryLower, []string{a.titleLower})) > 0:
		score += scoreTitleFuzzy
	}

	for _, k := range a.keywordsLower {
		if strings.Contains(k, queryLower) {
			score += scoreKeyword
			break
		}
	}
	if a.descriptionLower != "" && strings.Contains(a.descriptionLower, queryLower) {
		score += scoreDescription
	}
	if a.shortcutLower != "" && strings.Contains(a.shortcutLower, queryLower) {
		score += scoreShortcut
	}

	return score
}

// Rank returns indices into the set's actions, filtered and ordered for the
// given query. An empty query yields identity ordering. Ranking happens
// independently inside the non-destructive and destructive groups so
// filtering narrows within each group without moving the destructive
// boundary; ties keep original order to avoid visual jitter while typing.
func Rank(s Set, query string) []int {
	query = strings.TrimSpace(query)
	boundary := s.DestructiveBoundary()

	if query == "" {
		indices := make([]int, s.Len())
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	queryLower := strings.ToLower(query)
	rankGroup := func(from, to int) []int {
		type scored struct {
			index int
			score int
		}
		var hits []scored
		for i := from; i < to; i++ {
			if sc := Score(s.actions[i], queryLower); sc > 0 {
				hits = append(hits, scored{index: i, score: sc})
			}
		}
		sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })
		out := make([]int, 0, len(hits))
		for _, h := range hits {
			out = append(out, h.index)
		}
		return out
	}

	indices := rankGroup(0, boundary)
	return append(indices, rankGroup(boundary, s.Len())...)
}

// EmptyStateMessage is the single source for empty-list copy: both dialog
// and command bar call it so "nothing exists" and "nothing matches" never
// drift apart.
func EmptyStateMessage(query string) string {
	if strings.TrimSpace(query) == "" {
		return "No actions available"
	}
	return "No actions match your search"
}
