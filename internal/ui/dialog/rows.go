package dialog

import (
	"github.com/rivo/uniseg"

	"github.com/runebar/runebar/internal/action"
)

// Row is one rendered line of the dialog body. Only ActionRow lines are
// focusable; navigation skips headers and separators.
type Row interface {
	isRow()
}

// SectionHeader labels a group of rows ("Actions", "Models", "Trash").
type SectionHeader struct {
	Title string
}

func (SectionHeader) isRow() {}

// Separator divides the regular rows from the trailing destructive run when
// no section labels are in play.
type Separator struct{}

func (Separator) isRow() {}

// ActionRow points into the visible (filtered, ranked) action slice.
type ActionRow struct {
	Index int
}

func (ActionRow) isRow() {}

// buildRows lays out the visible actions with their grouping chrome. With
// sections, a header precedes each section change; without, a bare separator
// marks the destructive boundary.
func buildRows(visible []action.Action) []Row {
	var rows []Row

	grouped := false
	for _, a := range visible {
		if a.Section != "" {
			grouped = true
			break
		}
	}

	if grouped {
		lastSection := ""
		for i, a := range visible {
			if a.Section != lastSection {
				rows = append(rows, SectionHeader{Title: a.Section})
				lastSection = a.Section
			}
			rows = append(rows, ActionRow{Index: i})
		}
		return rows
	}

	separatorAt := -1
	for i, a := range visible {
		if action.IsDestructive(a) {
			separatorAt = i
			break
		}
	}
	for i := range visible {
		if i == separatorAt && i > 0 {
			rows = append(rows, Separator{})
		}
		rows = append(rows, ActionRow{Index: i})
	}
	return rows
}

// headerRowCount reports how many non-action rows the layout adds, for the
// height formula.
func headerRowCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if _, ok := r.(ActionRow); !ok {
			n++
		}
	}
	return n
}

// truncateTitle shortens a title to the given cell width on a grapheme
// cluster boundary, appending an ellipsis when anything was cut.
func truncateTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(title) <= width {
		return title
	}
	out := ""
	used := 0
	state := -1
	rest := title
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := uniseg.StringWidth(cluster)
		if used+w > width-1 {
			break
		}
		out += cluster
		used += w
	}
	return out + "…"
}
