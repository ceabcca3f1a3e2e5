package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runebar/runebar/internal/action"
)

func TestBuildRowsSeparatorBeforeDestructiveRun(t *testing.T) {
	visible := []action.Action{
		action.New("a", "A", "", action.CategoryGeneral),
		action.New("b", "B", "", action.CategoryGeneral),
		action.New("delete_x", "Delete X", "", action.CategoryDestructive),
	}
	rows := buildRows(visible)

	assert.Equal(t, []Row{
		ActionRow{Index: 0},
		ActionRow{Index: 1},
		Separator{},
		ActionRow{Index: 2},
	}, rows)
	assert.Equal(t, 1, headerRowCount(rows))
}

func TestBuildRowsNoSeparatorWhenAllDestructive(t *testing.T) {
	visible := []action.Action{
		action.New("delete_x", "Delete X", "", action.CategoryDestructive),
		action.New("delete_y", "Delete Y", "", action.CategoryDestructive),
	}
	rows := buildRows(visible)
	assert.Equal(t, []Row{ActionRow{Index: 0}, ActionRow{Index: 1}}, rows)
}

func TestBuildRowsSectionHeaders(t *testing.T) {
	visible := []action.Action{
		action.New("a", "A", "", action.CategoryGeneral).WithSection("Actions"),
		action.New("b", "B", "", action.CategoryGeneral).WithSection("Actions"),
		action.New("m", "M", "", action.CategoryGeneral).WithSection("Models"),
		action.New("delete_x", "Delete X", "", action.CategoryDestructive).WithSection("Trash"),
	}
	rows := buildRows(visible)

	assert.Equal(t, []Row{
		SectionHeader{Title: "Actions"},
		ActionRow{Index: 0},
		ActionRow{Index: 1},
		SectionHeader{Title: "Models"},
		ActionRow{Index: 2},
		SectionHeader{Title: "Trash"},
		ActionRow{Index: 3},
	}, rows)
	assert.Equal(t, 3, headerRowCount(rows))
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", truncateTitle("short", 10))
	assert.Equal(t, "long ti…", truncateTitle("long title here", 8))
	assert.Equal(t, "", truncateTitle("anything", 0))
	// Grapheme clusters are never split.
	assert.Equal(t, "héllo", truncateTitle("héllo", 5))
}
