package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopupHeightEmptyEqualsSingleRow(t *testing.T) {
	m := DefaultMetrics()
	empty := PopupHeight(0, 0, true, true, false, m)
	single := PopupHeight(1, 0, true, true, false, m)
	assert.Equal(t, single, empty)
}

func TestPopupHeightGrowsWithRowsUntilClamp(t *testing.T) {
	m := DefaultMetrics()
	prev := PopupHeight(1, 0, true, false, false, m)
	for rows := 2; rows <= 40; rows++ {
		h := PopupHeight(rows, 0, true, false, false, m)
		assert.GreaterOrEqual(t, h, prev, "rows=%d", rows)
		assert.LessOrEqual(t, h, m.MaxHeight, "rows=%d", rows)
		prev = h
	}
	assert.Equal(t, m.MaxHeight, prev)
}

func TestPopupHeightCountsChrome(t *testing.T) {
	m := DefaultMetrics()
	base := PopupHeight(5, 0, false, false, false, m)
	assert.Equal(t, base+m.SearchHeight, PopupHeight(5, 0, true, false, false, m))
	assert.Equal(t, base+m.HeaderHeight, PopupHeight(5, 0, false, true, false, m))
	assert.Equal(t, base+m.FooterHeight, PopupHeight(5, 0, false, false, true, m))
	assert.Equal(t, base+2*m.RowHeight, PopupHeight(5, 2, false, false, false, m))
}

func TestPopupHeightRespectsMin(t *testing.T) {
	m := Metrics{RowHeight: 1, MinHeight: 10, MaxHeight: 20}
	assert.Equal(t, 10, PopupHeight(1, 0, false, false, false, m))
}

func TestVisibleRowWindowInvertsHeight(t *testing.T) {
	m := DefaultMetrics()
	for rows := 1; rows <= 10; rows++ {
		h := PopupHeight(rows, 1, true, true, false, m)
		if h >= m.MaxHeight {
			break
		}
		assert.Equal(t, rows, VisibleRowWindow(h, 1, true, true, false, m), "rows=%d", rows)
	}
}

func TestPopupWidth(t *testing.T) {
	assert.Equal(t, 60, PopupWidth(60, 120))
	assert.Equal(t, 38, PopupWidth(60, 40))
	assert.Equal(t, 1, PopupWidth(60, 2))
	// Unknown terminal width keeps the preference.
	assert.Equal(t, 60, PopupWidth(60, 0))
}
