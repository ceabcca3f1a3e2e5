// Package layout computes popup geometry. One function owns the height
// formula for both the initial open and every live resize, so the two paths
// can never drift apart.
package layout

// Metrics are the fixed per-chrome heights and the clamping bounds the host
// configures once at startup.
type Metrics struct {
	RowHeight    int
	HeaderHeight int
	SearchHeight int
	FooterHeight int
	// Padding is applied once around the whole popup, top and bottom.
	Padding   int
	MinHeight int
	MaxHeight int
}

// DefaultMetrics matches the host's rendered row and chrome sizes.
func DefaultMetrics() Metrics {
	return Metrics{
		RowHeight:    1,
		HeaderHeight: 1,
		SearchHeight: 1,
		FooterHeight: 1,
		Padding:      1,
		MinHeight:    3,
		MaxHeight:    18,
	}
}

// PopupHeight returns the popup's total height for the given visible row
// count. An empty list still shows one row (the empty-state message), so
// visibleRows of zero sizes identically to a single row. headerRows counts
// section header and separator rows interleaved with the actions.
func PopupHeight(visibleRows, headerRows int, showSearch, hasContextHeader, showFooter bool, m Metrics) int {
	rows := visibleRows
	if rows < 1 {
		rows = 1
	}
	h := rows*m.RowHeight + headerRows*m.RowHeight + 2*m.Padding
	if showSearch {
		h += m.SearchHeight
	}
	if hasContextHeader {
		h += m.HeaderHeight
	}
	if showFooter {
		h += m.FooterHeight
	}
	return clamp(h, m.MinHeight, m.MaxHeight)
}

// PopupWidth clamps the preferred width to the available terminal width,
// leaving a one-cell margin on each side.
func PopupWidth(preferred, available int) int {
	if available <= 0 {
		return preferred
	}
	max := available - 2
	if max < 1 {
		max = 1
	}
	if preferred > max {
		return max
	}
	return preferred
}

// VisibleRowWindow returns how many action rows fit inside a popup of the
// given total height, inverting PopupHeight's chrome accounting.
func VisibleRowWindow(totalHeight, headerRows int, showSearch, hasContextHeader, showFooter bool, m Metrics) int {
	h := totalHeight - 2*m.Padding - headerRows*m.RowHeight
	if showSearch {
		h -= m.SearchHeight
	}
	if hasContextHeader {
		h -= m.HeaderHeight
	}
	if showFooter {
		h -= m.FooterHeight
	}
	if m.RowHeight <= 0 {
		return 0
	}
	rows := h / m.RowHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}
