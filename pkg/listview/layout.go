package listview

// Layout describes where fixed-height rows are drawn.
// Origin is the top-left corner of the first visible row; Offset is the store
// index shown there.
type Layout struct {
	Origin    Point
	Width     int
	RowHeight int
	Offset    int
}

// Bounds returns the rectangle of the row at index.
// Rows scrolled out of view get rectangles above or below the visible area.
func (l Layout) Bounds(index int) Rect {
	return Rect{
		X: l.Origin.X,
		Y: l.Origin.Y + (index-l.Offset)*l.RowHeight,
		W: l.Width,
		H: l.RowHeight,
	}
}

// IndexAt returns the index of the row under p, given the number of rows.
func (l Layout) IndexAt(p Point, rows int) (int, bool) {
	if l.RowHeight <= 0 || p.X < l.Origin.X || p.X >= l.Origin.X+l.Width || p.Y < l.Origin.Y {
		return -1, false
	}
	index := l.Offset + (p.Y-l.Origin.Y)/l.RowHeight
	if index < 0 || index >= rows {
		return -1, false
	}
	return index, true
}

// Visible returns how many rows fit in height.
func (l Layout) Visible(height int) int {
	if l.RowHeight <= 0 || height <= 0 {
		return 0
	}
	return height / l.RowHeight
}

// ScrollTo returns a layout whose Offset keeps index inside a window of
// visible rows, moving as little as possible.
func (l Layout) ScrollTo(index, visible, rows int) Layout {
	if visible <= 0 {
		return l
	}
	if index < l.Offset {
		l.Offset = index
	} else if index >= l.Offset+visible {
		l.Offset = index - visible + 1
	}
	return l.Clamp(visible, rows)
}

// Clamp keeps Offset within [0, rows-visible].
func (l Layout) Clamp(visible, rows int) Layout {
	maxOffset := rows - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Offset > maxOffset {
		l.Offset = maxOffset
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
	return l
}
