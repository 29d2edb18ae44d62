package listview

// Region is the semantic part of a row targeted by a pointer.
type Region int

const (
	// Outside means the pointer is not within the row at all.
	Outside Region = iota
	// Checkbox means the pointer is on the row's completion toggle.
	Checkbox
	// BodyArea is anywhere else inside the row.
	BodyArea
)

func (r Region) String() string {
	switch r {
	case Checkbox:
		return "checkbox"
	case BodyArea:
		return "body"
	default:
		return "outside"
	}
}

// Point is a pointer coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. Containment is half-open: the right and
// bottom edges are outside.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Geometry places the checkbox relative to a row's top-left corner.
// It does not depend on the row width.
type Geometry struct {
	OffsetX, OffsetY int
	Width, Height    int
}

var (
	// PixelGeometry is a 20px square, 15px in and 20px down.
	PixelGeometry = Geometry{OffsetX: 15, OffsetY: 20, Width: 20, Height: 20}

	// CellGeometry is the terminal rendition: "[x]" on the second line of a
	// row, two columns in.
	CellGeometry = Geometry{OffsetX: 2, OffsetY: 1, Width: 3, Height: 1}
)

// CheckboxRect returns the checkbox rectangle for a row.
func (g Geometry) CheckboxRect(row Rect) Rect {
	return Rect{X: row.X + g.OffsetX, Y: row.Y + g.OffsetY, W: g.Width, H: g.Height}
}

// HitTest resolves which region of row the pointer p targets.
// It has no state: the same inputs always give the same region.
func HitTest(row Rect, p Point, g Geometry) Region {
	if !row.Contains(p) {
		return Outside
	}
	if g.CheckboxRect(row).Contains(p) {
		return Checkbox
	}
	return BodyArea
}
