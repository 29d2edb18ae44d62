package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitTest_Regions(t *testing.T) {
	row := Rect{X: 0, Y: 120, W: 300, H: 60}

	tests := []struct {
		name string
		p    Point
		want Region
	}{
		{name: "checkbox top-left corner", p: Point{X: 15, Y: 140}, want: Checkbox},
		{name: "checkbox inside", p: Point{X: 25, Y: 150}, want: Checkbox},
		{name: "checkbox right edge is body", p: Point{X: 35, Y: 150}, want: BodyArea},
		{name: "left of checkbox", p: Point{X: 5, Y: 150}, want: BodyArea},
		{name: "title area", p: Point{X: 120, Y: 130}, want: BodyArea},
		{name: "above row", p: Point{X: 25, Y: 119}, want: Outside},
		{name: "bottom edge", p: Point{X: 25, Y: 180}, want: Outside},
		{name: "right of row", p: Point{X: 300, Y: 150}, want: Outside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HitTest(row, tt.p, PixelGeometry))
		})
	}
}

func TestHitTest_CheckboxIgnoresRowWidth(t *testing.T) {
	p := Point{X: 20, Y: 25}
	for _, w := range []int{40, 300, 4000} {
		assert.Equal(t, Checkbox, HitTest(Rect{W: w, H: 60}, p, PixelGeometry), "width %d", w)
	}
}

func TestHitTest_CellGeometry(t *testing.T) {
	row := Rect{X: 1, Y: 4, W: 30, H: 3}

	assert.Equal(t, Checkbox, HitTest(row, Point{X: 3, Y: 5}, CellGeometry))
	assert.Equal(t, Checkbox, HitTest(row, Point{X: 5, Y: 5}, CellGeometry))
	assert.Equal(t, BodyArea, HitTest(row, Point{X: 6, Y: 5}, CellGeometry))
	assert.Equal(t, BodyArea, HitTest(row, Point{X: 3, Y: 4}, CellGeometry))
	assert.Equal(t, Outside, HitTest(row, Point{X: 0, Y: 5}, CellGeometry))
}

func TestHitTest_Deterministic(t *testing.T) {
	row := Rect{X: 3, Y: 3, W: 50, H: 3}
	p := Point{X: 6, Y: 4}
	first := HitTest(row, p, CellGeometry)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, HitTest(row, p, CellGeometry))
	}
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "checkbox", Checkbox.String())
	assert.Equal(t, "body", BodyArea.String())
	assert.Equal(t, "outside", Outside.String())
}
