package geom

import (
	"math"
	"testing"
)

func TestEdgeLengthWrapsAround(t *testing.T) {
	square := []Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i := 0; i < 4; i++ {
		if got := EdgeLength(square, i); got != 2 {
			t.Errorf("EdgeLength(square, %d) = %v, want 2", i, got)
		}
	}
	// Edge 3 runs from the last vertex back to the first
	if got := EdgeLength(square, 3); got != 2 {
		t.Errorf("closing edge length = %v, want 2", got)
	}
}

func TestPerimeter(t *testing.T) {
	square := []Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	if got := Perimeter(square); got != 8 {
		t.Errorf("Perimeter = %v, want 8", got)
	}
	if got := Perimeter(nil); got != 0 {
		t.Errorf("Perimeter(nil) = %v, want 0", got)
	}
}

func TestCentroid(t *testing.T) {
	square := []Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	c := Centroid(square)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Centroid = %+v, want origin", c)
	}
	if got := Centroid(nil); got != (Vec2{}) {
		t.Errorf("Centroid(nil) = %+v, want zero", got)
	}
}

func TestVecOps(t *testing.T) {
	v := Vec2{3, 4}
	if v.Length() != 5 {
		t.Errorf("Length = %v, want 5", v.Length())
	}
	if got := v.Add(Vec2{1, 1}); got != (Vec2{4, 5}) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := v.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if math.IsNaN(Vec2{}.Length()) {
		t.Error("zero vector length is NaN")
	}
}
