// Package geom provides the small 2D geometry vocabulary shared by room
// templates and builders. Rooms are described in plan view: a closed floor
// polygon with one wall segment per edge.
package geom

import "math"

// Vec2 is a 2D point or direction in room-local space (meters).
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// EdgeLength returns the length of the polygon edge from vertex i to the
// next vertex, wrapping around the end of the slice. The polygon is
// implicitly closed.
func EdgeLength(poly []Vec2, i int) float64 {
	if len(poly) < 2 {
		return 0
	}
	a := poly[i%len(poly)]
	b := poly[(i+1)%len(poly)]
	return b.Sub(a).Length()
}

// Centroid returns the arithmetic mean of the polygon's vertices. Good
// enough for placing default lights and spawn points in the authored
// rooms, which are all convex or nearly so.
func Centroid(poly []Vec2) Vec2 {
	if len(poly) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, p := range poly {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(poly)))
}

// Perimeter returns the total perimeter of the implicitly closed polygon.
func Perimeter(poly []Vec2) float64 {
	total := 0.0
	for i := range poly {
		total += EdgeLength(poly, i)
	}
	return total
}
