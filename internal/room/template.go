// Package room defines the authored room templates, the validated
// registry they live in, and the live Instance lifecycle every concrete
// room builder must satisfy.
package room

import (
	"fmt"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/geom"
)

// Template is the immutable authored description of one environment:
// its floor plan, walls, lights, palette, atmosphere, furniture, and
// exits. Templates are compiled-in content, loaded once and never
// mutated at runtime.
type Template struct {
	ID        string // Stable identifier: "infinite_hallway"
	Name      string // Display name: "The Infinite Hallway"
	Archetype string // Broad category: corridor, office, pool
	Shape     string // Plan shape tag: rectangle, l_shape, octagon

	// Overall bounding dimensions in meters.
	Width  float64
	Depth  float64
	Height float64

	// FloorVertices is the closed floor polygon in plan view, wound
	// counter-clockwise. The polygon closes implicitly from the last
	// vertex back to the first.
	FloorVertices []geom.Vec2

	// WallSegments has exactly one entry per polygon edge: segment i
	// spans FloorVertices[i] to FloorVertices[(i+1) % len].
	WallSegments []WallSegment

	Lights     []Light
	Palette    Palette
	Atmosphere Atmosphere
	Furniture  []Furniture
	Doorways   []Doorway
	Floor      SurfaceSpec
	Ceiling    SurfaceSpec
}

// WallSegment describes one perimeter wall.
type WallSegment struct {
	Height float64
}

// Light is an authored light source descriptor.
type Light struct {
	Position  geom.Vec2
	Height    float64
	Intensity float64
	Color     string // Hex color: "#fff4d6"
	Flicker   bool   // Fluorescent-style flicker, driven by the high band
}

// Palette names the color roles a builder pulls surface colors from.
type Palette struct {
	Wall    string
	Floor   string
	Ceiling string
	Accent  string
	Glow    string
}

// Atmosphere describes fog and particle hints for the room volume.
type Atmosphere struct {
	FogDensity   float64
	FogColor     string
	ParticleHint string // "dust", "chlorine_haze", "" for none
}

// Furniture is one placed prop. Layout detail beyond placement is the
// concern of the rendering host, not this engine.
type Furniture struct {
	Kind     string // "bench", "filing_cabinet", "pool_ladder"
	Position geom.Vec2
	Rotation float64
	Scale    float64
}

// Doorway is a named exit on the room perimeter.
type Doorway struct {
	Position         geom.Vec2
	Facing           float64 // Radians, direction the player exits through
	Width            float64
	Height           float64
	WallSegmentIndex int // Which wall segment the doorway cuts through
	LeadsTo          int // Room index this doorway advances to
	GlowColor        string
	Label            string // Optional signage text
}

// SurfaceSpec describes a floor or ceiling surface.
type SurfaceSpec struct {
	Material string // "carpet", "tile", "concrete", "acoustic_panel"
	TileSize float64
}

// Validate checks the template's structural invariants. A failing
// template is a content defect: callers treat the error as fatal at
// registry load rather than risking it mid-play.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has empty ID")
	}
	if len(t.FloorVertices) < 3 {
		return fmt.Errorf("template %q: floor polygon needs at least 3 vertices, got %d", t.ID, len(t.FloorVertices))
	}
	if len(t.WallSegments) != len(t.FloorVertices) {
		return fmt.Errorf("template %q: %d wall segments for %d floor vertices; need one wall per polygon edge",
			t.ID, len(t.WallSegments), len(t.FloorVertices))
	}
	if t.Width <= 0 || t.Depth <= 0 || t.Height <= 0 {
		return fmt.Errorf("template %q: non-positive dimensions %vx%vx%v", t.ID, t.Width, t.Depth, t.Height)
	}
	for i, w := range t.WallSegments {
		if w.Height <= 0 {
			return fmt.Errorf("template %q: wall segment %d has non-positive height %v", t.ID, i, w.Height)
		}
	}
	for i, d := range t.Doorways {
		if d.WallSegmentIndex < 0 || d.WallSegmentIndex >= len(t.WallSegments) {
			return fmt.Errorf("template %q: doorway %d references wall segment %d, only %d exist",
				t.ID, i, d.WallSegmentIndex, len(t.WallSegments))
		}
		if d.Width <= 0 || d.Height <= 0 {
			return fmt.Errorf("template %q: doorway %d has non-positive size %vx%v", t.ID, i, d.Width, d.Height)
		}
	}
	return nil
}
