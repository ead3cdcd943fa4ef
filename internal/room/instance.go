package room

import (
	"math"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/audio"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/logger"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/material"
)

// State tracks an instance through its lifecycle. Update is only valid
// in StateBuilt; everything after StateDisposed is a tolerated no-op.
type State int

const (
	StateUnbuilt State = iota
	StateBuilt
	StateDisposed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateBuilt:
		return "built"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Geometry is a handle to one mesh resource owned by an instance. The
// actual vertex data lives with the rendering host; the engine tracks
// ownership and release.
type Geometry struct {
	ID          string
	Kind        string // "floor", "wall", "furniture", "doorway", "stain"
	VertexCount int
	released    bool
}

// Released reports whether this geometry has been released.
func (g *Geometry) Released() bool {
	return g.released
}

// Release frees the geometry. Only the first call does anything.
func (g *Geometry) Release() {
	g.released = true
}

// lightState carries the decorative flicker phase for one authored
// light. Phases are baked from the room seed so flicker timing is
// reproducible.
type lightState struct {
	flicker     bool
	phase       float64
	Intensity   float64 // Current intensity, written each update
	base        float64
	flickerSeed int64
}

// Instance is the live composition of geometry and materials built from
// one template. It exclusively owns everything it allocates: no resource
// is shared with another instance or outlives Dispose.
type Instance struct {
	template    *Template
	roomIndex   int
	seed        int64
	abnormality float64

	state   State
	elapsed float64 // Instance-local clock, advanced by Update's delta

	factory    *material.Factory
	geometries []*Geometry
	materials  []*material.Material
	lights     []lightState

	// ParticleDrift is the decorative particle offset the host reads
	// after each update. Driven by the bass band.
	ParticleDrift float64
}

// Template returns the template this instance was built from.
func (i *Instance) Template() *Template {
	return i.template
}

// RoomIndex returns the progression index the instance was built for.
func (i *Instance) RoomIndex() int {
	return i.roomIndex
}

// Seed returns the build seed.
func (i *Instance) Seed() int64 {
	return i.seed
}

// Abnormality returns the escalation factor baked into this instance.
func (i *Instance) Abnormality() float64 {
	return i.abnormality
}

// State returns the current lifecycle state.
func (i *Instance) State() State {
	return i.state
}

// Geometries returns the owned geometry handles. Callers must not
// release them; ownership stays with the instance.
func (i *Instance) Geometries() []*Geometry {
	return i.geometries
}

// Materials returns the owned materials. Ownership stays with the
// instance.
func (i *Instance) Materials() []*material.Material {
	return i.materials
}

// LightIntensity returns the current decorative intensity of light n,
// or 0 if n is out of range.
func (i *Instance) LightIntensity(n int) float64 {
	if n < 0 || n >= len(i.lights) {
		return 0
	}
	return i.lights[n].Intensity
}

// Update advances the instance one frame. It forwards the band snapshot
// to every owned procedural material and drives the room's decorative
// animation from the same bands. The instance clock deliberately
// accumulates delta: Update is called exactly once per rendered frame,
// so the accumulated value is the room's absolute age, which is what the
// factory's time-driven effects are computed from.
//
// Calling Update on a disposed instance is a logged no-op; the render
// loop must never crash on a stale reference.
func (i *Instance) Update(d audio.Data, delta float64) {
	if i.state != StateBuilt {
		logger.Debug("Ignoring update on non-built room instance",
			"room", i.template.ID, "state", i.state.String())
		return
	}
	if math.IsNaN(delta) || delta < 0 {
		delta = 0
	}
	d = d.Sanitize()
	i.elapsed += delta

	for _, m := range i.materials {
		if m == nil || m.Released() {
			// One malformed material must not blank the frame.
			logger.Warning("Skipping malformed material in update pass", "room", i.template.ID)
			continue
		}
		switch m.Kind() {
		case material.KindProcedural:
			i.factory.Update(m, i.elapsed, delta, d)
		case material.KindStatic, material.KindBasic:
			// Baked at construction, nothing per-frame.
		}
	}

	i.updateDecor(d)
}

// updateDecor drives flicker and particle drift. Everything here is a
// pure function of the instance clock, the baked phases, and this
// frame's bands.
func (i *Instance) updateDecor(d audio.Data) {
	for n := range i.lights {
		l := &i.lights[n]
		if !l.flicker {
			l.Intensity = l.base
			continue
		}
		// Fluorescent stutter: seeded noise gate sharpened by the high
		// band, so lights buzz harder as the mix brightens.
		gate := material.ValueNoise(l.flickerSeed, i.elapsed*7+l.phase, 0)
		drop := 0.0
		if gate < 0.12+d.High*0.25 {
			drop = 0.6
		}
		l.Intensity = l.base * (1 - drop)
	}

	i.ParticleDrift = math.Sin(i.elapsed*0.4)*0.5 + d.Bass*(0.5+i.abnormality)
}

// Dispose releases every owned geometry and material exactly once and
// moves the instance to StateDisposed. Later calls, including defensive
// double-dispose from the host, are no-ops.
func (i *Instance) Dispose() {
	if i.state == StateDisposed {
		logger.Debug("Ignoring repeat dispose", "room", i.template.ID)
		return
	}
	for _, g := range i.geometries {
		if g != nil && !g.Released() {
			g.Release()
		}
	}
	for _, m := range i.materials {
		if m != nil && !m.Released() {
			m.Release()
		}
	}
	i.state = StateDisposed
	logger.Debug("Disposed room instance",
		"room", i.template.ID,
		"geometries", len(i.geometries),
		"materials", len(i.materials))
}
