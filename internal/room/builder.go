package room

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/geom"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/material"
)

// BuilderFunc builds a live instance from a seed. Two calls with the
// same seed must produce identical instances; every piece of randomness
// in a builder, decorative jitter included, must come from a generator
// derived from that seed.
type BuilderFunc func(seed int64) (*Instance, error)

var (
	buildersMu sync.RWMutex
	builders   = make(map[string]BuilderFunc)
)

// RegisterBuilder registers a custom builder for a template ID,
// replacing the generic one. Registration happens at init time, before
// the frame loop starts.
func RegisterBuilder(templateID string, fn BuilderFunc) {
	buildersMu.Lock()
	defer buildersMu.Unlock()
	builders[templateID] = fn
}

// BuilderFor returns the registered builder for a template ID, or nil
// if the template uses the generic builder.
func BuilderFor(templateID string) BuilderFunc {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	return builders[templateID]
}

// Build constructs an instance from a template. This is the generic
// builder: floor, ceiling, one wall per polygon edge, furniture
// placements, doorway cutouts, and seeded decorative stains, with
// materials built through the factory. Custom builders registered via
// RegisterBuilder take precedence for their template.
func Build(tpl *Template, roomIndex int, seed int64, abnormality float64, f *material.Factory) (*Instance, error) {
	if tpl == nil {
		return nil, fmt.Errorf("cannot build from nil template")
	}
	if err := tpl.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to build defective template: %w", err)
	}
	if f == nil {
		return nil, fmt.Errorf("cannot build %q without a material factory", tpl.ID)
	}
	if abnormality < 0 {
		abnormality = 0
	}
	if abnormality > 1 {
		abnormality = 1
	}

	if fn := BuilderFor(tpl.ID); fn != nil {
		return fn(seed)
	}

	// Room seed = base seed salted by index, same derivation the
	// material factory uses, so room and surfaces stay in step.
	rng := rand.New(rand.NewSource(material.DeriveSeed(seed, int64(roomIndex))))

	inst := &Instance{
		template:    tpl,
		roomIndex:   roomIndex,
		seed:        seed,
		abnormality: abnormality,
		factory:     f,
	}

	baseCfg := material.Config{
		Seed:             seed,
		RoomIndex:        roomIndex,
		PatternScale:     1 + rng.Float64()*2,
		PatternRotation:  rng.Float64() * 6.28318,
		BreatheIntensity: 0.15 + abnormality*0.5,
		RippleFrequency:  2 + rng.Float64()*3,
		RippleIntensity:  0.2 + abnormality*0.6,
		Abnormality:      abnormality,
	}

	// Floor and ceiling span the whole polygon.
	inst.addGeometry("floor", "floor", len(tpl.FloorVertices))
	floorCfg := baseCfg
	floorCfg.PatternScale = scaleFor(tpl.Floor, baseCfg.PatternScale)
	inst.addMaterial(f.Create(floorCfg))

	inst.addGeometry("ceiling", "ceiling", len(tpl.FloorVertices))
	inst.addMaterial(f.CreateStatic(baseCfg))

	// One wall per polygon edge, sharing a single wall material. The
	// wall surface is where breathing and rippling read strongest, so it
	// gets the full procedural config.
	for w := range tpl.WallSegments {
		inst.addGeometry(fmt.Sprintf("wall_%d", w), "wall", 4)
	}
	wallCfg := baseCfg
	wallCfg.RoomIndex = roomIndex + 1 // distinct surface stream from the floor
	inst.addMaterial(f.Create(wallCfg))

	// Furniture props get flat basic materials; their motion, if any, is
	// decorative animation on the host side.
	for n, fur := range tpl.Furniture {
		inst.addGeometry(fmt.Sprintf("furniture_%d_%s", n, fur.Kind), "furniture", 8)
		furCfg := baseCfg
		furCfg.RoomIndex = roomIndex + 2 + n
		inst.addMaterial(f.CreateBasic(furCfg))
	}

	// Doorway frames carry a procedural glow material so exits pulse
	// with the mix.
	for n := range tpl.Doorways {
		inst.addGeometry(fmt.Sprintf("doorway_%d", n), "doorway", 4)
		glowCfg := baseCfg
		glowCfg.RoomIndex = roomIndex + 100 + n
		glowCfg.BreatheIntensity = 0.4 + abnormality*0.6
		inst.addMaterial(f.Create(glowCfg))
	}

	// Decorative stains scattered across the floor. Positions come from
	// the seeded generator so a rebuilt room carries identical wear.
	stains := 2 + rng.Intn(4) + int(abnormality*6)
	for n := 0; n < stains; n++ {
		pos := scatterPoint(rng, tpl)
		inst.addGeometry(fmt.Sprintf("stain_%d_%.1f_%.1f", n, pos.X, pos.Y), "stain", 4)
	}
	stainCfg := baseCfg
	stainCfg.RoomIndex = roomIndex + 500
	inst.addMaterial(f.CreateStatic(stainCfg))

	// Flicker phases bake here, not at first update, so two builds from
	// one seed flicker identically.
	inst.lights = make([]lightState, len(tpl.Lights))
	for n, l := range tpl.Lights {
		inst.lights[n] = lightState{
			flicker:     l.Flicker,
			phase:       rng.Float64() * 100,
			base:        l.Intensity,
			Intensity:   l.Intensity,
			flickerSeed: material.DeriveSeed(seed, int64(roomIndex*64+n)),
		}
	}

	inst.state = StateBuilt
	return inst, nil
}

func (i *Instance) addGeometry(id, kind string, vertices int) {
	i.geometries = append(i.geometries, &Geometry{
		ID:          i.template.ID + "_" + id,
		Kind:        kind,
		VertexCount: vertices,
	})
}

func (i *Instance) addMaterial(m *material.Material) {
	i.materials = append(i.materials, m)
}

// scatterPoint picks a point inside the template's bounding box, pulled
// toward the centroid so stains land on the floor even in L-shaped
// rooms.
func scatterPoint(rng *rand.Rand, tpl *Template) geom.Vec2 {
	c := geom.Centroid(tpl.FloorVertices)
	p := geom.Vec2{
		X: (rng.Float64() - 0.5) * tpl.Width,
		Y: (rng.Float64() - 0.5) * tpl.Depth,
	}
	return c.Add(p.Sub(c).Scale(0.7))
}

// scaleFor nudges the pattern scale by surface tile size so small tiles
// read as small tiles.
func scaleFor(s SurfaceSpec, base float64) float64 {
	if s.TileSize <= 0 {
		return base
	}
	return base * s.TileSize
}
