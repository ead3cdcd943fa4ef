package material

// PatternParams is the static half of a material's appearance, baked from
// the config's seed at construction time and immutable afterward.
type PatternParams struct {
	Scale        float64 // World units per pattern tile
	Rotation     float64 // Baked pattern rotation in radians
	NoiseOffsetX float64 // Offset into the seeded noise field
	NoiseOffsetY float64
	GrainDensity float64 // Fine surface grain amount
	Skew         float64 // Pattern shear, grows with abnormality
	HueDrift     float64 // Per-material hue nudge off the palette color
}

// Uniforms is the dynamic half, recomputed in place every frame. The host
// renderer reads these as shader uniforms; none of them allocate and none
// of them accumulate across frames.
type Uniforms struct {
	Time              float64 // Absolute elapsed seconds at last update
	EmissiveIntensity float64
	BreatheAmount     float64 // Vertex displacement amplitude
	RippleAmplitude   float64
	RippleFrequency   float64
	PatternWarp       float64 // UV distortion driven by mid band
	ColorShift        float64 // Hue rotation driven by high band
	SpinAngle         float64 // Slow pattern spin, from absolute time
	PulseFlash        float64 // Short flash on transient spikes
	Abnormality       float64
}

// Material is one renderable surface parameterization. Procedural
// materials are fed through Factory.Update every frame; static and basic
// kinds are baked once.
type Material struct {
	kind     Kind
	cfg      Config
	released bool

	Pattern  PatternParams
	Uniforms Uniforms
}

// Kind returns the material's kind tag.
func (m *Material) Kind() Kind {
	return m.kind
}

// Config returns the config the material was built from.
func (m *Material) Config() Config {
	return m.cfg
}

// Released reports whether the material's GPU-adjacent resources have
// been released.
func (m *Material) Released() bool {
	return m.released
}

// Release frees the material. Safe to call more than once; only the
// first call does anything.
func (m *Material) Release() {
	m.released = true
}
