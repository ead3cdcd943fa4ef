package material

import (
	"math"
	"math/rand"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/audio"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/config"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/logger"
)

// Upper bounds for dynamic uniforms. Values are clamped here so no band
// combination can push a parameter outside what the shaders accept.
const (
	maxEmissive   = 4.0
	maxBreathe    = 1.0
	maxRipple     = 2.0
	maxWarp       = 1.0
	maxColorShift = 1.0
	maxFlash      = 1.0
)

// spinRate is the base pattern spin in radians per second at zero
// abnormality. Spin is computed from absolute elapsed time, never by
// integrating deltas, so update frequency cannot drift it.
const spinRate = 0.05

// Factory builds and updates procedural materials. The tuning weights
// come from engine config; the factory itself is stateless beyond them,
// so one factory serves every room in the session.
type Factory struct {
	tuning config.MaterialConfig
}

// NewFactory creates a factory with the given response-curve tuning.
func NewFactory(tuning config.MaterialConfig) *Factory {
	return &Factory{tuning: tuning}
}

// Create builds a procedural material from cfg. Construction is
// deterministic: the config's seed (salted by room index) drives every
// pseudo-random choice, so equal configs produce bit-identical materials.
func (f *Factory) Create(cfg Config) *Material {
	cfg = cfg.normalized()
	rng := rand.New(rand.NewSource(DeriveSeed(cfg.Seed, int64(cfg.RoomIndex))))

	m := &Material{
		kind: KindProcedural,
		cfg:  cfg,
		Pattern: PatternParams{
			Scale:        cfg.PatternScale,
			Rotation:     cfg.PatternRotation,
			NoiseOffsetX: rng.Float64() * 256,
			NoiseOffsetY: rng.Float64() * 256,
			GrainDensity: 0.2 + rng.Float64()*0.3,
			Skew:         cfg.Abnormality * (0.1 + rng.Float64()*0.2),
			HueDrift:     (rng.Float64() - 0.5) * 0.08,
		},
	}

	// Initial uniforms are the silent frame at t=0.
	f.apply(m, 0, audio.Silence, cfg.Abnormality)
	return m
}

// CreateStatic builds a material with a baked seeded pattern and no
// per-frame behavior.
func (f *Factory) CreateStatic(cfg Config) *Material {
	m := f.Create(cfg)
	m.kind = KindStatic
	return m
}

// CreateBasic builds a flat material carrying only its config. Basic
// materials never enter the update pass.
func (f *Factory) CreateBasic(cfg Config) *Material {
	return &Material{kind: KindBasic, cfg: cfg.normalized()}
}

// Update recomputes m's dynamic uniforms for the frame at elapsed
// seconds. Call at most once per rendered frame per material. The
// update is a pure function of (prior static state, elapsed, audio,
// abnormality): calling it twice with the same arguments leaves the same
// state, and skipping frames cannot cause drift because nothing here
// integrates delta. delta is accepted for contract symmetry with room
// updates and for hosts that want to log abnormal frame times.
func (f *Factory) Update(m *Material, elapsed, delta float64, d audio.Data) {
	if m == nil || m.released {
		return
	}
	if m.kind != KindProcedural {
		logger.Debug("Skipping update for non-procedural material", "kind", m.kind.String())
		return
	}
	f.apply(m, elapsed, d, m.cfg.Abnormality)
}

// UpdateWithAbnormality is Update with the config's abnormality replaced
// for this frame. Room transitions use it to fade distortion in while
// the player crosses a doorway.
func (f *Factory) UpdateWithAbnormality(m *Material, elapsed, delta float64, d audio.Data, abnormality float64) {
	if m == nil || m.released || m.kind != KindProcedural {
		return
	}
	f.apply(m, elapsed, d, clamp(abnormality, 0, 1))
}

// apply writes the frame's uniforms in place. No allocation happens on
// this path.
func (f *Factory) apply(m *Material, elapsed float64, d audio.Data, abnormality float64) {
	d = d.Sanitize()
	if math.IsNaN(elapsed) || elapsed < 0 {
		elapsed = 0
	}
	t := &f.tuning
	u := &m.Uniforms

	u.Time = elapsed
	u.Abnormality = abnormality

	// Each band maps through a linear base + band*weight curve, clamped
	// to that parameter's valid range.
	u.EmissiveIntensity = clamp(t.EmissiveBase+d.Bass*t.EmissiveWeight*(1+abnormality), 0, maxEmissive)

	breathe := math.Sin(elapsed*0.8) * m.cfg.BreatheIntensity * (0.3 + d.Bass*t.BreatheWeight)
	u.BreatheAmount = clamp(breathe*(1+abnormality*2), -maxBreathe, maxBreathe)

	u.RippleFrequency = m.cfg.RippleFrequency * (1 + abnormality*0.5)
	u.RippleAmplitude = clamp(m.cfg.RippleIntensity*(0.2+d.Mid*t.RippleWeight), 0, maxRipple)

	u.PatternWarp = clamp(d.Mid*t.WarpWeight*abnormality, 0, maxWarp)
	u.ColorShift = clamp(d.High*t.ColorShiftWeight*(0.5+abnormality), 0, maxColorShift)

	// Spin accelerates with abnormality but is always a function of
	// absolute time.
	u.SpinAngle = math.Mod(elapsed*spinRate*(1+abnormality*4), 2*math.Pi)

	u.PulseFlash = clamp(d.Transient, 0, maxFlash)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
