package material

// Config is the data contract between a room builder and the factory.
// Two configs with identical field values must yield materials with
// identical initial state, so every field that influences appearance
// lives here and nothing is read from ambient state.
type Config struct {
	// Seed drives all pseudo-random pattern derivation.
	Seed int64

	// RoomIndex is the owning room's index in the progression. It salts
	// the seed so two rooms built from the same base seed still get
	// distinct surfaces.
	RoomIndex int

	// PatternScale and PatternRotation are baked at construction and
	// never change afterward.
	PatternScale    float64
	PatternRotation float64

	// BreatheIntensity scales the slow wall-breathing effect.
	BreatheIntensity float64

	// RippleFrequency and RippleIntensity shape the surface ripple.
	RippleFrequency float64
	RippleIntensity float64

	// Abnormality escalates visual distortion on cycled rooms, in [0,1].
	Abnormality float64
}

// DeriveSeed combines a base seed with a salt the way floor seeds are
// derived from a tower seed: additively, so nearby rooms get nearby but
// distinct streams.
func DeriveSeed(seed int64, salt int64) int64 {
	return seed + salt*1000
}

// normalized returns cfg with out-of-range fields pulled back to values
// the factory can bake. Zero scale would collapse the pattern entirely.
func (cfg Config) normalized() Config {
	if cfg.PatternScale <= 0 {
		cfg.PatternScale = 1
	}
	if cfg.RippleFrequency < 0 {
		cfg.RippleFrequency = 0
	}
	if cfg.RippleIntensity < 0 {
		cfg.RippleIntensity = 0
	}
	if cfg.BreatheIntensity < 0 {
		cfg.BreatheIntensity = 0
	}
	if cfg.Abnormality < 0 {
		cfg.Abnormality = 0
	}
	if cfg.Abnormality > 1 {
		cfg.Abnormality = 1
	}
	return cfg
}
