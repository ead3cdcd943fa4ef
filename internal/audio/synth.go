package audio

import "math"

// SynthSource generates a deterministic band pattern from elapsed time.
// It stands in for a real analyzer in the headless host and in tests:
// the same elapsed time always yields the same snapshot, so walkthroughs
// are reproducible frame for frame.
type SynthSource struct {
	// BPM controls the simulated beat rate driving the transient band.
	BPM float64
}

// NewSynthSource returns a synth source at the given tempo. A tempo of 0
// defaults to 120 BPM.
func NewSynthSource(bpm float64) *SynthSource {
	if bpm <= 0 {
		bpm = 120
	}
	return &SynthSource{BPM: bpm}
}

// Sample implements Source. Bass follows the beat envelope, mid and high
// drift on slow sine waves, and transient fires a short spike at the top
// of every beat.
func (s *SynthSource) Sample(elapsed float64) (Data, bool) {
	beatLen := 60 / s.BPM
	beatPhase := math.Mod(elapsed, beatLen) / beatLen

	// Sharp attack, exponential decay over the beat.
	bass := math.Exp(-4 * beatPhase)

	mid := 0.35 + 0.25*math.Sin(elapsed*1.3)
	high := 0.25 + 0.2*math.Sin(elapsed*3.7+1.1)

	transient := 0.0
	if beatPhase < 0.08 {
		transient = 0.9
	}

	return Data{Bass: bass, Mid: mid, High: high, Transient: transient}, true
}
