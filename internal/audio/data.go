// Package audio adapts the external audio-analysis feed into the per-frame
// band snapshot the visual layer consumes. The engine never captures or
// analyzes audio itself; it only receives four normalized band intensities
// per frame and guarantees the rest of the pipeline sees sane values.
package audio

import "math"

// Data is one frame's worth of band intensities. All four values are
// normalized to [0,1]. Transient spikes above its threshold to signal a
// beat-like event. Data is ephemeral read-only input: consumers must never
// retain or mutate a snapshot across frames.
type Data struct {
	Bass      float64
	Mid       float64
	High      float64
	Transient float64
}

// Silence is the snapshot the engine falls back to when no analysis feed
// is available. Missing input degrades to silence, never to an error.
var Silence = Data{}

// Sanitize returns a copy of d with every band forced into [0,1]. NaN and
// Inf collapse to 0 so a misbehaving analyzer can never poison material
// uniforms downstream.
func (d Data) Sanitize() Data {
	return Data{
		Bass:      clampBand(d.Bass),
		Mid:       clampBand(d.Mid),
		High:      clampBand(d.High),
		Transient: clampBand(d.Transient),
	}
}

// IsBeat reports whether the transient band is spiking above the given
// threshold. Thresholds in the 0.3-0.5 range work well for kick detection.
func (d Data) IsBeat(threshold float64) bool {
	return d.Transient >= threshold
}

func clampBand(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
