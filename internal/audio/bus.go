package audio

import "math"

// Source produces one band snapshot per frame. Implementations must be
// cheap: Sample is called once per rendered frame on the frame thread.
type Source interface {
	// Sample returns the band intensities for the frame at the given
	// absolute elapsed time in seconds. Implementations that track an
	// external feed may ignore elapsed and return their latest frame.
	Sample(elapsed float64) (Data, bool)
}

// Bus fans the current frame's snapshot out to every consumer. The host
// calls Advance exactly once per frame before any room update; consumers
// read the same immutable snapshot for the rest of that frame. If the
// attached source has nothing to report the bus degrades to silence.
type Bus struct {
	source    Source
	smoothing float64
	current   Data
	primed    bool
}

// NewBus creates a bus reading from source. A nil source yields silence.
// smoothing in (0,1] is the exponential blend factor applied per frame;
// 1 disables smoothing entirely.
func NewBus(source Source, smoothing float64) *Bus {
	if smoothing <= 0 || smoothing > 1 || math.IsNaN(smoothing) {
		smoothing = 1
	}
	return &Bus{source: source, smoothing: smoothing}
}

// Advance pulls a fresh snapshot from the source for the frame at the
// given elapsed time. Call once per frame, before room updates.
func (b *Bus) Advance(elapsed float64) {
	raw := Silence
	if b.source != nil {
		if d, ok := b.source.Sample(elapsed); ok {
			raw = d.Sanitize()
		}
	}
	if !b.primed || b.smoothing >= 1 {
		b.current = raw
		b.primed = true
		return
	}
	a := b.smoothing
	b.current = Data{
		Bass:      lerp(b.current.Bass, raw.Bass, a),
		Mid:       lerp(b.current.Mid, raw.Mid, a),
		High:      lerp(b.current.High, raw.High, a),
		Transient: raw.Transient, // transients are spikes, never smoothed
	}
}

// Current returns the snapshot for the frame most recently advanced to.
// Before the first Advance it returns silence.
func (b *Bus) Current() Data {
	return b.current
}

func lerp(from, to, a float64) float64 {
	return from + (to-from)*a
}

// SilenceSource is a Source that always reports silence. Used when the
// host runs without any analyzer attached.
type SilenceSource struct{}

// Sample implements Source.
func (SilenceSource) Sample(elapsed float64) (Data, bool) {
	return Silence, true
}
