// Package material implements the procedural material engine. A material's
// static pattern is baked once from its seed at construction; its dynamic
// appearance is recomputed every frame from absolute elapsed time and the
// current audio bands, scaled by the room's abnormality.
package material

// Kind tags what a material is so the per-frame update pass can dispatch
// without runtime type inspection. Only procedural materials react to
// audio; static and basic materials are constructed and left alone.
type Kind int

const (
	// KindProcedural materials carry audio-driven uniforms and must be
	// fed every frame.
	KindProcedural Kind = iota

	// KindStatic materials have a baked pattern but no frame update.
	KindStatic

	// KindBasic materials are flat-colored surfaces (trim, mattes).
	KindBasic
)

// String returns a human-readable kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindProcedural:
		return "procedural"
	case KindStatic:
		return "static"
	case KindBasic:
		return "basic"
	default:
		return "unknown"
	}
}
