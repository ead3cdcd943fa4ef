// Package progression maps a room index to an authored template and an
// escalating abnormality factor, and owns the one-active-room lifecycle
// around it. The selector is the single source of truth for room content
// selection; nothing else in the engine is allowed to compute it.
package progression

import (
	"fmt"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/room"
)

// DefaultAbnormalityStep is how much abnormality grows per completed
// cycle through the authored registry. A designer tunable, not a
// structural constant: override it through engine config.
const DefaultAbnormalityStep = 0.15

// Selector resolves room indices against a fixed template table. It is
// pure: selection has no side effects and no hidden state, so any index
// can be resolved at any time, in any order, repeatedly.
type Selector struct {
	templates []*room.Template
	step      float64
}

// NewSelector creates a selector over a validated template table. The
// table is validated here because a defective template is a content
// defect that must fail at load, not during play.
func NewSelector(templates []*room.Template, abnormalityStep float64) (*Selector, error) {
	if err := room.ValidateTemplates(templates); err != nil {
		return nil, fmt.Errorf("selector rejects template table: %w", err)
	}
	if abnormalityStep < 0 {
		return nil, fmt.Errorf("abnormality step must be >= 0, got %v", abnormalityStep)
	}
	return &Selector{templates: templates, step: abnormalityStep}, nil
}

// defaultSelector serves the package-level helpers over the compiled-in
// registry. The registry is asserted valid by tests and by every cmd at
// startup, so construction here cannot fail in a shipped build.
var defaultSelector = &Selector{templates: room.Registry(), step: DefaultAbnormalityStep}

// SelectTemplate resolves roomIndex against the selector's table.
//
// Index <= 0 returns (nil, 0): the entry space is owned by an external
// collaborator, not this engine. Indices 1..N return the authored
// template with abnormality 0. Past N the table cycles, and abnormality
// climbs with each completed cycle, clamped to 1.
func (s *Selector) SelectTemplate(roomIndex int) (*room.Template, float64) {
	if roomIndex <= 0 {
		return nil, 0
	}
	n := len(s.templates)
	tpl := s.templates[(roomIndex-1)%n]
	return tpl, s.abnormality(roomIndex)
}

// HasTemplate reports whether the selector can resolve roomIndex.
func (s *Selector) HasTemplate(roomIndex int) bool {
	return roomIndex >= 1
}

// abnormality computes the escalation factor for an index. Monotonic
// non-decreasing in the cycle count and 0 for the first pass.
func (s *Selector) abnormality(roomIndex int) float64 {
	cycle := (roomIndex - 1) / len(s.templates)
	a := float64(cycle) * s.step
	if a > 1 {
		a = 1
	}
	return a
}

// Count returns the size of the selector's template table.
func (s *Selector) Count() int {
	return len(s.templates)
}

// SelectTemplate resolves roomIndex against the compiled-in registry
// with the default abnormality step.
func SelectTemplate(roomIndex int) (*room.Template, float64) {
	return defaultSelector.SelectTemplate(roomIndex)
}

// HasTemplate reports whether the compiled-in registry can resolve
// roomIndex.
func HasTemplate(roomIndex int) bool {
	return defaultSelector.HasTemplate(roomIndex)
}
