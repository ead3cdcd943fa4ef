package progression

import (
	"fmt"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/audio"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/logger"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/material"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/room"
)

// TransitionRecorder receives room transitions as they happen. The
// session trace store implements this; a nil recorder disables tracing.
type TransitionRecorder interface {
	RecordTransition(roomIndex int, templateID string, abnormality float64, seed int64) error
}

// Manager owns exactly one active room instance at a time. On every
// transition it disposes the previous instance before building the next,
// so no two instances are ever live together and no resource outlives
// its room. The host drives Update once per frame between transitions.
type Manager struct {
	selector *Selector
	factory  *material.Factory
	baseSeed int64

	current   *room.Instance
	roomIndex int

	recorder TransitionRecorder
}

// NewManager creates a lifecycle manager walking the given selector's
// rooms, building all instances from baseSeed.
func NewManager(selector *Selector, factory *material.Factory, baseSeed int64) *Manager {
	return &Manager{
		selector: selector,
		factory:  factory,
		baseSeed: baseSeed,
	}
}

// SetRecorder attaches a transition recorder. Pass nil to detach.
func (m *Manager) SetRecorder(r TransitionRecorder) {
	m.recorder = r
}

// Current returns the active instance, or nil before the first room.
func (m *Manager) Current() *room.Instance {
	return m.current
}

// CurrentIndex returns the active room index, or 0 before the first
// room.
func (m *Manager) CurrentIndex() int {
	return m.roomIndex
}

// EnterRoom transitions to the room at the given index: the previous
// instance is disposed exactly once, then the new one is built from the
// selected template. Dispose-before-build keeps peak resource ownership
// at one room.
func (m *Manager) EnterRoom(roomIndex int) (*room.Instance, error) {
	tpl, abnormality := m.selector.SelectTemplate(roomIndex)
	if tpl == nil {
		return nil, fmt.Errorf("no template for room index %d", roomIndex)
	}

	if m.current != nil {
		m.current.Dispose()
		m.current = nil
	}

	inst, err := room.Build(tpl, roomIndex, m.baseSeed, abnormality, m.factory)
	if err != nil {
		return nil, fmt.Errorf("failed to build room %d (%s): %w", roomIndex, tpl.ID, err)
	}

	m.current = inst
	m.roomIndex = roomIndex

	logger.Info("Entered room",
		"index", roomIndex,
		"template", tpl.ID,
		"abnormality", abnormality)

	if m.recorder != nil {
		if err := m.recorder.RecordTransition(roomIndex, tpl.ID, abnormality, m.baseSeed); err != nil {
			// Tracing is best-effort; a full disk must not stop the walk.
			logger.Warning("Failed to record room transition", "error", err)
		}
	}

	return inst, nil
}

// Advance transitions to the next room in the progression.
func (m *Manager) Advance() (*room.Instance, error) {
	return m.EnterRoom(m.roomIndex + 1)
}

// Update forwards the frame to the active instance. Safe to call with
// no active room.
func (m *Manager) Update(d audio.Data, delta float64) {
	if m.current == nil {
		return
	}
	m.current.Update(d, delta)
}

// Close disposes the active instance, if any.
func (m *Manager) Close() {
	if m.current != nil {
		m.current.Dispose()
		m.current = nil
	}
}
