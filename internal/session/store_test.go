package session

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestStartSession(t *testing.T) {
	s := setupTestStore(t)

	id, err := s.StartSession(42)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if id == "" {
		t.Error("session ID should not be empty")
	}
	if s.SessionID() != id {
		t.Errorf("SessionID() = %q, want %q", s.SessionID(), id)
	}
}

func TestRecordTransitionRequiresSession(t *testing.T) {
	s := setupTestStore(t)
	if err := s.RecordTransition(1, "infinite_hallway", 0, 42); err == nil {
		t.Error("recording without a session should fail")
	}
}

func TestRecordAndQueryTransitions(t *testing.T) {
	s := setupTestStore(t)
	id, err := s.StartSession(42)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	walks := []struct {
		index       int
		template    string
		abnormality float64
	}{
		{1, "infinite_hallway", 0},
		{2, "waiting_room", 0},
		{16, "infinite_hallway", 0.15},
	}
	for _, w := range walks {
		if err := s.RecordTransition(w.index, w.template, w.abnormality, 42); err != nil {
			t.Fatalf("RecordTransition(%d) failed: %v", w.index, err)
		}
	}

	got, err := s.Transitions(id)
	if err != nil {
		t.Fatalf("Transitions failed: %v", err)
	}
	if len(got) != len(walks) {
		t.Fatalf("got %d transitions, want %d", len(got), len(walks))
	}
	for i, w := range walks {
		if got[i].RoomIndex != w.index || got[i].TemplateID != w.template {
			t.Errorf("transition %d = (%d, %q), want (%d, %q)",
				i, got[i].RoomIndex, got[i].TemplateID, w.index, w.template)
		}
	}

	max, err := s.MaxAbnormality(id)
	if err != nil {
		t.Fatalf("MaxAbnormality failed: %v", err)
	}
	if max != 0.15 {
		t.Errorf("MaxAbnormality = %v, want 0.15", max)
	}
}

func TestSessionsIsolated(t *testing.T) {
	s := setupTestStore(t)

	first, _ := s.StartSession(1)
	s.RecordTransition(1, "infinite_hallway", 0, 1)

	second, _ := s.StartSession(2)
	s.RecordTransition(1, "infinite_hallway", 0, 2)
	s.RecordTransition(2, "waiting_room", 0, 2)

	got, err := s.Transitions(first)
	if err != nil {
		t.Fatalf("Transitions failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("first session has %d transitions, want 1", len(got))
	}

	got, err = s.Transitions(second)
	if err != nil {
		t.Fatalf("Transitions failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("second session has %d transitions, want 2", len(got))
	}
}
