package progression

import (
	"testing"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/room"
)

func TestSelectTemplateAuthoredRange(t *testing.T) {
	reg := room.Registry()
	for i := 1; i <= len(reg); i++ {
		tpl, abnormality := SelectTemplate(i)
		if tpl == nil {
			t.Fatalf("SelectTemplate(%d) returned nil template", i)
		}
		if tpl.ID != reg[i-1].ID {
			t.Errorf("SelectTemplate(%d) = %q, want %q", i, tpl.ID, reg[i-1].ID)
		}
		if abnormality != 0 {
			t.Errorf("SelectTemplate(%d) abnormality = %v, want 0 on first pass", i, abnormality)
		}
	}
}

func TestSelectTemplateEntryPoint(t *testing.T) {
	tests := []int{0, -1, -3}
	for _, i := range tests {
		tpl, abnormality := SelectTemplate(i)
		if tpl != nil {
			t.Errorf("SelectTemplate(%d) = %q, want nil", i, tpl.ID)
		}
		if abnormality != 0 {
			t.Errorf("SelectTemplate(%d) abnormality = %v, want 0", i, abnormality)
		}
	}
}

func TestSelectTemplateFirstRoom(t *testing.T) {
	tpl, _ := SelectTemplate(1)
	if tpl == nil || tpl.ID != "infinite_hallway" {
		t.Fatalf("SelectTemplate(1) = %v, want infinite_hallway", tpl)
	}
}

func TestSelectTemplateCycles(t *testing.T) {
	n := room.Count()

	// Room 16 wraps back to the first template but is no longer normal
	wrapped, abnormality := SelectTemplate(n + 1)
	first, _ := SelectTemplate(1)
	if wrapped.ID != first.ID {
		t.Errorf("SelectTemplate(%d) = %q, want %q", n+1, wrapped.ID, first.ID)
	}
	if abnormality <= 0 {
		t.Errorf("SelectTemplate(%d) abnormality = %v, want > 0", n+1, abnormality)
	}

	// Every deep index resolves to the same template as its first-cycle
	// equivalent
	for i := n + 1; i <= n*4; i++ {
		deep, _ := SelectTemplate(i)
		base, _ := SelectTemplate(((i - 1) % n) + 1)
		if deep.ID != base.ID {
			t.Errorf("SelectTemplate(%d) = %q, want %q", i, deep.ID, base.ID)
		}
	}
}

func TestAbnormalityMonotonic(t *testing.T) {
	n := room.Count()
	prev := -1.0
	for cycle := 0; cycle < 12; cycle++ {
		_, a := SelectTemplate(1 + cycle*n)
		if a < prev {
			t.Errorf("abnormality decreased at cycle %d: %v < %v", cycle, a, prev)
		}
		if a < 0 || a > 1 {
			t.Errorf("abnormality out of range at cycle %d: %v", cycle, a)
		}
		prev = a
	}
}

func TestHasTemplate(t *testing.T) {
	tests := []struct {
		index int
		want  bool
	}{
		{-3, false},
		{0, false},
		{1, true},
		{15, true},
		{16, true},
		{1000, true},
	}
	for _, tc := range tests {
		if got := HasTemplate(tc.index); got != tc.want {
			t.Errorf("HasTemplate(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestSelectTemplateIsPure(t *testing.T) {
	// Repeated calls in any order must agree
	first, a1 := SelectTemplate(47)
	_, _ = SelectTemplate(1)
	_, _ = SelectTemplate(-5)
	second, a2 := SelectTemplate(47)
	if first.ID != second.ID || a1 != a2 {
		t.Errorf("SelectTemplate(47) not stable: (%q,%v) vs (%q,%v)", first.ID, a1, second.ID, a2)
	}
}

func TestNewSelectorRejectsBadInput(t *testing.T) {
	if _, err := NewSelector(nil, 0.1); err == nil {
		t.Error("NewSelector with empty table should fail")
	}
	if _, err := NewSelector(room.Registry(), -0.5); err == nil {
		t.Error("NewSelector with negative step should fail")
	}
}

func TestSelectorCustomStep(t *testing.T) {
	sel, err := NewSelector(room.Registry(), 0.5)
	if err != nil {
		t.Fatalf("NewSelector failed: %v", err)
	}
	n := sel.Count()

	_, a1 := sel.SelectTemplate(n + 1) // cycle 1
	if a1 != 0.5 {
		t.Errorf("cycle 1 abnormality = %v, want 0.5", a1)
	}
	_, a3 := sel.SelectTemplate(3*n + 1) // cycle 3, clamped
	if a3 != 1 {
		t.Errorf("cycle 3 abnormality = %v, want clamp at 1", a3)
	}
}
