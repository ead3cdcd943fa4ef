package room

import (
	"testing"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/audio"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/config"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/material"
)

func buildTestRoom(t *testing.T, seed int64) *Instance {
	t.Helper()
	f := material.NewFactory(config.DefaultConfig().Material)
	tpl := TemplateByID("waiting_room")
	inst, err := Build(tpl, 2, seed, 0, f)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return inst
}

func TestBuildDeterministic(t *testing.T) {
	a := buildTestRoom(t, 777)
	b := buildTestRoom(t, 777)

	if len(a.Materials()) != len(b.Materials()) {
		t.Fatalf("material counts differ: %d vs %d", len(a.Materials()), len(b.Materials()))
	}
	for i := range a.Materials() {
		ma, mb := a.Materials()[i], b.Materials()[i]
		if ma.Config() != mb.Config() {
			t.Errorf("material %d configs differ:\n%+v\n%+v", i, ma.Config(), mb.Config())
		}
		if ma.Pattern != mb.Pattern {
			t.Errorf("material %d patterns differ:\n%+v\n%+v", i, ma.Pattern, mb.Pattern)
		}
	}

	if len(a.Geometries()) != len(b.Geometries()) {
		t.Fatalf("geometry counts differ: %d vs %d", len(a.Geometries()), len(b.Geometries()))
	}
	for i := range a.Geometries() {
		if a.Geometries()[i].ID != b.Geometries()[i].ID {
			t.Errorf("geometry %d IDs differ: %s vs %s", i, a.Geometries()[i].ID, b.Geometries()[i].ID)
		}
	}
}

func TestBuildSeedSensitive(t *testing.T) {
	a := buildTestRoom(t, 1)
	b := buildTestRoom(t, 2)

	same := true
	for i := range a.Materials() {
		if i < len(b.Materials()) && a.Materials()[i].Pattern != b.Materials()[i].Pattern {
			same = false
			break
		}
	}
	if same && len(a.Materials()) == len(b.Materials()) {
		t.Error("different seeds produced identical rooms")
	}
}

func TestBuildRejectsDefects(t *testing.T) {
	f := material.NewFactory(config.DefaultConfig().Material)

	if _, err := Build(nil, 1, 1, 0, f); err == nil {
		t.Error("Build(nil template) should fail")
	}

	bad := validTestTemplate()
	bad.Doorways[0].WallSegmentIndex = 99
	if _, err := Build(bad, 1, 1, 0, f); err == nil {
		t.Error("Build with defective template should fail")
	}

	if _, err := Build(validTestTemplate(), 1, 1, 0, nil); err == nil {
		t.Error("Build without factory should fail")
	}
}

func TestInstanceUpdateDrivesMaterials(t *testing.T) {
	inst := buildTestRoom(t, 99)
	d := audio.Data{Bass: 0.8, Mid: 0.5, High: 0.6, Transient: 0.9}

	inst.Update(d, 1.0/60)

	for i, m := range inst.Materials() {
		if m.Kind() != material.KindProcedural {
			continue
		}
		if m.Uniforms.Time == 0 {
			t.Errorf("procedural material %d not updated", i)
		}
		if m.Uniforms.PulseFlash == 0 {
			t.Errorf("procedural material %d missed the transient", i)
		}
	}
}

func TestInstanceUpdateSilenceStability(t *testing.T) {
	inst := buildTestRoom(t, 5)
	for i := 0; i < 600; i++ {
		inst.Update(audio.Silence, 1.0/60)
	}
	for _, m := range inst.Materials() {
		if m.Kind() != material.KindProcedural {
			continue
		}
		if m.Uniforms.EmissiveIntensity < 0 || m.Uniforms.RippleAmplitude < 0 {
			t.Fatalf("silence drove a uniform negative: %+v", m.Uniforms)
		}
	}
}

func TestDisposeIdempotent(t *testing.T) {
	inst := buildTestRoom(t, 3)

	inst.Dispose()
	if inst.State() != StateDisposed {
		t.Fatalf("state after dispose = %v, want disposed", inst.State())
	}
	for _, g := range inst.Geometries() {
		if !g.Released() {
			t.Errorf("geometry %s not released", g.ID)
		}
	}
	for _, m := range inst.Materials() {
		if !m.Released() {
			t.Error("material not released")
		}
	}

	// Second dispose must be a no-op, not a panic
	inst.Dispose()
	if inst.State() != StateDisposed {
		t.Errorf("state after double dispose = %v", inst.State())
	}
}

func TestUpdateAfterDisposeNoop(t *testing.T) {
	inst := buildTestRoom(t, 8)
	inst.Update(audio.Silence, 1.0/60)
	inst.Dispose()

	// Stale references must never crash the render loop
	inst.Update(audio.Data{Bass: 1}, 1.0/60)
	inst.Update(audio.Silence, 1.0/60)
}

func TestInstanceFlicker(t *testing.T) {
	inst := buildTestRoom(t, 21)
	tpl := inst.Template()

	flickers := false
	for n, l := range tpl.Lights {
		if !l.Flicker {
			continue
		}
		base := l.Intensity
		for i := 0; i < 600; i++ {
			inst.Update(audio.Data{High: 0.9}, 1.0/60)
			if inst.LightIntensity(n) < base {
				flickers = true
			}
		}
	}
	if !flickers {
		t.Error("flicker lights never dimmed over 10 simulated seconds")
	}
}

func TestInstanceUpdateBadDelta(t *testing.T) {
	inst := buildTestRoom(t, 4)
	inst.Update(audio.Silence, -1)
	inst.Update(audio.Silence, 1.0/60)

	for _, m := range inst.Materials() {
		if m.Kind() == material.KindProcedural && m.Uniforms.Time < 0 {
			t.Error("negative delta drove time backward")
		}
	}
}

func TestCustomBuilderTakesPrecedence(t *testing.T) {
	f := material.NewFactory(config.DefaultConfig().Material)
	tpl := validTestTemplate()

	called := false
	RegisterBuilder(tpl.ID, func(seed int64) (*Instance, error) {
		called = true
		return &Instance{template: tpl, seed: seed, factory: f, state: StateBuilt}, nil
	})
	defer RegisterBuilder(tpl.ID, nil)

	inst, err := Build(tpl, 1, 11, 0, f)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !called {
		t.Error("registered builder was not used")
	}
	if inst.Seed() != 11 {
		t.Errorf("seed = %d, want 11", inst.Seed())
	}
}
