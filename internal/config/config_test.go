package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Progression.AbnormalityStep != DefaultConfig().Progression.AbnormalityStep {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if cfg.Host.FPS != 60 {
		t.Errorf("default fps = %d, want 60", cfg.Host.FPS)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	content := `
progression:
  abnormality_step: 0.25
audio:
  smoothing: 0.5
  transient_threshold: 0.3
material:
  emissive_base: 0.1
  emissive_weight: 1.0
  breathe_weight: 0.5
  ripple_weight: 0.5
  warp_weight: 0.5
  color_shift_weight: 0.5
host:
  fps: 30
  room_dwell_seconds: 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Progression.AbnormalityStep != 0.25 {
		t.Errorf("abnormality_step = %v, want 0.25", cfg.Progression.AbnormalityStep)
	}
	if cfg.Host.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Host.FPS)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative step", "progression:\n  abnormality_step: -1\n"},
		{"zero smoothing", "audio:\n  smoothing: 0\n"},
		{"smoothing above one", "audio:\n  smoothing: 1.5\n"},
		{"bad threshold", "audio:\n  transient_threshold: 2\n"},
		{"zero fps", "host:\n  fps: 0\n"},
		{"malformed yaml", "host: [\n"},
	}
	for _, tc := range tests {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: LoadConfig passed, want error", tc.name)
		}
	}
}
