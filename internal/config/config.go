// Package config holds the engine's runtime tunables: the abnormality
// escalation curve, audio smoothing, material curve weights, and the
// headless host's frame timing. Everything here is data a designer may
// want to adjust without touching code.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig holds engine-wide configuration settings.
type EngineConfig struct {
	Progression ProgressionConfig `yaml:"progression"`
	Audio       AudioConfig       `yaml:"audio"`
	Material    MaterialConfig    `yaml:"material"`
	Host        HostConfig        `yaml:"host"`
}

// ProgressionConfig tunes how rooms escalate past the authored set.
type ProgressionConfig struct {
	// AbnormalityStep is how much abnormality grows per completed cycle
	// through the registry. Clamped contribution never exceeds 1.0.
	AbnormalityStep float64 `yaml:"abnormality_step"`
}

// AudioConfig tunes the band feed adapter.
type AudioConfig struct {
	// Smoothing is the per-frame exponential blend factor in (0,1].
	// 1 disables smoothing.
	Smoothing float64 `yaml:"smoothing"`

	// TransientThreshold is the level above which the transient band
	// counts as a beat for decorative effects.
	TransientThreshold float64 `yaml:"transient_threshold"`
}

// MaterialConfig tunes the audio-to-visual response curves. Each weight
// scales how strongly a band drives its effect; the base is the silent
// floor for that effect.
type MaterialConfig struct {
	EmissiveBase     float64 `yaml:"emissive_base"`
	EmissiveWeight   float64 `yaml:"emissive_weight"`
	BreatheWeight    float64 `yaml:"breathe_weight"`
	RippleWeight     float64 `yaml:"ripple_weight"`
	WarpWeight       float64 `yaml:"warp_weight"`
	ColorShiftWeight float64 `yaml:"color_shift_weight"`
}

// HostConfig tunes the headless walkthrough host.
type HostConfig struct {
	// FPS is the fixed simulation frame rate.
	FPS int `yaml:"fps"`

	// RoomDwellSeconds is how long the simulated player lingers in each
	// room before walking through the next doorway.
	RoomDwellSeconds float64 `yaml:"room_dwell_seconds"`
}

// DefaultConfig returns an EngineConfig with the shipped defaults.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		Progression: ProgressionConfig{
			AbnormalityStep: 0.15,
		},
		Audio: AudioConfig{
			Smoothing:          0.35,
			TransientThreshold: 0.4,
		},
		Material: MaterialConfig{
			EmissiveBase:     0.2,
			EmissiveWeight:   0.8,
			BreatheWeight:    0.6,
			RippleWeight:     0.7,
			WarpWeight:       0.5,
			ColorShiftWeight: 0.4,
		},
		Host: HostConfig{
			FPS:              60,
			RoomDwellSeconds: 8,
		},
	}
}

// LoadConfig loads configuration from a YAML file, merged over defaults.
// A missing file returns the defaults without error; a malformed file is
// an error.
func LoadConfig(path string) (*EngineConfig, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *EngineConfig) Validate() error {
	if c.Progression.AbnormalityStep < 0 {
		return fmt.Errorf("progression.abnormality_step must be >= 0, got %v", c.Progression.AbnormalityStep)
	}
	if c.Audio.Smoothing <= 0 || c.Audio.Smoothing > 1 {
		return fmt.Errorf("audio.smoothing must be in (0,1], got %v", c.Audio.Smoothing)
	}
	if c.Audio.TransientThreshold < 0 || c.Audio.TransientThreshold > 1 {
		return fmt.Errorf("audio.transient_threshold must be in [0,1], got %v", c.Audio.TransientThreshold)
	}
	if c.Host.FPS <= 0 {
		return fmt.Errorf("host.fps must be > 0, got %d", c.Host.FPS)
	}
	if c.Host.RoomDwellSeconds <= 0 {
		return fmt.Errorf("host.room_dwell_seconds must be > 0, got %v", c.Host.RoomDwellSeconds)
	}
	return nil
}
