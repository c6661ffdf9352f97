package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dining-sim/dining-sim/table"
)

// Preset is one named scenario in presets.yaml. Duration fields use Go
// duration syntax ("5s", "150ms"); zero-valued fields leave the base config
// untouched.
type Preset struct {
	Seats           int    `yaml:"seats"`
	PickupTimeout   string `yaml:"pickup_timeout"`
	ThinkMin        string `yaml:"think_min"`
	ThinkMax        string `yaml:"think_max"`
	DineMin         string `yaml:"dine_min"`
	DineMax         string `yaml:"dine_max"`
	JournalCapacity int    `yaml:"journal_capacity"`
}

// PresetsFile represents the full presets.yaml structure.
type PresetsFile struct {
	Version string            `yaml:"version"`
	Presets map[string]Preset `yaml:"presets"`
}

// LoadPresets reads and parses the presets file with strict field checking,
// so a typo in a preset key is an error rather than a silently ignored knob.
func LoadPresets(path string) (*PresetsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var pf PresetsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&pf); err != nil {
		return nil, fmt.Errorf("parse presets file %s: %w", path, err)
	}
	return &pf, nil
}

// Apply overlays the named preset on base and returns the result.
func (pf *PresetsFile) Apply(name string, base table.Config) (table.Config, error) {
	p, ok := pf.Presets[name]
	if !ok {
		return base, fmt.Errorf("unknown preset %q", name)
	}

	cfg := base
	if p.Seats != 0 {
		cfg.Seats = p.Seats
	}
	if p.JournalCapacity != 0 {
		cfg.JournalCapacity = p.JournalCapacity
	}
	if err := overlayDuration(&cfg.PickupTimeout, p.PickupTimeout, "pickup_timeout"); err != nil {
		return base, err
	}
	if err := overlayDuration(&cfg.ThinkDelay.Min, p.ThinkMin, "think_min"); err != nil {
		return base, err
	}
	if err := overlayDuration(&cfg.ThinkDelay.Max, p.ThinkMax, "think_max"); err != nil {
		return base, err
	}
	if err := overlayDuration(&cfg.DineDelay.Min, p.DineMin, "dine_min"); err != nil {
		return base, err
	}
	if err := overlayDuration(&cfg.DineDelay.Max, p.DineMax, "dine_max"); err != nil {
		return base, err
	}
	return cfg, nil
}

func overlayDuration(dst *time.Duration, value, field string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	*dst = d
	return nil
}
