package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
gen_modifiers:
  multiplier: 10
  estates: [game/common/estates]
  factions: [game/common/factions]
  ignore_factions: [pirate_republic]
  government_mechanics: [game/common/government_mechanics]
  tech_types: [adm_tech, dip_tech, mil_tech]
  ignores:
    - picture
  alternatives:
    advisor_cost: 0.5
    merc_maintenance_modifier: "mult / 2"
multiply:
  targets: [game/common]
  destination: out/common
  ignore_static: [difficulty_easy_player]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GenModifiers.Multiplier != 10 {
		t.Errorf("multiplier = %v", cfg.GenModifiers.Multiplier)
	}
	if len(cfg.GenModifiers.TechTypes) != 3 {
		t.Errorf("tech_types = %v", cfg.GenModifiers.TechTypes)
	}
	if _, ok := cfg.GenModifiers.Alternatives["advisor_cost"]; !ok {
		t.Error("alternatives not decoded")
	}
	// omitted ignore lists fall back to the stock sets
	if !Set(cfg.Multiply.IgnoreBlocks)["trigger"] {
		t.Error("default ignore_blocks not applied")
	}
	if !Set(cfg.Multiply.IgnoreDirs)["countries"] {
		t.Error("default ignore_dirs not applied")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := sample + "  ignore_blocks: [trigger]\n  ignore_dirs: [prices]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Multiply.IgnoreBlocks) != 1 || len(cfg.Multiply.IgnoreDirs) != 1 {
		t.Errorf("explicit ignore lists not honored: %v %v",
			cfg.Multiply.IgnoreBlocks, cfg.Multiply.IgnoreDirs)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}
