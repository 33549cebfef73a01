// Package config loads the tool's YAML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Config struct {
	GenModifiers GenModifiers `yaml:"gen_modifiers"`
	Multiply     Multiply     `yaml:"multiply"`
}

// GenModifiers configures table construction: where entity sets are
// discovered, the global multiplier, and per-name overrides.
type GenModifiers struct {
	Multiplier          float64        `yaml:"multiplier"`
	Estates             []string       `yaml:"estates"`
	Factions            []string       `yaml:"factions"`
	IgnoreFactions      []string       `yaml:"ignore_factions"`
	GovernmentMechanics []string       `yaml:"government_mechanics"`
	TechTypes           []string       `yaml:"tech_types"`
	Ignores             []string       `yaml:"ignores"`
	Alternatives        map[string]any `yaml:"alternatives"`
}

// Multiply configures the walk phase. IgnoreDirs and IgnoreBlocks
// default to the stock sets below when omitted.
type Multiply struct {
	Targets      []string `yaml:"targets"`
	Destination  string   `yaml:"destination"`
	IgnoreStatic []string `yaml:"ignore_static"`
	IgnoreDirs   []string `yaml:"ignore_dirs"`
	IgnoreBlocks []string `yaml:"ignore_blocks"`
}

// DefaultIgnoreBlocks are the keys wrapping conditional or
// probability logic in stock game files.
var DefaultIgnoreBlocks = []string{
	"ai",
	"ai_will_do",
	"allow",
	"can_end",
	"can_select",
	"can_start",
	"can_stop",
	"chance",
	"on_monthly",
	"potential",
	"progress",
	"target_province_weights",
	"trigger",
}

// DefaultIgnoreDirs are the content categories irrelevant to numeric
// balance.
var DefaultIgnoreDirs = []string{
	"ai_army",
	"ai_attitudes",
	"ai_personalities",
	"bookmarks",
	"cb_types",
	"client_states",
	"colonial_regions",
	"countries",
	"country_colors",
	"country_tags",
	"cultures",
	"custom_country_colors",
	"defines",
	"diplomatic_actions",
	"dynasty_colors",
	"estate_agendas",
	"estates_preload",
	"government_names",
	"governments",
	"imperial_incidents",
	"incidents",
	"insults",
	"natives",
	"new_diplomatic_actions",
	"on_actions",
	"opinion_modifiers",
	"parliament_bribes",
	"peace_treaties",
	"powerprojection",
	"prices",
	"province_names",
	"rebel_types",
	"region_colors",
	"religious_conversions",
	"revolt_triggers",
	"scripted_effects",
	"scripted_functions",
	"scripted_triggers",
	"subject_types",
	"timed_modifiers",
	"trade_companies",
	"tradenodes",
	"units",
	"units_display",
	"wargoal_types",
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	if len(cfg.Multiply.IgnoreDirs) == 0 {
		cfg.Multiply.IgnoreDirs = DefaultIgnoreDirs
	}
	if len(cfg.Multiply.IgnoreBlocks) == 0 {
		cfg.Multiply.IgnoreBlocks = DefaultIgnoreBlocks
	}
	return cfg, nil
}

// Set turns a name list into a lookup set.
func Set(names []string) map[string]bool {
	res := make(map[string]bool, len(names))
	for _, name := range names {
		res[name] = true
	}
	return res
}
