// Package config loads the externally supplied tuning data: XP curves, the
// crafting recipe table, smelting timing and logging sinks.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tilesmith/internal/state"
)

// Duration decodes "2s"-style YAML strings through time.ParseDuration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// XPCurve parameterizes the geometric level threshold table.
type XPCurve struct {
	Base     int     `yaml:"base"`
	Growth   float64 `yaml:"growth"`
	MaxLevel int     `yaml:"max_level"`
}

// Recipe is one crafting table entry.
type Recipe struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Material string `yaml:"material"`
	Bars     int    `yaml:"bars"`
}

// Logging selects event sinks.
type Logging struct {
	Sinks   []string `yaml:"sinks"`
	LogFile string   `yaml:"log_file"`
}

// Config is the game tuning file. Every field has a default so a missing
// file runs the stock prototype.
type Config struct {
	TickRate      int      `yaml:"tick_rate"`
	SmeltDuration Duration `yaml:"smelt_duration"`
	SmeltXP       int      `yaml:"smelt_xp"`
	XPCurve       XPCurve  `yaml:"xp_curve"`
	Recipes       []Recipe `yaml:"recipes"`
	Logging       Logging  `yaml:"logging"`
}

// Default returns the stock tuning: the original prototype's curve and
// recipe table.
func Default() Config {
	return Config{
		TickRate:      60,
		SmeltDuration: Duration(2 * time.Second),
		SmeltXP:       20,
		XPCurve:       XPCurve{Base: 100, Growth: 1.1, MaxLevel: 99},
		Recipes: []Recipe{
			{Name: "Bronze Dagger", Level: 1, Material: "bronze", Bars: 1},
			{Name: "Bronze Med Helm", Level: 2, Material: "bronze", Bars: 1},
			{Name: "Bronze Sword", Level: 3, Material: "bronze", Bars: 1},
			{Name: "Bronze Shield", Level: 4, Material: "bronze", Bars: 1},
			{Name: "Bronze Full Helm", Level: 5, Material: "bronze", Bars: 2},
			{Name: "Bronze Plate Legs", Level: 6, Material: "bronze", Bars: 3},
			{Name: "Bronze Long Sword", Level: 7, Material: "bronze", Bars: 2},
			{Name: "Bronze Scimitar", Level: 8, Material: "bronze", Bars: 2},
			{Name: "Bronze Plate Body", Level: 9, Material: "bronze", Bars: 5},
			{Name: "Iron Dagger", Level: 10, Material: "iron", Bars: 1},
		},
		Logging: Logging{Sinks: []string{"console"}},
	}
}

// Load reads the tuning file, layering it over the defaults. A missing file
// is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// normalized backfills zero values with defaults.
func (c Config) normalized() Config {
	def := Default()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.SmeltDuration <= 0 {
		c.SmeltDuration = def.SmeltDuration
	}
	if c.SmeltXP <= 0 {
		c.SmeltXP = def.SmeltXP
	}
	if c.XPCurve.Base <= 0 {
		c.XPCurve.Base = def.XPCurve.Base
	}
	if c.XPCurve.Growth <= 1 {
		c.XPCurve.Growth = def.XPCurve.Growth
	}
	if c.XPCurve.MaxLevel < 2 {
		c.XPCurve.MaxLevel = def.XPCurve.MaxLevel
	}
	if len(c.Recipes) == 0 {
		c.Recipes = def.Recipes
	}
	if len(c.Logging.Sinks) == 0 {
		c.Logging.Sinks = def.Logging.Sinks
	}
	return c
}

// SmeltTicks converts the smelt duration into simulation ticks.
func (c Config) SmeltTicks() uint64 {
	ticks := time.Duration(c.SmeltDuration) * time.Duration(c.TickRate) / time.Second
	if ticks < 1 {
		return 1
	}
	return uint64(ticks)
}

// Thresholds materializes the XP threshold table.
func (c Config) Thresholds() []int {
	return state.XPThresholds(c.XPCurve.Base, c.XPCurve.Growth, c.XPCurve.MaxLevel)
}

// StateRecipes converts the recipe table for the actor.
func (c Config) StateRecipes() []state.Recipe {
	recipes := make([]state.Recipe, len(c.Recipes))
	for i, r := range c.Recipes {
		recipes[i] = state.Recipe{Name: r.Name, Level: r.Level, Material: r.Material, Bars: r.Bars}
	}
	return recipes
}
