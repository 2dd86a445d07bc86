// Package config loads the match configuration: durations, point values,
// the FMS plate color assignment, travel-time overrides and the scenario to
// run. Everything here is static, read-only input to match setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"powerupsim/internal/game"
	"powerupsim/internal/sim"
)

type Config struct {
	MatchSeconds      int `yaml:"match_seconds"`
	AutonomousSeconds int `yaml:"autonomous_seconds"`

	SwitchFrontColor string `yaml:"switch_front_color"`
	ScaleFrontColor  string `yaml:"scale_front_color"`

	Scenario string `yaml:"scenario"`

	PowerCubeZoneCubes int `yaml:"power_cube_zone_cubes"`
	PortalCubes        int `yaml:"portal_cubes"`

	Points Points `yaml:"points"`

	TravelTimes []TravelTimeSpec `yaml:"travel_times,omitempty"`
}

type Points struct {
	CrossLineAuto  int `yaml:"cross_line_auto"`
	GainSwitchAuto int `yaml:"gain_switch_auto"`
	GainScaleAuto  int `yaml:"gain_scale_auto"`

	SwitchPerSecond int `yaml:"switch_per_second"`
	ScalePerSecond  int `yaml:"scale_per_second"`

	VaultCube int `yaml:"vault_cube"`

	Park  int `yaml:"park"`
	Climb int `yaml:"climb"`

	BoostSeconds int `yaml:"boost_seconds"`
	ForceSeconds int `yaml:"force_seconds"`

	AutoQuestRP   int `yaml:"auto_quest_rp"`
	FaceTheBossRP int `yaml:"face_the_boss_rp"`
}

type TravelTimeSpec struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Seconds int    `yaml:"seconds"`
}

// Load reads a config file. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("match config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("match config: %w", err)
	}
	return cfg, nil
}

func Defaults() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.MatchSeconds <= 0 {
		c.MatchSeconds = 150
	}
	if c.AutonomousSeconds <= 0 {
		c.AutonomousSeconds = 15
	}
	if c.SwitchFrontColor == "" {
		c.SwitchFrontColor = string(sim.Red)
	}
	if c.ScaleFrontColor == "" {
		c.ScaleFrontColor = string(sim.Red)
	}
	if c.PowerCubeZoneCubes <= 0 {
		c.PowerCubeZoneCubes = 10
	}
	if c.PortalCubes <= 0 {
		c.PortalCubes = 7
	}

	p := &c.Points
	if p.CrossLineAuto <= 0 {
		p.CrossLineAuto = 5
	}
	if p.GainSwitchAuto <= 0 {
		p.GainSwitchAuto = 2
	}
	if p.GainScaleAuto <= 0 {
		p.GainScaleAuto = 2
	}
	if p.SwitchPerSecond <= 0 {
		p.SwitchPerSecond = 1
	}
	if p.ScalePerSecond <= 0 {
		p.ScalePerSecond = 1
	}
	if p.VaultCube <= 0 {
		p.VaultCube = 5
	}
	if p.Park <= 0 {
		p.Park = 5
	}
	if p.Climb <= 0 {
		p.Climb = 30
	}
	if p.BoostSeconds <= 0 {
		p.BoostSeconds = 10
	}
	if p.ForceSeconds <= 0 {
		p.ForceSeconds = 10
	}
	if p.AutoQuestRP <= 0 {
		p.AutoQuestRP = 1
	}
	if p.FaceTheBossRP <= 0 {
		p.FaceTheBossRP = 1
	}
}

func (c *Config) Validate() error {
	if c.AutonomousSeconds >= c.MatchSeconds {
		return fmt.Errorf("autonomous_seconds %d must be shorter than match_seconds %d",
			c.AutonomousSeconds, c.MatchSeconds)
	}
	for _, field := range []string{c.SwitchFrontColor, c.ScaleFrontColor} {
		if field != string(sim.Red) && field != string(sim.Blue) {
			return fmt.Errorf("plate color %q must be RED or BLUE", field)
		}
	}
	for _, tt := range c.TravelTimes {
		if tt.Seconds <= 0 {
			return fmt.Errorf("travel time %s -> %s must be positive", tt.From, tt.To)
		}
		if tt.From == "" || tt.To == "" || tt.From == tt.To {
			return fmt.Errorf("travel time needs two distinct locations, got %q -> %q", tt.From, tt.To)
		}
	}
	return nil
}

// Setup maps the file values onto the match setup.
func (c Config) Setup() game.Setup {
	layout := game.DefaultLayout()
	for _, tt := range c.TravelTimes {
		layout.ApplyTravelOverride(game.Location(tt.From), game.Location(tt.To), tt.Seconds)
	}
	return game.Setup{
		Sim: sim.Config{
			MatchSeconds:      c.MatchSeconds,
			AutonomousSeconds: c.AutonomousSeconds,
		},
		Rules: game.Rules{
			CrossLineAuto:   c.Points.CrossLineAuto,
			GainSwitchAuto:  c.Points.GainSwitchAuto,
			GainScaleAuto:   c.Points.GainScaleAuto,
			SwitchPerSecond: c.Points.SwitchPerSecond,
			ScalePerSecond:  c.Points.ScalePerSecond,
			VaultCube:       c.Points.VaultCube,
			Park:            c.Points.Park,
			Climb:           c.Points.Climb,
			BoostSeconds:    c.Points.BoostSeconds,
			ForceSeconds:    c.Points.ForceSeconds,
			AutoQuestRP:     c.Points.AutoQuestRP,
			FaceTheBossRP:   c.Points.FaceTheBossRP,
		},
		Layout:             layout,
		SwitchFrontColor:   sim.Alliance(c.SwitchFrontColor),
		ScaleFrontColor:    sim.Alliance(c.ScaleFrontColor),
		PowerCubeZoneCubes: c.PowerCubeZoneCubes,
		PortalCubes:        c.PortalCubes,
	}
}
