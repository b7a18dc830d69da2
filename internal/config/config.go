// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads simulator settings from TOML files.
//
//	[sim]
//	max_iterations = 20
//
//	[analog]
//	supply_volts = 5.0
//	led_drop_volts = 2.0
//	max_safe_amps = 0.030
//	nominal_amps = 0.020
//	min_glow = 0.15
//	ic_output_ohms = 150.0
//
// Omitted keys keep their default value.
//
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/db47h/icsim"
	"github.com/pkg/errors"
)

// Sim holds the scheduler settings.
//
type Sim struct {
	MaxIterations int `toml:"max_iterations"`
}

// Analog holds the LED approximation constants.
//
type Analog struct {
	SupplyVolts  float64 `toml:"supply_volts"`
	LEDDropVolts float64 `toml:"led_drop_volts"`
	MaxSafeAmps  float64 `toml:"max_safe_amps"`
	NominalAmps  float64 `toml:"nominal_amps"`
	MinGlow      float64 `toml:"min_glow"`
	ICOutputOhms float64 `toml:"ic_output_ohms"`
}

// Config is the simulator configuration.
//
type Config struct {
	Sim    Sim    `toml:"sim"`
	Analog Analog `toml:"analog"`
}

// Default returns the default configuration.
//
func Default() *Config {
	p := icsim.DefaultParams()
	return &Config{
		Sim: Sim{MaxIterations: icsim.DefaultMaxIterations},
		Analog: Analog{
			SupplyVolts:  p.SupplyVolts,
			LEDDropVolts: p.LEDDropVolts,
			MaxSafeAmps:  p.MaxSafeAmps,
			NominalAmps:  p.NominalAmps,
			MinGlow:      p.MinGlow,
			ICOutputOhms: p.ICOutputOhms,
		},
	}
}

// Load reads the configuration file at path on top of the defaults.
//
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config file %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("%s: unknown setting %s", path, keys[0])
	}
	if err = c.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// Parse decodes a configuration from TOML text on top of the defaults.
//
func Parse(text string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(text, c)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("unknown setting %s", keys[0])
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the settings are usable.
//
func (c *Config) Validate() error {
	a := &c.Analog
	switch {
	case c.Sim.MaxIterations < 1:
		return errors.Errorf("sim.max_iterations must be at least 1, got %d", c.Sim.MaxIterations)
	case a.SupplyVolts <= a.LEDDropVolts:
		return errors.Errorf("analog.supply_volts (%g) must exceed analog.led_drop_volts (%g)", a.SupplyVolts, a.LEDDropVolts)
	case a.NominalAmps <= 0 || a.MaxSafeAmps <= 0:
		return errors.New("analog.nominal_amps and analog.max_safe_amps must be positive")
	case a.MinGlow < 0 || a.MinGlow > 1:
		return errors.Errorf("analog.min_glow must be in [0, 1], got %g", a.MinGlow)
	case a.ICOutputOhms < 0:
		return errors.Errorf("analog.ic_output_ohms must not be negative, got %g", a.ICOutputOhms)
	}
	return nil
}

// Params returns the analog parameters.
//
func (c *Config) Params() icsim.Params {
	a := &c.Analog
	return icsim.Params{
		SupplyVolts:  a.SupplyVolts,
		LEDDropVolts: a.LEDDropVolts,
		MaxSafeAmps:  a.MaxSafeAmps,
		NominalAmps:  a.NominalAmps,
		MinGlow:      a.MinGlow,
		ICOutputOhms: a.ICOutputOhms,
	}
}

// Options returns the simulation options for c.
//
func (c *Config) Options() []icsim.Option {
	return []icsim.Option{
		icsim.WithMaxIterations(c.Sim.MaxIterations),
		icsim.WithParams(c.Params()),
	}
}
