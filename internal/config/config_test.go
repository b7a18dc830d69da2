// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/icsim"
	"github.com/db47h/icsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := config.Parse(`
[sim]
max_iterations = 50

[analog]
supply_volts = 3.3
`)
	require.NoError(t, err)
	assert.Equal(t, 50, c.Sim.MaxIterations)
	p := c.Params()
	assert.Equal(t, 3.3, p.SupplyVolts)
	assert.Equal(t, icsim.DefaultParams().LEDDropVolts, p.LEDDropVolts)
	assert.Len(t, c.Options(), 2)
}

func TestParse_errors(t *testing.T) {
	data := []struct {
		name string
		in   string
		err  string
	}{
		{"unknown", "[sim]\nmax_iter = 3\n", "unknown setting sim.max_iter"},
		{"iterations", "[sim]\nmax_iterations = 0\n", "sim.max_iterations must be at least 1, got 0"},
		{"drop", "[analog]\nled_drop_volts = 6.0\n", "analog.supply_volts (5) must exceed analog.led_drop_volts (6)"},
		{"glow", "[analog]\nmin_glow = 1.5\n", "analog.min_glow must be in [0, 1], got 1.5"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := config.Parse(d.in)
			assert.EqualError(t, err, d.err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "icsim")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "icsim.toml")
	require.NoError(t, ioutil.WriteFile(name, []byte("[analog]\nic_output_ohms = 220.0\n"), 0644))
	c, err := config.Load(name)
	require.NoError(t, err)
	assert.Equal(t, 220.0, c.Analog.ICOutputOhms)
	assert.Equal(t, icsim.DefaultMaxIterations, c.Sim.MaxIterations)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
