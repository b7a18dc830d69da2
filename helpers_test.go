// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim_test

import (
	"testing"

	"github.com/db47h/icsim"
	"github.com/db47h/icsim/circuitfile"
	"github.com/stretchr/testify/require"
)

func add(t *testing.T, c *icsim.Circuit, k icsim.Kind, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := c.Add(k, id)
		require.NoError(t, err)
	}
}

func wire(t *testing.T, c *icsim.Circuit, spec string) {
	t.Helper()
	_, err := circuitfile.ParseWires(c, spec)
	require.NoError(t, err)
}

func ep(comp string, pin int) icsim.Endpoint {
	return icsim.Endpoint{Comp: comp, Pin: pin}
}

// rails returns a circuit with a power source "vcc" and a ground "gnd".
func rails(t *testing.T) *icsim.Circuit {
	c := icsim.New()
	add(t, c, icsim.Power, "vcc")
	add(t, c, icsim.Ground, "gnd")
	return c
}
