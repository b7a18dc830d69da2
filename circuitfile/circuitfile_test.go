// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuitfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/icsim"
	"github.com/db47h/icsim/chiplib"
	"github.com/db47h/icsim/circuitfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledCircuit = `
components:
  - {id: vcc, kind: vcc}
  - {id: gnd, kind: gnd}
  - {id: sw1, kind: switch, closed: true}
  - {id: r1, kind: resistor, value: "4.7k"}
  - {id: d1, kind: led, color: green}
  - {id: dip, kind: dip, on: [0, 3]}
  - {id: u1, kind: "74193", count: 9}
wires:
  - vcc.1=sw1.1
  - sw1.2=r1.1, r1.2=d1.A, d1.K=gnd.1
`

func TestDecode(t *testing.T) {
	c, err := circuitfile.Decode(strings.NewReader(ledCircuit))
	require.NoError(t, err)
	require.Len(t, c.Components(), 7)
	require.Len(t, c.Wires(), 4)

	assert.Equal(t, 4700.0, c.Component("r1").Ohms)
	assert.Equal(t, "green", c.Component("d1").Color)
	assert.Equal(t, uint8(0x9), c.Component("dip").Bits)
	assert.Equal(t, 9, c.Component("u1").Count())
	assert.Equal(t, icsim.Endpoint{Comp: "d1", Pin: 2}, c.Wires()[3].From)

	c.Simulate()
	d1 := c.Component("d1")
	assert.True(t, d1.Lit)
	assert.False(t, d1.Burned)
}

func TestDecode_errors(t *testing.T) {
	data := []struct {
		name string
		in   string
		err  string
	}{
		{"kind", "components:\n  - {id: x, kind: flux}\n", `unknown component kind "flux"`},
		{"pin", "components:\n  - {id: r1, kind: resistor}\n  - {id: r2, kind: resistor}\nwires:\n  - r1.X=r2.1\n", `no pin named "X" on r1`},
		{"dup", "components:\n  - {id: r1, kind: resistor}\n  - {id: r2, kind: resistor}\nwires:\n  - r1.1=r2.1, r2.1=r1.1\n", "duplicate wire"},
		{"value", "components:\n  - {id: d1, kind: led, value: 10}\n", "d1: value not supported on led"},
		{"field", "components:\n  - {id: d1, kind: led, colour: red}\n", "colour"},
		{"count", "components:\n  - {id: d1, kind: led, count: 3}\n", "d1: counter state not supported on led"},
		{"latch", "components:\n  - {id: u1, kind: \"74193\", discharge: true}\n", "u1: timer state not supported on 74193"},
		{"waypoints", "components:\n  - {id: r1, kind: resistor}\n  - {id: r2, kind: resistor}\nwires:\n  - {net: r1.1=r2.1=r1.2, waypoints: [{x: 1, y: 2}]}\n", "waypoints need exactly one wire"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := circuitfile.Decode(strings.NewReader(d.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.err)
		})
	}
}

func TestSave_Load(t *testing.T) {
	c, err := circuitfile.Decode(strings.NewReader(ledCircuit))
	require.NoError(t, err)
	require.NoError(t, c.SetCapacitance(mustAdd(t, c, icsim.Capacitor).ID, 100e-9, ""))

	name := filepath.Join(t.TempDir(), "circuit.yaml")
	require.NoError(t, circuitfile.Save(name, c))
	c2, err := circuitfile.Load(name)
	require.NoError(t, err)

	var b1, b2 bytes.Buffer
	require.NoError(t, circuitfile.Encode(&b1, c))
	require.NoError(t, circuitfile.Encode(&b2, c2))
	assert.Equal(t, b1.String(), b2.String())
	assert.Equal(t, "100nF", c2.Component("capacitor-1").Label)
}

const seqCircuit = `
components:
  - {id: vcc, kind: vcc}
  - {id: gnd, kind: gnd}
  - {id: sw, kind: switch, closed: true}
  - {id: cnt, kind: "74193"}
  - {id: tmr, kind: "555"}
wires:
  - vcc.1=cnt.VCC=cnt.UP=cnt.LOAD, gnd.1=cnt.GND
  - vcc.1=tmr.VCC=tmr.RESET=tmr.TRIG, gnd.1=tmr.GND
  - vcc.1=sw.1, sw.2=tmr.THR
`

func reload(t *testing.T, c *icsim.Circuit) *icsim.Circuit {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, circuitfile.Encode(&b, c))
	c2, err := circuitfile.Decode(&b)
	require.NoError(t, err)
	return c2
}

func TestSave_Load_sequential_state(t *testing.T) {
	c, err := circuitfile.Decode(strings.NewReader(seqCircuit))
	require.NoError(t, err)
	c.Simulate()
	require.NoError(t, c.SetClosed("sw", false))
	c.Simulate()
	require.Equal(t, 1, c.Component("cnt").Count())
	require.Equal(t, chiplib.Latch{Discharge: true}, c.Component("tmr").Timer())

	c2 := reload(t, c)
	assert.Equal(t, c.Component("cnt").Counter(), c2.Component("cnt").Counter())
	assert.Equal(t, c.Component("tmr").Timer(), c2.Component("tmr").Timer())

	c2.Simulate()
	assert.Equal(t, 1, c2.Component("cnt").Count(), "no edge on a held clock")
	assert.Equal(t, chiplib.Latch{Discharge: true}, c2.Component("tmr").Timer())
	dis, err := c2.Component("tmr").PinLevel("DIS")
	require.NoError(t, err)
	assert.True(t, dis)
}

func TestSave_Load_waypoints(t *testing.T) {
	in := ledCircuit + "  - {net: r1.2=gnd.1, waypoints: [{x: 120, y: 40}, {x: 120, y: 80}]}\n"
	c, err := circuitfile.Decode(strings.NewReader(in))
	require.NoError(t, err)
	ws := c.Wires()
	require.Len(t, ws, 5)
	want := []icsim.Point{{X: 120, Y: 40}, {X: 120, Y: 80}}
	assert.Equal(t, want, ws[4].Waypoints)

	c2 := reload(t, c)
	assert.Equal(t, want, c2.Wires()[4].Waypoints)
	assert.Empty(t, c2.Wires()[0].Waypoints)
}

func mustAdd(t *testing.T, c *icsim.Circuit, k icsim.Kind) *icsim.Component {
	t.Helper()
	cp, err := c.Add(k, "")
	require.NoError(t, err)
	return cp
}
