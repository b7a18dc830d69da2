// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim_test

import (
	"math"
	"strings"
	"testing"

	"github.com/db47h/icsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuit_errors(t *testing.T) {
	c := rails(t)
	add(t, c, icsim.AND7408, "u1")
	add(t, c, icsim.LED, "d1")
	add(t, c, icsim.Resistor, "r1")
	_, err := c.Connect(ep("u1", 1), ep("d1", 1))
	require.NoError(t, err)

	td := []struct {
		name string
		fn   func() error
		err  string
	}{
		{"dup_id", func() error { _, err := c.Add(icsim.LED, "d1"); return err }, `duplicate component id "d1"`},
		{"bad_id", func() error { _, err := c.Add(icsim.LED, "d.2"); return err }, `invalid component id "d.2"`},
		{"bad_kind", func() error { _, err := c.Add(icsim.Kind(99), ""); return err }, "invalid component kind 99"},
		{"self", func() error { _, err := c.Connect(ep("u1", 3), ep("u1", 3)); return err }, "invalid wire: u1.3 connected to itself"},
		{"dup_wire", func() error { _, err := c.Connect(ep("d1", 1), ep("u1", 1)); return err }, "duplicate wire wire-1 between d1.1 and u1.1"},
		{"unknown", func() error { _, err := c.Connect(ep("x", 1), ep("u1", 1)); return err }, `invalid wire: unknown component "x"`},
		{"range", func() error { _, err := c.Connect(ep("u1", 15), ep("d1", 2)); return err }, "invalid wire: pin 15 out of range for u1 (74LS08 has 14 pins)"},
		{"range0", func() error { _, err := c.Connect(ep("u1", 1), ep("d1", 0)); return err }, "invalid wire: pin 0 out of range for d1 (LED has 2 pins)"},
		{"toggle", func() error { return c.Toggle("d1") }, "d1: operation not supported on led"},
		{"toggle_unknown", func() error { return c.Toggle("sw") }, `unknown component "sw"`},
		{"ohms", func() error { return c.SetResistance("r1", -1) }, "r1: invalid resistance -1"},
		{"ohms_kind", func() error { return c.SetResistance("d1", 1) }, "d1: operation not supported on led"},
		{"color", func() error { return c.SetColor("d1", "pink") }, `d1: unsupported LED color "pink"`},
		{"dip", func() error { return c.SetDIP("d1", 0, true) }, "d1: operation not supported on led"},
		{"farads", func() error { return c.SetCapacitance("r1", 1, "") }, "r1: operation not supported on resistor"},
		{"disconnect", func() error { return c.Disconnect("wire-9") }, `unknown wire "wire-9"`},
		{"remove", func() error { return c.Remove("x") }, `unknown component "x"`},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			assert.EqualError(t, d.fn(), d.err)
		})
	}
}

func TestCircuit_edit(t *testing.T) {
	c := icsim.New()
	a, err := c.Add(icsim.LED, "")
	require.NoError(t, err)
	b, err := c.Add(icsim.LED, "")
	require.NoError(t, err)
	assert.Equal(t, "led-1", a.ID)
	assert.Equal(t, "led-2", b.ID)
	sw, err := c.Add(icsim.Switch, "")
	require.NoError(t, err)

	w1, err := c.Connect(ep(a.ID, 1), ep(b.ID, 1))
	require.NoError(t, err)
	_, err = c.Connect(ep(sw.ID, 2), ep(b.ID, 2))
	require.NoError(t, err)
	w3, err := c.Connect(ep(sw.ID, 1), ep(a.ID, 2))
	require.NoError(t, err)
	assert.Equal(t, "wire-3", w3.ID)
	assert.Equal(t, w1, c.Wire("wire-1"))

	require.NoError(t, c.Remove(b.ID))
	assert.Nil(t, c.Component(b.ID))
	require.Len(t, c.Wires(), 1)
	assert.Equal(t, w3, c.Wires()[0])
	assert.Equal(t, []*icsim.Component{a, sw}, c.Components())

	// indices are kept in sync after removal
	n := icsim.BuildNets(c)
	assert.Equal(t, n.Of(ep(sw.ID, 1)), n.Of(ep(a.ID, 2)))

	require.NoError(t, c.Disconnect(w3.ID))
	assert.Empty(t, c.Wires())

	require.NoError(t, c.Toggle(sw.ID))
	assert.True(t, sw.Closed)
	require.NoError(t, c.Toggle(sw.ID))
	assert.False(t, sw.Closed)
	require.NoError(t, c.SetColor(a.ID, "Blue"))
	assert.Equal(t, "blue", a.Color)

	dip, err := c.Add(icsim.DIPSwitch, "dip")
	require.NoError(t, err)
	require.NoError(t, c.SetDIP("dip", 3, true))
	require.NoError(t, c.SetDIP("dip", 1, true))
	require.NoError(t, c.SetDIP("dip", 3, false))
	assert.Equal(t, uint8(2), dip.Bits)
	assert.EqualError(t, c.SetDIP("dip", 4, true), "dip: DIP position 4 out of range [0, 3]")

	c1, err := c.Add(icsim.Capacitor, "c1")
	require.NoError(t, err)
	assert.Equal(t, "10µF", c1.Label)
	require.NoError(t, c.SetCapacitance("c1", 4.7e-9, ""))
	assert.Equal(t, "4.7nF", c1.Label)

	c.Clear()
	assert.Empty(t, c.Components())
	assert.Empty(t, c.Wires())
	a, err = c.Add(icsim.LED, "")
	require.NoError(t, err)
	assert.Equal(t, "led-1", a.ID)
}

func TestComponent_PinLevel(t *testing.T) {
	b := rails(t)
	add(t, b, icsim.AND7408, "u1")
	wire(t, b, "vcc.1=u1.VCC")
	b.Simulate()
	u := b.Component("u1")
	v, err := u.PinLevel("VCC")
	require.NoError(t, err)
	assert.True(t, v)
	v, err = u.PinLevel("1Y")
	require.NoError(t, err)
	assert.False(t, v)
	_, err = u.PinLevel("5Y")
	assert.EqualError(t, err, `u1: no pin named "5Y" on 74LS08`)
}

func TestKind(t *testing.T) {
	for _, k := range icsim.Kinds() {
		p, err := icsim.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, p)
		p, err = icsim.ParseKind(icsim.Spec(k).Name)
		require.NoError(t, err)
		assert.Equal(t, k, p)
		assert.Equal(t, k <= icsim.TIMER555, k.IsIC())
	}
	k, err := icsim.ParseKind(" 74ls193 ")
	require.NoError(t, err)
	assert.Equal(t, icsim.CNT74193, k)
	_, err = icsim.ParseKind("7400")
	assert.EqualError(t, err, `unknown component kind "7400"`)
	assert.Equal(t, "Kind(42)", icsim.Kind(42).String())
	_, err = icsim.Kind(-1).MarshalText()
	assert.Error(t, err)

	var u icsim.Kind
	require.NoError(t, u.UnmarshalText([]byte("555")))
	assert.Equal(t, icsim.TIMER555, u)
}

func TestCatalog(t *testing.T) {
	for _, k := range icsim.Kinds() {
		p := icsim.Spec(k)
		require.NotNil(t, p, k.String())
		for i, pin := range p.Pins {
			assert.Equal(t, i+1, pin.Num, "%s pin %s", k, pin.Name)
		}
		if k.IsIC() {
			assert.NotNil(t, p.Eval, k.String())
			assert.Equal(t, icsim.PowerPin, p.Role(p.VCC), k.String())
			assert.Equal(t, icsim.PowerPin, p.Role(p.GND), k.String())
			assert.Equal(t, "VCC", p.Pins[p.VCC-1].Name)
			assert.Equal(t, "GND", p.Pins[p.GND-1].Name)
		} else {
			assert.Nil(t, p.Eval, k.String())
		}
	}
	assert.Nil(t, icsim.Spec(icsim.Kind(99)))
	p := icsim.Spec(icsim.CMP7485)
	assert.Equal(t, 5, p.Pin("OA>B"))
	assert.Panics(t, func() { p.Pin("nope") })
}

func TestDescribe(t *testing.T) {
	d := icsim.Describe(icsim.AND7408)
	lines := strings.Split(strings.TrimRight(d, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "74LS08 (7408): Quad 2-Input AND Gate", lines[0])
	assert.Equal(t, " 1A  1|     |14 VCC", lines[2])
	assert.Equal(t, "GND  7|     |8  3Y", lines[8])

	d = icsim.Describe(icsim.LED)
	assert.Contains(t, d, "   1  A    passive")
	assert.Equal(t, "", icsim.Describe(icsim.Kind(-3)))
}

func TestParseValue(t *testing.T) {
	td := []struct {
		in  string
		v   float64
		err bool
	}{
		{"330", 330, false},
		{"4.7k", 4700, false},
		{"4.7K", 4700, false},
		{"1meg", 1e6, false},
		{"1MEG", 1e6, false},
		{"2M", 2e6, false},
		{"10u", 10e-6, false},
		{"10µF", 10e-6, false},
		{"100nF", 100e-9, false},
		{"220Ω", 220, false},
		{"1.5mohm", 1.5e-3, false},
		{"1e-07", 1e-7, false},
		{" 68 ", 68, false},
		{"k", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, d := range td {
		v, err := icsim.ParseValue(d.in)
		if d.err {
			assert.Error(t, err, d.in)
			continue
		}
		require.NoError(t, err, d.in)
		assert.InDelta(t, d.v, v, math.Abs(d.v)*1e-12, d.in)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "330Ω", icsim.FormatValue(330, "Ω"))
	assert.Equal(t, "4.7kΩ", icsim.FormatValue(4700, "Ω"))
	assert.Equal(t, "1MΩ", icsim.FormatValue(1e6, "Ω"))
	assert.Equal(t, "10µF", icsim.FormatValue(10e-6, "F"))
	assert.Equal(t, "0F", icsim.FormatValue(0, "F"))
}

func TestParams(t *testing.T) {
	p := icsim.DefaultParams()
	assert.Equal(t, 0.0, p.Current(math.Inf(1)))
	assert.Equal(t, 3.0, p.Current(0))
	assert.Equal(t, 3.0, p.Current(0.5))
	assert.Equal(t, 0.0, p.Brightness(0))
	assert.Equal(t, 1.0, p.Brightness(0.025))
	assert.Equal(t, p.MinGlow, p.Brightness(1e-6))
	assert.InDelta(t, 0.5, p.Brightness(0.005), 1e-12)
}
