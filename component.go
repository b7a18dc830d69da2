// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import (
	"github.com/db47h/icsim/chiplib"
	"github.com/pkg/errors"
)

// A Component is a part placed in a circuit.
//
// Pin levels are stored inline: Pins[n] is the level of pin n and Pins[0] is
// unused. Attributes only apply to the kinds noted in their comment. Fields
// marked as derived are recomputed by every call to Circuit.Simulate.
//
type Component struct {
	ID       string
	Kind     Kind
	Rotation int // presentation only
	Pins     []bool

	Closed      bool    // Switch, PushButton (pressed)
	Bits        uint8   // DIPSwitch: bit i set => position i+1 ON
	Ohms        float64 // Resistor
	Farads      float64 // Capacitor
	Label       string  // Capacitor, Power
	Color       string  // LED
	CommonAnode bool    // SevenSeg

	// derived
	Powered    bool    // ICs
	Lit        bool    // LED
	Burned     bool    // LED
	Brightness float64 // LED, in [0, 1]
	Current    float64 // LED, estimated current in amperes
	Segments   uint8   // SevenSeg, lit segments: chiplib.SegA to SegG and SegDP
	Digit      int     // SevenSeg, -1 if blank or not a digit

	counter chiplib.Counter // committed counter state
	cbase   chiplib.Counter // counter state for the current pass
	cwork   chiplib.Counter // counter state as last evaluated
	latch   chiplib.Latch   // committed timer state
	lwork   chiplib.Latch   // timer state for the current pass

	idx int // index in Circuit.comps
}

func newComponent(k Kind, id string) *Component {
	c := &Component{
		ID:    id,
		Kind:  k,
		Pins:  make([]bool, Spec(k).PinCount()+1),
		Digit: -1,
	}
	switch k {
	case Resistor:
		c.Ohms = 330
	case Capacitor:
		c.Farads = 10e-6
		c.Label = "10µF"
	case Power:
		c.Label = "5V"
	case LED:
		c.Color = "red"
	}
	return c
}

// Spec returns the catalog entry for the component's kind.
//
func (c *Component) Spec() *PartSpec { return Spec(c.Kind) }

// PinLevel returns the level of the pin with the given catalog name.
//
func (c *Component) PinLevel(name string) (bool, error) {
	n, ok := c.Spec().LookupPin(name)
	if !ok {
		return false, errors.Errorf("%s: no pin named %q on %s", c.ID, name, c.Spec().Name)
	}
	return c.Pins[n], nil
}

// Count returns the committed count of a 74193 counter.
//
func (c *Component) Count() int { return int(c.counter.Count) }

// SetCount presets the committed count of a 74193 counter.
//
func (c *Component) SetCount(n int) {
	c.counter.Count = uint8(n) & 0xf
}

// Counter returns the committed state of a 74193 counter: its count and the
// clock levels sampled at the end of the last pass.
//
func (c *Component) Counter() chiplib.Counter { return c.counter }

// SetCounter restores the committed state of a 74193 counter.
//
func (c *Component) SetCounter(s chiplib.Counter) {
	c.counter = chiplib.Counter{Count: s.Count & 0xf, PrevUp: s.PrevUp, PrevDown: s.PrevDown}
}

// Timer returns the committed latch of a 555 timer.
//
func (c *Component) Timer() chiplib.Latch { return c.latch }

// SetTimer restores the committed latch of a 555 timer.
//
func (c *Component) SetTimer(l chiplib.Latch) { c.latch = l }

// conducts reports whether the internal bridge between pins a and b of a
// passive component is closed.
//
func (c *Component) conducts(a, b int) bool {
	switch c.Kind {
	case Resistor, Capacitor:
		return true
	case Switch, PushButton:
		return c.Closed
	case DIPSwitch:
		if a > b {
			a, b = b, a
		}
		return b == 9-a && c.Bits&(1<<uint(a-1)) != 0
	}
	return false
}

func (c *Component) role(pin int) PinRole {
	return catalog[c.Kind].Pins[pin-1].Role
}

func (c *Component) checkKind(ks ...Kind) error {
	for _, k := range ks {
		if c.Kind == k {
			return nil
		}
	}
	return errors.Errorf("%s: operation not supported on %s", c.ID, c.Kind)
}
