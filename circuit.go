// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Circuit is a set of components and the wires between their pins.
//
// Edit operations validate their arguments and never run a simulation pass:
// call Simulate once the edits are done. A Circuit is not safe for concurrent
// use.
//
type Circuit struct {
	comps []*Component
	index map[string]*Component
	wires []*Wire
	seq   [kindCount]int
	wseq  int
}

// New returns an empty circuit.
//
func New() *Circuit {
	return &Circuit{index: make(map[string]*Component)}
}

// Add adds a new component of kind k. If id is empty, a unique id of the form
// "kind-N" is generated.
//
func (c *Circuit) Add(k Kind, id string) (*Component, error) {
	if Spec(k) == nil {
		return nil, errors.Errorf("invalid component kind %d", int(k))
	}
	if id == "" {
		for {
			c.seq[k]++
			id = k.String() + "-" + strconv.Itoa(c.seq[k])
			if c.index[id] == nil {
				break
			}
		}
	} else if strings.ContainsAny(id, " \t\n.,=") {
		return nil, errors.Errorf("invalid component id %q", id)
	}
	if c.index[id] != nil {
		return nil, errors.Errorf("duplicate component id %q", id)
	}
	cp := newComponent(k, id)
	cp.idx = len(c.comps)
	c.comps = append(c.comps, cp)
	c.index[id] = cp
	return cp, nil
}

// Remove removes a component and all wires connected to it.
//
func (c *Circuit) Remove(id string) error {
	cp := c.index[id]
	if cp == nil {
		return errors.Errorf("unknown component %q", id)
	}
	ws := c.wires[:0]
	for _, w := range c.wires {
		if !w.touches(id) {
			ws = append(ws, w)
		}
	}
	for i := len(ws); i < len(c.wires); i++ {
		c.wires[i] = nil
	}
	c.wires = ws

	copy(c.comps[cp.idx:], c.comps[cp.idx+1:])
	c.comps[len(c.comps)-1] = nil
	c.comps = c.comps[:len(c.comps)-1]
	for i := cp.idx; i < len(c.comps); i++ {
		c.comps[i].idx = i
	}
	delete(c.index, id)
	return nil
}

// Clear removes all components and wires.
//
func (c *Circuit) Clear() {
	*c = Circuit{index: make(map[string]*Component)}
}

// Component returns the component with the given id or nil if not found.
//
func (c *Circuit) Component(id string) *Component { return c.index[id] }

// Components returns the circuit's components in insertion order.
// The returned slice must not be modified.
//
func (c *Circuit) Components() []*Component { return c.comps }

// Wires returns the circuit's wires in insertion order.
// The returned slice must not be modified.
//
func (c *Circuit) Wires() []*Wire { return c.wires }

// Wire returns the wire with the given id or nil if not found.
//
func (c *Circuit) Wire(id string) *Wire {
	for _, w := range c.wires {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (c *Circuit) checkEndpoint(e Endpoint) error {
	cp := c.index[e.Comp]
	if cp == nil {
		return errors.Errorf("unknown component %q", e.Comp)
	}
	if e.Pin < 1 || e.Pin > cp.Spec().PinCount() {
		return errors.Errorf("pin %d out of range for %s (%s has %d pins)", e.Pin, e.Comp, cp.Spec().Name, cp.Spec().PinCount())
	}
	return nil
}

// Connect adds a wire between endpoints a and b.
//
func (c *Circuit) Connect(a, b Endpoint) (*Wire, error) {
	if err := c.checkEndpoint(a); err != nil {
		return nil, errors.Wrap(err, "invalid wire")
	}
	if err := c.checkEndpoint(b); err != nil {
		return nil, errors.Wrap(err, "invalid wire")
	}
	if a == b {
		return nil, errors.Errorf("invalid wire: %v connected to itself", a)
	}
	for _, w := range c.wires {
		if w.joins(a, b) {
			return nil, errors.Errorf("duplicate wire %s between %v and %v", w.ID, a, b)
		}
	}
	var id string
	for {
		c.wseq++
		id = "wire-" + strconv.Itoa(c.wseq)
		if c.Wire(id) == nil {
			break
		}
	}
	w := &Wire{ID: id, From: a, To: b}
	c.wires = append(c.wires, w)
	return w, nil
}

// Disconnect removes the wire with the given id.
//
func (c *Circuit) Disconnect(id string) error {
	for i, w := range c.wires {
		if w.ID == id {
			copy(c.wires[i:], c.wires[i+1:])
			c.wires[len(c.wires)-1] = nil
			c.wires = c.wires[:len(c.wires)-1]
			return nil
		}
	}
	return errors.Errorf("unknown wire %q", id)
}

func (c *Circuit) lookup(id string, ks ...Kind) (*Component, error) {
	cp := c.index[id]
	if cp == nil {
		return nil, errors.Errorf("unknown component %q", id)
	}
	if err := cp.checkKind(ks...); err != nil {
		return nil, err
	}
	return cp, nil
}

// Toggle flips a switch or a push-button.
//
func (c *Circuit) Toggle(id string) error {
	cp, err := c.lookup(id, Switch, PushButton)
	if err != nil {
		return err
	}
	cp.Closed = !cp.Closed
	return nil
}

// SetClosed closes or opens a switch, or presses or releases a push-button.
//
func (c *Circuit) SetClosed(id string, closed bool) error {
	cp, err := c.lookup(id, Switch, PushButton)
	if err != nil {
		return err
	}
	cp.Closed = closed
	return nil
}

// SetDIP sets position bit (0 to 3) of a DIP switch.
//
func (c *Circuit) SetDIP(id string, bit int, on bool) error {
	cp, err := c.lookup(id, DIPSwitch)
	if err != nil {
		return err
	}
	if bit < 0 || bit > 3 {
		return errors.Errorf("%s: DIP position %d out of range [0, 3]", id, bit)
	}
	if on {
		cp.Bits |= 1 << uint(bit)
	} else {
		cp.Bits &^= 1 << uint(bit)
	}
	return nil
}

// SetResistance sets the value of a resistor.
//
func (c *Circuit) SetResistance(id string, ohms float64) error {
	cp, err := c.lookup(id, Resistor)
	if err != nil {
		return err
	}
	if ohms < 0 || math.IsNaN(ohms) || math.IsInf(ohms, 0) {
		return errors.Errorf("%s: invalid resistance %g", id, ohms)
	}
	cp.Ohms = ohms
	return nil
}

// SetCapacitance sets the value and display label of a capacitor. If label is
// empty, it is derived from the value.
//
func (c *Circuit) SetCapacitance(id string, farads float64, label string) error {
	cp, err := c.lookup(id, Capacitor)
	if err != nil {
		return err
	}
	if farads <= 0 || math.IsNaN(farads) || math.IsInf(farads, 0) {
		return errors.Errorf("%s: invalid capacitance %g", id, farads)
	}
	if label == "" {
		label = FormatValue(farads, "F")
	}
	cp.Farads, cp.Label = farads, label
	return nil
}

// SetColor sets the color of a LED. See Colors for valid values.
//
func (c *Circuit) SetColor(id, color string) error {
	cp, err := c.lookup(id, LED)
	if err != nil {
		return err
	}
	color = strings.ToLower(color)
	for _, v := range colors {
		if v == color {
			cp.Color = color
			return nil
		}
	}
	return errors.Errorf("%s: unsupported LED color %q", id, color)
}

// SetLabel sets the label of a power source.
//
func (c *Circuit) SetLabel(id, label string) error {
	cp, err := c.lookup(id, Power)
	if err != nil {
		return err
	}
	cp.Label = label
	return nil
}

// SetCommonAnode selects the common anode or common cathode variant of a
// seven-segment display.
//
func (c *Circuit) SetCommonAnode(id string, ca bool) error {
	cp, err := c.lookup(id, SevenSeg)
	if err != nil {
		return err
	}
	cp.CommonAnode = ca
	return nil
}

var colors = []string{"red", "green", "blue", "yellow", "orange", "purple", "cyan"}

// Colors returns the supported LED colors.
//
func Colors() []string {
	return append([]string(nil), colors...)
}
