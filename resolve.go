// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

// Resolve computes the level of net i and writes it back to the member pins
// that take their level from the net: inputs, power pins and passive pins.
// IC outputs are never written.
//
// The net is HIGH if it contains a power source or a HIGH output of a
// powered IC. Ground pins never pull the net HIGH nor LOW. Both sides of a
// conducting bridge (closed switch, resistor, DIP position) are in the same
// net, so passive pins take the level of the far side through the net itself.
// changed reports whether any pin level was modified.
//
func (n *Nets) Resolve(i int) (level, changed bool) {
	ms := n.nets[i]
	for _, m := range ms {
		cp := n.c.comps[m.comp]
		switch {
		case cp.Kind == Power:
			level = true
		case cp.Kind.IsIC():
			if cp.Powered && cp.role(m.pin) == Output && cp.Pins[m.pin] {
				level = true
			}
		}
		if level {
			break
		}
	}
	for _, m := range ms {
		cp := n.c.comps[m.comp]
		if cp.Kind.IsIC() && cp.role(m.pin) == Output {
			continue
		}
		if cp.Pins[m.pin] != level {
			cp.Pins[m.pin] = level
			changed = true
		}
	}
	return level, changed
}

// Powered returns true if the VCC pin of IC c is HIGH and its GND pin is wired
// to a ground component. It always returns false for non IC parts.
//
func (n *Nets) Powered(c *Component) bool {
	spec := c.Spec()
	if spec.VCC == 0 {
		return false
	}
	return c.Pins[spec.VCC] && n.grounded(c, spec.GND)
}

// evaluate runs the behavioral model of IC c, or forces its outputs LOW if it
// is not powered. It returns true if any output changed.
//
func (n *Nets) evaluate(c *Component) bool {
	s := Socket{nets: n, comp: c}
	spec := c.Spec()
	c.Powered = n.Powered(c)
	if !c.Powered {
		for _, p := range spec.Pins {
			if p.Role == Output {
				s.Set(p.Num, false)
			}
		}
		return s.changed
	}
	spec.Eval(&s)
	return s.changed
}
