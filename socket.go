// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

// A Socket gives an EvalFn access to the pins of the IC being evaluated.
//
// Pin levels are read from and written to the component's inline storage.
// The socket records whether any write changed a level.
//
type Socket struct {
	nets    *Nets
	comp    *Component
	changed bool
}

// Component returns the component mounted in the socket.
//
func (s *Socket) Component() *Component { return s.comp }

// Get returns the level of pin n.
//
func (s *Socket) Get(n int) bool {
	return s.comp.Pins[n]
}

// Set sets the level of pin n.
//
func (s *Socket) Set(n int, v bool) {
	if s.comp.Pins[n] != v {
		s.comp.Pins[n] = v
		s.changed = true
	}
}

// Bus returns the levels of the given pins as an integer, pins[0] being the
// least significant bit.
//
func (s *Socket) Bus(pins ...int) uint8 {
	var v uint8
	for i, n := range pins {
		if s.comp.Pins[n] {
			v |= 1 << uint(i)
		}
	}
	return v
}

// SetBus sets the levels of the given pins from v, pins[0] being the least
// significant bit.
//
func (s *Socket) SetBus(v uint8, pins ...int) {
	for i, n := range pins {
		s.Set(n, v&(1<<uint(i)) != 0)
	}
}

// Grounded returns true if pin n is in a net that contains a ground
// component. A LOW level alone does not make a pin grounded.
//
func (s *Socket) Grounded(n int) bool {
	return s.nets.grounded(s.comp, n)
}
