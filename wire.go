// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import "strconv"

// An Endpoint designates a pin of a component in a circuit.
//
type Endpoint struct {
	Comp string
	Pin  int
}

// String returns the endpoint in "comp.pin" form.
//
func (e Endpoint) String() string {
	return e.Comp + "." + strconv.Itoa(e.Pin)
}

// Point is a waypoint of a wire drawing.
//
type Point struct {
	X, Y float64
}

// A Wire connects two endpoints.
//
// Active is derived by Circuit.Simulate: it is true if either endpoint is HIGH
// or belongs to a power source.
//
type Wire struct {
	ID        string
	From, To  Endpoint
	Waypoints []Point

	Active bool
}

// joins returns true if w connects a and b in either direction.
//
func (w *Wire) joins(a, b Endpoint) bool {
	return w.From == a && w.To == b || w.From == b && w.To == a
}

func (w *Wire) touches(comp string) bool {
	return w.From.Comp == comp || w.To.Comp == comp
}
