// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

// CounterInputs are the input levels of a 74193 synchronous up/down counter.
//
type CounterInputs struct {
	Up    bool  // count up clock
	Down  bool  // count down clock
	Load  bool  // parallel load, active low
	Clear bool  // asynchronous clear, active high
	Data  uint8 // parallel data P0-P3
}

// Counter is the persistent state of a 74193.
//
// PrevUp and PrevDown are the clock levels sampled at the end of the previous
// simulation pass. Rising edges are detected against these samples, never
// against transient levels seen while a pass settles.
//
type Counter struct {
	Count    uint8
	PrevUp   bool
	PrevDown bool

	advanced bool
}

// Begin arms the counter for a new pass. A counter advances at most once
// between two calls to Begin.
//
func (c *Counter) Begin() {
	c.advanced = false
}

// Level applies the level sensitive inputs: clear, then load.
// It returns true if one of them is active.
//
func (c *Counter) Level(in CounterInputs) bool {
	switch {
	case in.Clear:
		c.Count = 0
	case !in.Load:
		c.Count = in.Data & 0xf
	default:
		return false
	}
	return true
}

// Clock applies a rising edge on the up or down clock lines, if any.
// It returns true if the count changed.
//
func (c *Counter) Clock(in CounterInputs) bool {
	if c.advanced || c.Level(in) {
		return false
	}
	up := in.Up && !c.PrevUp
	down := in.Down && !c.PrevDown
	switch {
	case up && !down:
		c.Count = (c.Count + 1) & 0xf
	case down && !up:
		c.Count = (c.Count - 1) & 0xf
	default:
		return false
	}
	c.advanced = true
	return true
}

// Sample records the clock levels for edge detection in the next pass.
//
func (c *Counter) Sample(in CounterInputs) {
	c.PrevUp, c.PrevDown = in.Up, in.Down
}

// Outputs returns the counter outputs for the given input levels.
// Carry and borrow are active low.
//
//	Outputs: q[4], co, bo
//	Function: co = !(q == 15 && !up)
//	          bo = !(q == 0 && !down)
//
func (c *Counter) Outputs(in CounterInputs) (q uint8, co, bo bool) {
	q = c.Count & 0xf
	co = !(q == 15 && !in.Up)
	bo = !(q == 0 && !in.Down)
	return q, co, bo
}
