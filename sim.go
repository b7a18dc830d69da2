// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import (
	"io/ioutil"
	"log"
)

// DefaultMaxIterations is the default cap on resolve/evaluate rounds per
// settling phase.
//
const DefaultMaxIterations = 20

// Result is the outcome of a simulation pass.
//
type Result struct {
	// Iterations is the number of resolve/evaluate rounds run.
	Iterations int
	// Converged is false if a settling phase hit the iteration cap. Pin
	// levels are then those found at the cutoff.
	Converged bool
	// Loops lists the feedback loops between ICs, as sorted component ids.
	Loops [][]string
	// Shorts lists the nets that contain both a power source and a ground.
	Shorts [][]Endpoint
}

type simConfig struct {
	maxIter int
	params  Params
	log     *log.Logger
}

// An Option configures a simulation pass.
//
type Option func(*simConfig)

// WithMaxIterations sets the iteration cap. Values below 1 are ignored.
//
func WithMaxIterations(n int) Option {
	return func(c *simConfig) {
		if n >= 1 {
			c.maxIter = n
		}
	}
}

// WithParams sets the constants of the LED current approximation.
//
func WithParams(p Params) Option {
	return func(c *simConfig) { c.params = p }
}

// WithLogger sets a logger for simulation diagnostics.
//
func WithLogger(l *log.Logger) Option {
	return func(c *simConfig) {
		if l != nil {
			c.log = l
		}
	}
}

var discard = log.New(ioutil.Discard, "", 0)

// Simulate runs a full simulation pass over the circuit.
//
// Nets are rebuilt, all non source pins are reset LOW, then rounds of net
// resolution and IC evaluation run until a round changes nothing or the
// iteration cap is hit. Counters then sample their clock lines once; if any
// of them advanced, the circuit is settled again. Sequential state is
// committed at the very end, followed by the LED, display and wire updates.
//
// Simulate is idempotent: a second call without intervening edits yields the
// same pin levels, flags and sequential state.
//
func (c *Circuit) Simulate(opts ...Option) Result {
	cfg := simConfig{maxIter: DefaultMaxIterations, params: DefaultParams(), log: discard}
	for _, o := range opts {
		o(&cfg)
	}

	n := BuildNets(c)
	n.reset()
	n.begin()

	var r Result
	r.Iterations, r.Converged = n.settle(cfg.maxIter)
	if n.clock() {
		it, ok := n.settle(cfg.maxIter)
		r.Iterations += it
		r.Converged = r.Converged && ok
	}
	n.commit()

	n.analyzeLEDs(cfg.params)
	n.decodeDisplays()
	n.updateWires()
	r.Shorts = n.shorts()
	r.Loops = n.loops()

	if !r.Converged {
		cfg.log.Printf("simulation did not settle after %d iterations", r.Iterations)
		for _, l := range r.Loops {
			cfg.log.Printf("feedback loop: %v", l)
		}
	}
	for _, s := range r.Shorts {
		cfg.log.Printf("short circuit: %v", s)
	}
	return r
}

func (n *Nets) reset() {
	for _, cp := range n.c.comps {
		switch {
		case cp.Kind == Power:
			cp.Pins[1] = true
		case cp.Kind.IsIC():
			for _, p := range cp.Spec().Pins {
				if p.Role != PowerPin || n.netOf(cp, p.Num) < 0 {
					cp.Pins[p.Num] = false
				}
			}
		default:
			for i := range cp.Pins {
				cp.Pins[i] = false
			}
		}
	}
}

// begin loads the committed sequential state into the per pass state.
//
func (n *Nets) begin() {
	for _, cp := range n.c.comps {
		switch cp.Kind {
		case CNT74193:
			cp.cbase = cp.counter
			cp.cbase.Begin()
			cp.cwork = cp.cbase
		case TIMER555:
			cp.lwork = cp.latch
		}
	}
}

// settle alternates net resolution and IC evaluation until nothing changes
// or limit rounds have run.
//
func (n *Nets) settle(limit int) (iterations int, converged bool) {
	for i := 0; i < limit; i++ {
		changed := false
		for j := range n.nets {
			if _, ch := n.Resolve(j); ch {
				changed = true
			}
		}
		for _, cp := range n.c.comps {
			if cp.Kind.IsIC() && n.evaluate(cp) {
				changed = true
			}
		}
		if !changed {
			return i + 1, true
		}
	}
	return limit, false
}

// clock applies clock edges to powered counters. It returns true if any
// counter advanced.
//
func (n *Nets) clock() bool {
	adv := false
	for _, cp := range n.c.comps {
		if cp.Kind != CNT74193 || !cp.Powered {
			continue
		}
		if cp.cbase.Clock(counterInputs(cp)) {
			adv = true
		}
	}
	return adv
}

// commit writes back sequential state and records the clock samples used for
// edge detection in the next pass.
//
func (n *Nets) commit() {
	for _, cp := range n.c.comps {
		switch cp.Kind {
		case CNT74193:
			if cp.Powered {
				cp.counter.Count = cp.cwork.Count
			}
			cp.counter.Sample(counterInputs(cp))
		case TIMER555:
			if cp.Powered {
				cp.latch = cp.lwork
			}
		}
	}
}

func (n *Nets) updateWires() {
	c := n.c
	high := func(e Endpoint) bool {
		cp := c.index[e.Comp]
		return cp.Kind == Power || cp.Pins[e.Pin]
	}
	for _, w := range c.wires {
		w.Active = high(w.From) || high(w.To)
	}
}

func (n *Nets) shorts() [][]Endpoint {
	var s [][]Endpoint
	for i := range n.nets {
		if n.HasKind(i, Power) && n.HasKind(i, Ground) {
			s = append(s, n.Net(i))
		}
	}
	return s
}
