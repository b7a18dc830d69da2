// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package ictest provides utility functions for testing chips.
//
package ictest

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/db47h/icsim"
	"github.com/pkg/errors"
)

// Component ids used by a Bench.
//
const (
	VCC  = "vcc"
	GND  = "gnd"
	Chip = "u1"
)

// A Bench is a breadboard with a power source, a ground and a powered chip.
// Chip pins can be driven by switches, tied to VCC or grounded.
//
type Bench struct {
	C    *icsim.Circuit
	Chip *icsim.Component
	Opts []icsim.Option

	sw map[int]string
}

// NewBench returns a bench for a chip of kind k with its VCC and GND pins
// wired.
//
func NewBench(k icsim.Kind, opts ...icsim.Option) (*Bench, error) {
	if !k.IsIC() {
		return nil, errors.Errorf("%s is not a chip", k)
	}
	c := icsim.New()
	b := &Bench{C: c, Opts: opts, sw: make(map[int]string)}
	for _, p := range []struct {
		k  icsim.Kind
		id string
	}{{icsim.Power, VCC}, {icsim.Ground, GND}, {k, Chip}} {
		cp, err := c.Add(p.k, p.id)
		if err != nil {
			return nil, err
		}
		b.Chip = cp
	}
	spec := b.Chip.Spec()
	if err := b.Tie(spec.VCC); err != nil {
		return nil, err
	}
	if err := b.Ground(spec.GND); err != nil {
		return nil, err
	}
	return b, nil
}

// MustBench is like NewBench but fails the test on error.
//
func MustBench(t testing.TB, k icsim.Kind, opts ...icsim.Option) *Bench {
	t.Helper()
	b, err := NewBench(k, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func (b *Bench) pin(n int) icsim.Endpoint { return icsim.Endpoint{Comp: Chip, Pin: n} }

// Drive connects a switch between VCC and each of the given chip pins. The
// switches start open.
//
func (b *Bench) Drive(pins ...int) error {
	for _, n := range pins {
		id := "sw" + strconv.Itoa(n)
		if _, err := b.C.Add(icsim.Switch, id); err != nil {
			return err
		}
		if _, err := b.C.Connect(icsim.Endpoint{Comp: VCC, Pin: 1}, icsim.Endpoint{Comp: id, Pin: 1}); err != nil {
			return err
		}
		if _, err := b.C.Connect(icsim.Endpoint{Comp: id, Pin: 2}, b.pin(n)); err != nil {
			return err
		}
		b.sw[n] = id
	}
	return nil
}

// Tie wires the given chip pins to VCC.
//
func (b *Bench) Tie(pins ...int) error {
	for _, n := range pins {
		if _, err := b.C.Connect(icsim.Endpoint{Comp: VCC, Pin: 1}, b.pin(n)); err != nil {
			return err
		}
	}
	return nil
}

// Ground wires the given chip pins to GND.
//
func (b *Bench) Ground(pins ...int) error {
	for _, n := range pins {
		if _, err := b.C.Connect(icsim.Endpoint{Comp: GND, Pin: 1}, b.pin(n)); err != nil {
			return err
		}
	}
	return nil
}

// Set closes (v == true) or opens the switch driving pin n.
//
func (b *Bench) Set(n int, v bool) error {
	id, ok := b.sw[n]
	if !ok {
		return errors.Errorf("pin %d is not driven", n)
	}
	return b.C.SetClosed(id, v)
}

// SetBus drives pins from the bits of v, pins[0] being the least significant
// bit.
//
func (b *Bench) SetBus(v uint, pins ...int) error {
	for i, n := range pins {
		if err := b.Set(n, v&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// Run runs a simulation pass.
//
func (b *Bench) Run() icsim.Result {
	return b.C.Simulate(b.Opts...)
}

// Get returns the level of chip pin n.
//
func (b *Bench) Get(n int) bool { return b.Chip.Pins[n] }

// Bus returns the levels of the given chip pins as an integer, pins[0] being
// the least significant bit.
//
func (b *Bench) Bus(pins ...int) uint {
	var v uint
	for i, n := range pins {
		if b.Chip.Pins[n] {
			v |= 1 << uint(i)
		}
	}
	return v
}

// CheckTable drives every combination of levels on the in pins and checks
// that the out pins match fn. in[0] and out[0] are the least significant bits.
// The in pins must be driven.
//
func CheckTable(t *testing.T, b *Bench, in, out []int, fn func(uint) uint) {
	t.Helper()
	for v := uint(0); v < 1<<uint(len(in)); v++ {
		if err := b.SetBus(v, in...); err != nil {
			t.Fatal(err)
		}
		if r := b.Run(); !r.Converged {
			t.Fatalf("input %s: simulation did not settle", bin(v, len(in)))
		}
		if got, want := b.Bus(out...), fn(v); got != want {
			t.Errorf("input %s: got output %s, expected %s", bin(v, len(in)), bin(got, len(out)), bin(want, len(out)))
		}
	}
}

func bin(v uint, n int) string {
	return fmt.Sprintf("%0*b", n, v)
}
