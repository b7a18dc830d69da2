// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import "github.com/pkg/errors"

// PinRole classifies a component terminal. It governs who writes the pin
// level during a simulation pass: Input, PowerPin and Passive pins are written
// from the net they belong to, Output pins only by the component's
// behavioral model.
//
type PinRole uint8

// Pin roles.
//
const (
	Input PinRole = iota
	Output
	PowerPin
	Passive
)

func (r PinRole) String() string {
	switch r {
	case Input:
		return "input"
	case Output:
		return "output"
	case PowerPin:
		return "power"
	case Passive:
		return "passive"
	}
	return "unknown"
}

// PinSpec describes a single pin of a part.
//
type PinSpec struct {
	Num  int
	Name string
	Role PinRole
}

// An EvalFn computes the outputs of a powered IC. It reads input levels and
// writes output levels through the socket. EvalFns must only depend on the
// socket: pin levels, grounding of pins and the component's sequential state.
//
type EvalFn func(s *Socket)

// A PartSpec is the blueprint of a component kind: its pin roster and, for
// ICs, its power pins and behavioral model.
//
// Pins are numbered from 1 and Pins[i].Num == i+1 for all parts in the
// catalog.
//
type PartSpec struct {
	// Part name as printed on the package.
	Name string
	// Human readable description.
	Title string
	// Pin roster.
	Pins []PinSpec
	// VCC and GND pin numbers. Zero for non IC parts.
	VCC, GND int
	// Behavioral model. Nil for non IC parts.
	Eval EvalFn
}

// PinCount returns the number of pins of the part.
//
func (p *PartSpec) PinCount() int { return len(p.Pins) }

// Role returns the role of pin n. It panics if n is out of range.
//
func (p *PartSpec) Role(n int) PinRole {
	return p.Pins[n-1].Role
}

// LookupPin returns the number of the pin with the given name.
//
func (p *PartSpec) LookupPin(name string) (int, bool) {
	for _, pin := range p.Pins {
		if pin.Name == name {
			return pin.Num, true
		}
	}
	return 0, false
}

// Pin returns the number of the pin with the given name.
// This function panics if the pin does not exist.
//
func (p *PartSpec) Pin(name string) int {
	n, ok := p.LookupPin(name)
	if !ok {
		panic(errors.Errorf("pin %s does not exist on %s", name, p.Name))
	}
	return n
}

// Spec returns the catalog entry for kind k. It returns nil if k is not a
// valid kind.
//
func Spec(k Kind) *PartSpec {
	if k < 0 || k >= kindCount {
		return nil
	}
	return catalog[k]
}

func pins(role PinRole, names ...string) []PinSpec {
	ps := make([]PinSpec, len(names))
	for i, n := range names {
		ps[i] = PinSpec{Num: i + 1, Name: n, Role: role}
	}
	return ps
}

// dip builds a DIP pin roster from "name:role" pairs in pin order.
func dip(defs ...string) []PinSpec {
	ps := make([]PinSpec, len(defs))
	for i, d := range defs {
		var role PinRole
		name := d
		for j := len(d) - 1; j >= 0; j-- {
			if d[j] == ':' {
				name = d[:j]
				switch d[j+1:] {
				case "i":
					role = Input
				case "o":
					role = Output
				case "p":
					role = PowerPin
				default:
					panic("bad pin role in " + d)
				}
				break
			}
		}
		ps[i] = PinSpec{Num: i + 1, Name: name, Role: role}
	}
	return ps
}

var catalog = [kindCount]*PartSpec{
	AND7408: {
		Name:  "74LS08",
		Title: "Quad 2-Input AND Gate",
		Pins: dip("1A:i", "1B:i", "1Y:o", "2A:i", "2B:i", "2Y:o", "GND:p",
			"3Y:o", "3A:i", "3B:i", "4Y:o", "4A:i", "4B:i", "VCC:p"),
		VCC: 14, GND: 7,
	},
	CMP7485: {
		Name:  "74LS85",
		Title: "4-Bit Magnitude Comparator",
		Pins: dip("B3:i", "IA<B:i", "IA=B:i", "IA>B:i", "OA>B:o", "OA=B:o", "OA<B:o", "GND:p",
			"B0:i", "A0:i", "B1:i", "A1:i", "A2:i", "B2:i", "A3:i", "VCC:p"),
		VCC: 16, GND: 8,
	},
	DEC7447: {
		Name:  "74LS47",
		Title: "BCD to 7-Segment Decoder/Driver (active low outputs)",
		Pins: dip("B:i", "C:i", "LT:i", "BI:i", "RBI:i", "D:i", "A:i", "GND:p",
			"e:o", "d:o", "c:o", "b:o", "a:o", "g:o", "f:o", "VCC:p"),
		VCC: 16, GND: 8,
	},
	CNT74193: {
		Name:  "74LS193",
		Title: "Synchronous 4-Bit Up/Down Binary Counter",
		Pins: dip("P1:i", "Q1:o", "Q0:o", "DOWN:i", "UP:i", "Q2:o", "Q3:o", "GND:p",
			"P3:i", "P2:i", "LOAD:i", "CO:o", "BO:o", "CLR:i", "P0:i", "VCC:p"),
		VCC: 16, GND: 8,
	},
	TIMER555: {
		Name:  "NE555",
		Title: "Timer",
		Pins:  dip("GND:p", "TRIG:i", "OUT:o", "RESET:i", "CTRL:i", "THR:i", "DIS:o", "VCC:p"),
		VCC:   8, GND: 1,
	},
	Switch:     {Name: "SW", Title: "SPST Switch", Pins: pins(Passive, "1", "2")},
	PushButton: {Name: "BTN", Title: "Momentary Push-Button", Pins: pins(Passive, "1", "2")},
	DIPSwitch:  {Name: "DIP4", Title: "4 Position DIP Switch", Pins: pins(Passive, "1", "2", "3", "4", "5", "6", "7", "8")},
	LED:        {Name: "LED", Title: "Light Emitting Diode", Pins: pins(Passive, "A", "K")},
	Resistor:   {Name: "R", Title: "Resistor", Pins: pins(Passive, "1", "2")},
	Capacitor:  {Name: "C", Title: "Capacitor", Pins: pins(Passive, "1", "2")},
	Power:      {Name: "VCC", Title: "Power Source", Pins: pins(Passive, "VCC")},
	Ground:     {Name: "GND", Title: "Ground", Pins: pins(Passive, "GND")},
	SevenSeg: {
		Name:  "7SEG",
		Title: "Seven-Segment Display",
		Pins:  pins(Input, "a", "b", "c", "d", "e", "f", "g", "dp", "COM"),
	},
}

func init() {
	catalog[AND7408].Eval = evalAnd
	catalog[CMP7485].Eval = evalComparator
	catalog[DEC7447].Eval = evalDecoder
	catalog[CNT74193].Eval = evalCounter
	catalog[TIMER555].Eval = evalTimer
}
