// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies a component type. The set of kinds is closed.
//
type Kind int

// Supported component kinds.
//
const (
	AND7408    Kind = iota // 74LS08 quad 2-input AND gate
	CMP7485                // 74LS85 4-bit magnitude comparator
	DEC7447                // 74LS47 BCD to 7-segment decoder/driver
	CNT74193               // 74LS193 synchronous 4-bit up/down counter
	TIMER555               // NE555 timer
	Switch                 // SPST switch
	PushButton             // momentary push-button
	DIPSwitch              // 4 position DIP switch
	LED                    // light emitting diode
	Resistor               // resistor
	Capacitor              // capacitor
	Power                  // VCC rail
	Ground                 // GND rail
	SevenSeg               // seven-segment display
	kindCount
)

var kindNames = [kindCount]string{
	AND7408:    "7408",
	CMP7485:    "7485",
	DEC7447:    "7447",
	CNT74193:   "74193",
	TIMER555:   "555",
	Switch:     "switch",
	PushButton: "button",
	DIPSwitch:  "dip",
	LED:        "led",
	Resistor:   "resistor",
	Capacitor:  "capacitor",
	Power:      "vcc",
	Ground:     "gnd",
	SevenSeg:   "7seg",
}

// String returns the short name of the kind as used in circuit files.
//
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsIC returns true for integrated circuits, i.e. kinds with VCC and GND
// pins and a behavioral model.
//
func (k Kind) IsIC() bool { return k >= AND7408 && k <= TIMER555 }

// Kinds returns all supported kinds in catalog order.
//
func Kinds() []Kind {
	ks := make([]Kind, kindCount)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind returns the kind with the given short name. The lookup is case
// insensitive and also accepts the part name (e.g. "74LS08").
//
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if n == kn || n == strings.ToLower(catalog[k].Name) {
			return Kind(k), nil
		}
	}
	return 0, errors.Errorf("unknown component kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
//
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= kindCount {
		return nil, errors.Errorf("invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
