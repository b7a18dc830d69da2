// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import (
	"fmt"
	"strings"
)

// Describe returns a text description of kind k: its title and pinout. ICs
// are drawn as a DIP package, pin 1 top left and numbering counterclockwise.
//
func Describe(k Kind) string {
	p := Spec(k)
	if p == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s): %s\n", p.Name, k, p.Title)
	if !k.IsIC() {
		for _, pin := range p.Pins {
			fmt.Fprintf(&b, "  %2d  %-4s %s\n", pin.Num, pin.Name, pin.Role)
		}
		return b.String()
	}

	w := 0
	for _, pin := range p.Pins {
		if len(pin.Name) > w {
			w = len(pin.Name)
		}
	}
	half := len(p.Pins) / 2
	fmt.Fprintf(&b, "%*s +--u--+\n", w+3, "")
	for i := 0; i < half; i++ {
		l, r := p.Pins[i], p.Pins[len(p.Pins)-1-i]
		fmt.Fprintf(&b, "%*s %2d|     |%-2d %s\n", w, l.Name, l.Num, r.Num, r.Name)
	}
	fmt.Fprintf(&b, "%*s +-----+\n", w+3, "")
	return b.String()
}
