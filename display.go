// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import "github.com/db47h/icsim/chiplib"

const segCOM = 9

// SegDP is the bit of Component.Segments for the decimal point. The other bits
// are chiplib.SegA to chiplib.SegG.
//
const SegDP uint8 = 1 << 7

// decodeDisplays computes the lit segments and decimal point of
// seven-segment displays.
//
// A common cathode display lights a segment whose pin is HIGH when COM is
// grounded. A common anode display lights a wired segment whose pin is LOW
// when COM is powered.
//
func (n *Nets) decodeDisplays() {
	for _, cp := range n.c.comps {
		if cp.Kind != SevenSeg {
			continue
		}
		var m uint8
		if cp.CommonAnode {
			if com := n.netOf(cp, segCOM); cp.Pins[segCOM] && n.HasKind(com, Power) {
				for i := 0; i < 8; i++ {
					if n.netOf(cp, i+1) >= 0 && !cp.Pins[i+1] {
						m |= 1 << uint(i)
					}
				}
			}
		} else if n.grounded(cp, segCOM) {
			for i := 0; i < 8; i++ {
				if cp.Pins[i+1] {
					m |= 1 << uint(i)
				}
			}
		}
		cp.Segments = m
		cp.Digit = chiplib.Digit(m)
	}
}
