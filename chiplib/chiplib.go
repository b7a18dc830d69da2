// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chiplib provides the behavioral models of the integrated circuits
// supported by icsim.
//
// Models are pure functions of pin levels. The two sequential chips (74193
// counter and 555 timer) carry their state in plain value types owned by the
// caller, so that a simulator can decide when state is read and committed.
//
package chiplib

// Nibble packs four levels into a 4 bits value. b[0] is the lsb.
//
func Nibble(b [4]bool) uint8 {
	var n uint8
	for i, v := range b {
		if v {
			n |= 1 << uint(i)
		}
	}
	return n
}

// Bits unpacks the 4 lower bits of n. The lsb ends up in b[0].
//
func Bits(n uint8) (b [4]bool) {
	for i := range b {
		b[i] = n&(1<<uint(i)) != 0
	}
	return b
}
