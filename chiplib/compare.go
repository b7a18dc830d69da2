// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

// Cascade holds the state of the cascade inputs of a 7485 as seen by the
// simulator. LTGrounded and GTGrounded report whether the IA<B and IA>B pins
// are tied to ground, EQHigh whether IA=B reads high.
//
type Cascade struct {
	LTGrounded bool
	EQHigh     bool
	GTGrounded bool
}

// Standalone returns true if the cascade inputs are wired for a single,
// non-chained comparator.
//
func (c Cascade) Standalone() bool {
	return c.LTGrounded && c.EQHigh && c.GTGrounded
}

// Compare4 models a 7485 4 bits magnitude comparator in strict mode.
//
//	Inputs: a[4], b[4], cascade
//	Outputs: gt, eq, lt
//	Function: exactly one of gt, eq, lt is set, or none if the cascade
//	          inputs are not wired for standalone use.
//
func Compare4(a, b uint8, c Cascade) (gt, eq, lt bool) {
	if !c.Standalone() {
		return false, false, false
	}
	for bit := 3; bit >= 0; bit-- {
		m := uint8(1) << uint(bit)
		va, vb := a&m != 0, b&m != 0
		switch {
		case va && !vb:
			return true, false, false
		case !va && vb:
			return false, false, true
		}
	}
	return false, true, false
}
