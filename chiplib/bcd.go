// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

// Segment bits in a segment mask.
//
const (
	SegA uint8 = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG

	SegAll = SegA | SegB | SegC | SegD | SegE | SegF | SegG
)

// lit segments for BCD codes 0-15. Codes 10-15 are blanked.
var bcdSegments = [16]uint8{
	SegA | SegB | SegC | SegD | SegE | SegF,        // 0
	SegB | SegC,                                    // 1
	SegA | SegB | SegD | SegE | SegG,               // 2
	SegA | SegB | SegC | SegD | SegG,               // 3
	SegB | SegC | SegF | SegG,                      // 4
	SegA | SegC | SegD | SegF | SegG,               // 5
	SegA | SegC | SegD | SegE | SegF | SegG,        // 6
	SegA | SegB | SegC,                             // 7
	SegAll,                                         // 8
	SegA | SegB | SegC | SegD | SegF | SegG,        // 9
}

// Segments returns the mask of lit segments for digit d. It returns 0 for
// codes greater than 9.
//
func Segments(d uint8) uint8 {
	return bcdSegments[d&0xf]
}

// Digit returns the decimal digit displayed by the given mask of lit
// segments, or -1 if the pattern is not a digit. A blank display is -1.
//
func Digit(lit uint8) int {
	lit &= SegAll
	if lit == 0 {
		return -1
	}
	for d := 0; d < 10; d++ {
		if bcdSegments[d] == lit {
			return d
		}
	}
	return -1
}

// DecodeBCD models a 7447 BCD to 7-segment decoder/driver. Its outputs are
// active low: the returned value is the mask of output pins driven high,
// that is the complement of the lit segments.
//
//	Inputs: bcd[4], lt, bi, rbi (all control inputs are active low)
//	Outputs: a..g
//	Function: bi == 0            => all segments lit (all outputs low)
//	          lt == 0            => all segments dark (all outputs high)
//	          rbi == 0, bcd == 0 => all segments dark
//	          otherwise          => ^Segments(bcd)
//
func DecodeBCD(bcd uint8, lt, bi, rbi bool) uint8 {
	switch {
	case !bi:
		return 0
	case !lt:
		return SegAll
	case !rbi && bcd&0xf == 0:
		return SegAll
	}
	return ^Segments(bcd) & SegAll
}
