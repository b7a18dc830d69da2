// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

// QuadAnd models a 7408: four independent 2-input AND gates.
//
//	Inputs: a[4], b[4]
//	Outputs: y[4]
//	Function: for i := range y { y[i] = a[i] && b[i] }
//
func QuadAnd(a, b [4]bool) (y [4]bool) {
	for i := range y {
		y[i] = a[i] && b[i]
	}
	return y
}
