// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

// Latch is the persistent state of a 555 timer reduced to its bistable
// behavior: the output level and the discharge transistor.
//
type Latch struct {
	Out       bool
	Discharge bool
}

// Update applies the input levels to the latch. reset and trigger are active
// low.
//
//	reset == 0    => out = 0, dis = 0
//	trigger == 0  => out = 1, dis = 0
//	threshold     => out = 0, dis = 1
//	otherwise     => hold
//
func (l *Latch) Update(reset, trigger, threshold bool) {
	switch {
	case !reset:
		l.Out, l.Discharge = false, false
	case !trigger:
		l.Out, l.Discharge = true, false
	case threshold:
		l.Out, l.Discharge = false, true
	}
}
