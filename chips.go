// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import "github.com/db47h/icsim/chiplib"

// 7408 gates: input a, input b, output.
var andGates = [4][3]int{{1, 2, 3}, {4, 5, 6}, {9, 10, 8}, {12, 13, 11}}

func evalAnd(s *Socket) {
	var a, b [4]bool
	for i, g := range andGates {
		a[i], b[i] = s.Get(g[0]), s.Get(g[1])
	}
	y := chiplib.QuadAnd(a, b)
	for i, g := range andGates {
		s.Set(g[2], y[i])
	}
}

// 7485 pins.
var (
	cmpA = []int{10, 12, 13, 15}
	cmpB = []int{9, 11, 14, 1}
)

const (
	cmpInLT = 2
	cmpInEQ = 3
	cmpInGT = 4
	cmpGT   = 5
	cmpEQ   = 6
	cmpLT   = 7
)

func evalComparator(s *Socket) {
	gt, eq, lt := chiplib.Compare4(s.Bus(cmpA...), s.Bus(cmpB...), chiplib.Cascade{
		LTGrounded: s.Grounded(cmpInLT),
		EQHigh:     s.Get(cmpInEQ),
		GTGrounded: s.Grounded(cmpInGT),
	})
	s.Set(cmpGT, gt)
	s.Set(cmpEQ, eq)
	s.Set(cmpLT, lt)
}

// 7447 pins. decSegs is in chiplib.Seg* bit order.
var (
	decBCD  = []int{7, 1, 2, 6}
	decSegs = [7]int{13, 12, 11, 10, 9, 15, 14}
)

const (
	decLT  = 3
	decBI  = 4
	decRBI = 5
)

func evalDecoder(s *Socket) {
	m := chiplib.DecodeBCD(s.Bus(decBCD...), s.Get(decLT), s.Get(decBI), s.Get(decRBI))
	for i, p := range decSegs {
		s.Set(p, m&(1<<uint(i)) != 0)
	}
}

// 74193 pins.
var (
	cntP = []int{15, 1, 10, 9}
	cntQ = []int{3, 2, 6, 7}
)

const (
	cntDown  = 4
	cntUp    = 5
	cntLoad  = 11
	cntCarry = 12
	cntBorr  = 13
	cntClear = 14
)

func counterInputs(c *Component) chiplib.CounterInputs {
	s := Socket{comp: c}
	return chiplib.CounterInputs{
		Up:    s.Get(cntUp),
		Down:  s.Get(cntDown),
		Load:  s.Get(cntLoad),
		Clear: s.Get(cntClear),
		Data:  s.Bus(cntP...),
	}
}

// evalCounter applies the level inputs to the counter state of the current
// pass. Clock edges are applied once per pass by Nets.clock.
//
func evalCounter(s *Socket) {
	c := s.comp
	in := counterInputs(c)
	c.cwork = c.cbase
	c.cwork.Level(in)
	q, co, bo := c.cwork.Outputs(in)
	s.SetBus(q, cntQ...)
	s.Set(cntCarry, co)
	s.Set(cntBorr, bo)
}

// 555 pins.
const (
	tmrTrig  = 2
	tmrOut   = 3
	tmrReset = 4
	tmrThr   = 6
	tmrDis   = 7
)

func evalTimer(s *Socket) {
	l := &s.comp.lwork
	l.Update(s.Get(tmrReset), s.Get(tmrTrig), s.Get(tmrThr))
	s.Set(tmrOut, l.Out)
	s.Set(tmrDis, l.Discharge)
}
