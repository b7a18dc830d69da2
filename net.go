// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

// pinRef is a pin of a component designated by its index in the circuit.
//
type pinRef struct {
	comp int
	pin  int
}

// Nets is the partition of a circuit's connected pins into nets: sets of pins
// that carry the same level. Pins that are neither wired nor bridged are not
// part of any net.
//
// Nets are derived from the wires and the bridge state of passive components
// and must be rebuilt whenever either changes.
//
type Nets struct {
	c    *Circuit
	base []int      // per component: dense id of pin 1
	of   []int      // per dense id: net index or -1
	nets [][]pinRef // members of each net
}

// BuildNets computes the nets of c.
//
// Wires join their endpoints. Resistors and capacitors always join their two
// pins, closed switches and pressed push-buttons join pins 1 and 2, and every
// ON position i (from 0) of a DIP switch joins pin i+1 with pin 8-i.
//
func BuildNets(c *Circuit) *Nets {
	n := &Nets{c: c, base: make([]int, len(c.comps))}
	count := 0
	for i, cp := range c.comps {
		n.base[i] = count
		count += len(cp.Pins) - 1
	}
	d := newDSU(count)
	linked := make([]bool, count)
	join := func(a, b int) {
		d.union(a, b)
		linked[a], linked[b] = true, true
	}

	for _, w := range c.wires {
		a, b := c.index[w.From.Comp], c.index[w.To.Comp]
		join(n.id(a.idx, w.From.Pin), n.id(b.idx, w.To.Pin))
	}
	for i, cp := range c.comps {
		switch cp.Kind {
		case Resistor, Capacitor, Switch, PushButton:
			if cp.conducts(1, 2) {
				join(n.id(i, 1), n.id(i, 2))
			}
		case DIPSwitch:
			for p := 1; p <= 4; p++ {
				if cp.conducts(p, 9-p) {
					join(n.id(i, p), n.id(i, 9-p))
				}
			}
		}
	}

	n.of = make([]int, count)
	roots := make(map[int]int)
	for i, cp := range c.comps {
		for p := 1; p < len(cp.Pins); p++ {
			id := n.id(i, p)
			if !linked[id] {
				n.of[id] = -1
				continue
			}
			r := d.find(id)
			ni, ok := roots[r]
			if !ok {
				ni = len(n.nets)
				roots[r] = ni
				n.nets = append(n.nets, nil)
			}
			n.of[id] = ni
			n.nets[ni] = append(n.nets[ni], pinRef{i, p})
		}
	}
	return n
}

func (n *Nets) id(comp, pin int) int {
	return n.base[comp] + pin - 1
}

// Len returns the number of nets.
//
func (n *Nets) Len() int { return len(n.nets) }

// Net returns the members of net i.
//
func (n *Nets) Net(i int) []Endpoint {
	ms := n.nets[i]
	eps := make([]Endpoint, len(ms))
	for j, m := range ms {
		eps[j] = Endpoint{n.c.comps[m.comp].ID, m.pin}
	}
	return eps
}

// Of returns the index of the net e belongs to, or -1 if e is not connected.
//
func (n *Nets) Of(e Endpoint) int {
	cp := n.c.index[e.Comp]
	if cp == nil || cp.idx >= len(n.base) || e.Pin < 1 || e.Pin >= len(cp.Pins) {
		return -1
	}
	return n.of[n.id(cp.idx, e.Pin)]
}

func (n *Nets) netOf(comp *Component, pin int) int {
	return n.of[n.id(comp.idx, pin)]
}

// HasKind returns true if net i contains a pin of a component of kind k.
//
func (n *Nets) HasKind(i int, k Kind) bool {
	if i < 0 {
		return false
	}
	for _, m := range n.nets[i] {
		if n.c.comps[m.comp].Kind == k {
			return true
		}
	}
	return false
}

// grounded returns true if the given pin is wired to a ground component.
//
func (n *Nets) grounded(comp *Component, pin int) bool {
	return n.HasKind(n.netOf(comp, pin), Ground)
}
