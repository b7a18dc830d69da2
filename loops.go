// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// loops returns the feedback loops of the IC dependency graph. IC u depends on
// IC v if an output of v shares a net with an input of u. Each loop is
// reported as the sorted ids of its members. Loops are sorted by their first
// member.
//
func (n *Nets) loops() [][]string {
	g := simple.NewDirectedGraph()
	self := make(map[int]bool)
	for i, cp := range n.c.comps {
		if cp.Kind.IsIC() {
			g.AddNode(simple.Node(i))
		}
	}
	for _, ms := range n.nets {
		var drivers, readers []int
		for _, m := range ms {
			cp := n.c.comps[m.comp]
			if !cp.Kind.IsIC() {
				continue
			}
			switch cp.role(m.pin) {
			case Output:
				drivers = append(drivers, m.comp)
			case Input:
				readers = append(readers, m.comp)
			}
		}
		for _, d := range drivers {
			for _, r := range readers {
				if d == r {
					self[d] = true
					continue
				}
				g.SetEdge(g.NewEdge(simple.Node(d), simple.Node(r)))
			}
		}
	}

	var ls [][]string
	for _, scc := range topo.TarjanSCC(g) {
		if len(scc) == 1 && !self[int(scc[0].ID())] {
			continue
		}
		l := make([]string, len(scc))
		for i, v := range scc {
			l[i] = n.c.comps[v.ID()].ID
		}
		sort.Strings(l)
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i][0] < ls[j][0] })
	return ls
}
