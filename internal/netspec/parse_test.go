// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netspec_test

import (
	"testing"

	"github.com/db47h/icsim/internal/netspec"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	data := []struct {
		name string
		in   string
		out  []netspec.Chain
		err  string
	}{
		{"empty", "  ", nil, ""},
		{"single", "sw1.2=u1.1", []netspec.Chain{
			{{"sw1", "2", 0}, {"u1", "1", 6}},
		}, ""},
		{"list", "vcc.1=sw1.1, u1.3=r1.1", []netspec.Chain{
			{{"vcc", "1", 0}, {"sw1", "1", 6}},
			{{"u1", "3", 13}, {"r1", "1", 18}},
		}, ""},
		{"chain", "a.1 = b.2 = c.3", []netspec.Chain{
			{{"a", "1", 0}, {"b", "2", 6}, {"c", "3", 12}},
		}, ""},
		{"names", "7408-1.VCC=u2.IA<B", []netspec.Chain{
			{{"7408-1", "VCC", 0}, {"u2", "IA<B", 11}},
		}, ""},
		{"lone_pin", "a.1", nil, `in "a.1" at pos 4: expected '=' after a.1`},
		{"missing_dot", "a1=b.2", nil, `in "a1=b.2" at pos 3: expected '.' after component id`},
		{"missing_pin", "a.=b.2", nil, `in "a.=b.2" at pos 3: expected pin number or name`},
		{"trailing_comma", "a.1=b.2,", nil, `in "a.1=b.2," at pos 9: expected component id`},
		{"garbage", "a.1=b.2 ;", nil, `in "a.1=b.2 ;" at pos 9: unexpected invalid character ;`},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			out, err := netspec.Parse(d.in)
			if d.err != "" {
				assert.EqualError(t, err, d.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, d.out, out)
		})
	}
}

func TestRef_Num(t *testing.T) {
	n, ok := netspec.Ref{Comp: "u1", Pin: "14"}.Num()
	assert.True(t, ok)
	assert.Equal(t, 14, n)
	_, ok = netspec.Ref{Comp: "u1", Pin: "VCC"}.Num()
	assert.False(t, ok)
}

func TestParseRef(t *testing.T) {
	r, err := netspec.ParseRef(" d1.A ")
	assert.NoError(t, err)
	assert.Equal(t, netspec.Ref{Comp: "d1", Pin: "A", Pos: 1}, r)
	_, err = netspec.ParseRef("d1.A=u1.3")
	assert.EqualError(t, err, `in "d1.A=u1.3" at pos 5: unexpected '='`)
}
