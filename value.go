// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var siPrefixes = []struct {
	p string
	m float64
}{
	{"meg", 1e6}, // before "m"
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
	{"K", 1e3},
	{"m", 1e-3},
	{"u", 1e-6},
	{"µ", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
}

// ParseValue parses a component value with an optional SI prefix and unit,
// like "330", "4.7k", "1meg", "10u", "10µF" or "220Ω". "M" means mega and "m"
// milli. The "meg" prefix is case insensitive.
//
func ParseValue(s string) (float64, error) {
	v := strings.TrimSpace(s)
	for _, u := range []string{"Ω", "ohm", "ohms", "F", "f"} {
		if strings.HasSuffix(v, u) && len(v) > len(u) {
			v = strings.TrimSuffix(v, u)
			break
		}
	}
	m := 1.0
	lv := strings.ToLower(v)
	for _, p := range siPrefixes {
		if p.p == "meg" && strings.HasSuffix(lv, "meg") || p.p != "meg" && strings.HasSuffix(v, p.p) {
			v, m = v[:len(v)-len(p.p)], p.m
			break
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Errorf("invalid value %q", s)
	}
	return f * m, nil
}

// FormatValue formats v with an SI prefix followed by unit, like "4.7kΩ".
//
func FormatValue(v float64, unit string) string {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64) + unit
	}
	prefixes := []struct {
		p string
		m float64
	}{{"G", 1e9}, {"M", 1e6}, {"k", 1e3}, {"", 1}, {"m", 1e-3}, {"µ", 1e-6}, {"n", 1e-9}, {"p", 1e-12}}
	a := math.Abs(v)
	for _, p := range prefixes {
		if a >= p.m*0.9999999 {
			return strconv.FormatFloat(v/p.m, 'g', 4, 64) + p.p + unit
		}
	}
	return strconv.FormatFloat(v, 'g', 4, 64) + unit
}
