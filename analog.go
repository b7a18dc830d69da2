// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package icsim

import "math"

// Params are the constants of the LED current approximation.
//
type Params struct {
	SupplyVolts  float64 // supply voltage
	LEDDropVolts float64 // LED forward voltage
	MaxSafeAmps  float64 // LEDs burn above this current
	NominalAmps  float64 // current at full brightness
	MinGlow      float64 // brightness floor for any non-zero current
	ICOutputOhms float64 // resistance assumed for an IC output driving a LED
}

// DefaultParams returns the parameters for a 5V supply and standard 20mA
// LEDs.
//
func DefaultParams() Params {
	return Params{
		SupplyVolts:  5,
		LEDDropVolts: 2,
		MaxSafeAmps:  0.030,
		NominalAmps:  0.020,
		MinGlow:      0.15,
		ICOutputOhms: 150,
	}
}

// Current returns the LED current through resistance r.
//
func (p *Params) Current(r float64) float64 {
	if math.IsInf(r, 1) {
		return 0
	}
	return (p.SupplyVolts - p.LEDDropVolts) / math.Max(1, r)
}

// Brightness maps a safe LED current to a brightness in [MinGlow, 1].
// It returns 0 for a zero current.
//
func (p *Params) Brightness(i float64) float64 {
	if i <= 0 {
		return 0
	}
	b := math.Sqrt(i / p.NominalAmps)
	return math.Max(p.MinGlow, math.Min(1, b))
}

const (
	ledAnode   = 1
	ledCathode = 2
)

// resistance estimates the resistance in series with a LED.
//
//	resistor in the anode or cathode net => smallest resistor value
//	power source in the anode net        => 0
//	powered IC output in the anode net   => p.ICOutputOhms
//	otherwise                            => +Inf
//
func (n *Nets) resistance(led *Component, p *Params) float64 {
	a, k := n.netOf(led, ledAnode), n.netOf(led, ledCathode)
	r := math.Inf(1)
	for _, ni := range [2]int{a, k} {
		if ni < 0 {
			continue
		}
		for _, m := range n.nets[ni] {
			if cp := n.c.comps[m.comp]; cp.Kind == Resistor {
				r = math.Min(r, cp.Ohms)
			}
		}
	}
	if !math.IsInf(r, 1) {
		return r
	}
	if a < 0 {
		return r
	}
	if n.HasKind(a, Power) {
		return 0
	}
	for _, m := range n.nets[a] {
		if cp := n.c.comps[m.comp]; cp.Kind.IsIC() && cp.Powered && cp.role(m.pin) == Output && cp.Pins[m.pin] {
			return p.ICOutputOhms
		}
	}
	return r
}

// analyzeLEDs computes the current, brightness and burn state of every LED.
// A LED is driven if its anode is HIGH and its cathode is not.
//
func (n *Nets) analyzeLEDs(p Params) {
	for _, cp := range n.c.comps {
		if cp.Kind != LED {
			continue
		}
		cp.Lit, cp.Burned, cp.Brightness, cp.Current = false, false, 0, 0
		if !cp.Pins[ledAnode] || cp.Pins[ledCathode] {
			continue
		}
		i := p.Current(n.resistance(cp, &p))
		cp.Current = i
		if i > p.MaxSafeAmps {
			cp.Burned = true
			continue
		}
		cp.Brightness = p.Brightness(i)
		cp.Lit = cp.Brightness > 0
	}
}
