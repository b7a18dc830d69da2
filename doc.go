/*
Package icsim simulates breadboard logic circuits built from TTL chips,
switches, LEDs and passive components.

A Circuit holds components and the wires between their pins. After each edit,
Circuit.Simulate computes the level of every pin: pins joined by wires or by
conducting components (closed switches, resistors, DIP switch positions) form
nets, and rounds of net resolution and chip evaluation are run until the
circuit settles or an iteration cap is hit. Only HIGH and LOW are modeled; an
undriven pin reads LOW.

Chips only work when powered: their VCC pin must be HIGH and their GND pin must
be wired to a ground component. The 7485 comparator additionally requires its
cascade inputs to be wired for standalone use (IA<B and IA>B grounded, IA=B
HIGH). Unpowered chips drive all outputs LOW.

The 74193 counter and the 555 timer keep state across passes. A counter steps
at most once per pass, on a rising edge of its UP or DOWN line compared to the
level seen at the end of the previous pass.

LEDs get an estimated current from the smallest resistor in their nets. A LED
wired to a power source without a resistor burns.

	c := icsim.New()
	vcc, _ := c.Add(icsim.Power, "vcc")
	gnd, _ := c.Add(icsim.Ground, "gnd")
	r, _ := c.Add(icsim.Resistor, "r1")
	led, _ := c.Add(icsim.LED, "d1")
	c.Connect(icsim.Endpoint{vcc.ID, 1}, icsim.Endpoint{r.ID, 1})
	c.Connect(icsim.Endpoint{r.ID, 2}, icsim.Endpoint{led.ID, 1})
	c.Connect(icsim.Endpoint{led.ID, 2}, icsim.Endpoint{gnd.ID, 1})
	c.Simulate()
	fmt.Println(led.Lit, led.Burned)

*/
package icsim
