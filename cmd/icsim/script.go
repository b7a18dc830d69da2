// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/db47h/icsim"
	"github.com/db47h/icsim/circuitfile"
	"github.com/db47h/icsim/wave"
	"github.com/pkg/errors"
)

// runner applies script commands to a circuit. Every command that edits the
// circuit is followed by a simulation pass.
//
type runner struct {
	c    *icsim.Circuit
	opts []icsim.Option
	rec  *wave.Recorder
	out  io.Writer
	log  *log.Logger
}

func (r *runner) simulate() error {
	res := r.c.Simulate(r.opts...)
	if !res.Converged {
		r.log.Printf("warning: circuit did not settle after %d iterations", res.Iterations)
	}
	if r.rec != nil {
		return r.rec.Sample(r.c)
	}
	return nil
}

func (r *runner) run(in io.Reader) error {
	s := bufio.NewScanner(in)
	for line := 1; s.Scan(); line++ {
		if err := r.exec(s.Text()); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return errors.Wrap(s.Err(), "failed to read script")
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid integer %q", s)
	}
	return n, nil
}

// exec runs a single script command:
//
//	toggle ID          flip a switch or push-button
//	press ID           close a push-button
//	release ID         open a push-button
//	dip ID BIT on|off  set a DIP switch position
//	ohms ID VALUE      set a resistor value
//	wire SPEC          add wires
//	cut WIRE           remove a wire
//	remove ID          remove a component and its wires
//	print              print the circuit state
//
func (r *runner) exec(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil
	}
	arity := map[string]int{
		"toggle": 1, "press": 1, "release": 1, "dip": 3, "ohms": 2,
		"cut": 1, "remove": 1, "print": 0,
	}
	cmd, args := f[0], f[1:]
	if n, ok := arity[cmd]; ok && len(args) != n {
		return errors.Errorf("%s: expected %d arguments, got %d", cmd, n, len(args))
	}

	var err error
	switch cmd {
	case "toggle":
		err = r.c.Toggle(args[0])
	case "press", "release":
		err = r.c.SetClosed(args[0], cmd == "press")
	case "dip":
		var bit int
		if bit, err = atoi(args[1]); err != nil {
			return err
		}
		switch args[2] {
		case "on", "off":
			err = r.c.SetDIP(args[0], bit, args[2] == "on")
		default:
			return errors.Errorf("dip: expected on or off, got %q", args[2])
		}
	case "ohms":
		var v float64
		if v, err = icsim.ParseValue(args[1]); err != nil {
			return err
		}
		err = r.c.SetResistance(args[0], v)
	case "wire":
		_, err = circuitfile.ParseWires(r.c, strings.Join(args, " "))
	case "cut":
		err = r.c.Disconnect(args[0])
	case "remove":
		err = r.c.Remove(args[0])
	case "print":
		printState(r.out, r.c)
		return nil
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}
	return r.simulate()
}

func levels(pins []bool) string {
	var b strings.Builder
	for _, v := range pins[1:] {
		if v {
			b.WriteByte('H')
		} else {
			b.WriteByte('L')
		}
	}
	return b.String()
}

// printState prints one line per component. Pin levels are listed from pin
// 1 as H or L.
//
func printState(w io.Writer, c *icsim.Circuit) {
	for _, cp := range c.Components() {
		fmt.Fprintf(w, "%-10s %-8s %s", cp.ID, cp.Spec().Name, levels(cp.Pins))
		switch cp.Kind {
		case icsim.LED:
			switch {
			case cp.Burned:
				fmt.Fprint(w, " burned")
			case cp.Lit:
				fmt.Fprintf(w, " lit %.2f", cp.Brightness)
			default:
				fmt.Fprint(w, " off")
			}
		case icsim.SevenSeg:
			if cp.Digit >= 0 {
				fmt.Fprintf(w, " digit %d", cp.Digit)
			} else {
				fmt.Fprintf(w, " segments %#02x", cp.Segments)
			}
		case icsim.CNT74193:
			fmt.Fprintf(w, " count %d", cp.Count())
		case icsim.Switch, icsim.PushButton:
			if cp.Closed {
				fmt.Fprint(w, " closed")
			} else {
				fmt.Fprint(w, " open")
			}
		case icsim.Resistor:
			fmt.Fprint(w, " "+icsim.FormatValue(cp.Ohms, "Ω"))
		}
		if cp.Kind.IsIC() && !cp.Powered {
			fmt.Fprint(w, " unpowered")
		}
		fmt.Fprintln(w)
	}
}
