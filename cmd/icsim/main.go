// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command icsim loads a circuit, runs an event script against it and prints
// the resulting state.
//
//	icsim [flags] circuit.yaml
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/db47h/icsim"
	"github.com/db47h/icsim/circuitfile"
	"github.com/db47h/icsim/internal/config"
	"github.com/db47h/icsim/internal/netspec"
	"github.com/db47h/icsim/wave"
	"github.com/pkg/errors"
)

func main() {
	var (
		cfgFile  = flag.String("config", "", "TOML configuration `file`")
		script   = flag.String("script", "", "event script `file`, - for stdin")
		describe = flag.String("describe", "", "print the pinout of component `kind` and exit")
		list     = flag.Bool("list", false, "list component kinds and exit")
		plotFile = flag.String("plot", "", "save a timing diagram of the probes to `file` (.png, .svg, .pdf)")
		probes   = flag.String("probe", "", "comma separated `pins` to record, like u1.3,d1.A")
		save     = flag.String("save", "", "save the circuit to `file` when done")
		verbose  = flag.Bool("v", false, "log simulation diagnostics")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("icsim: ")

	if *list {
		for _, k := range icsim.Kinds() {
			fmt.Printf("%-10s %-8s %s\n", k, icsim.Spec(k).Name, icsim.Spec(k).Title)
		}
		return
	}
	if *describe != "" {
		k, err := icsim.ParseKind(*describe)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(icsim.Describe(k))
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgFile != "" {
		var err error
		if cfg, err = config.Load(*cfgFile); err != nil {
			log.Fatal(err)
		}
	}
	c, err := circuitfile.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	r := &runner{c: c, opts: cfg.Options(), out: os.Stdout, log: log.New(os.Stderr, "icsim: ", 0)}
	if *verbose {
		r.opts = append(r.opts, icsim.WithLogger(r.log))
	}
	if *probes != "" {
		if r.rec, err = recorder(c, *probes); err != nil {
			log.Fatal(err)
		}
	}
	if err = r.simulate(); err != nil {
		log.Fatal(err)
	}

	if *script != "" {
		var in io.Reader = os.Stdin
		if *script != "-" {
			f, err := os.Open(*script)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
			in = f
		}
		if err = r.run(in); err != nil {
			log.Fatal(err)
		}
	}
	printState(os.Stdout, c)

	if *plotFile != "" {
		if r.rec == nil {
			log.Fatal("-plot requires -probe")
		}
		if err = r.rec.Save(*plotFile, flag.Arg(0)); err != nil {
			log.Fatal(err)
		}
	}
	if *save != "" {
		if err = circuitfile.Save(*save, c); err != nil {
			log.Fatal(err)
		}
	}
}

// recorder parses a probe list: comma separated component.pin references.
//
func recorder(c *icsim.Circuit, list string) (*wave.Recorder, error) {
	var ps []wave.Probe
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		ref, err := netspec.ParseRef(s)
		if err != nil {
			return nil, errors.Wrap(err, "invalid probe")
		}
		e, err := circuitfile.Endpoint(c, ref)
		if err != nil {
			return nil, errors.Wrap(err, "invalid probe")
		}
		ps = append(ps, wave.Probe{Name: s, Endpoint: e})
	}
	return wave.NewRecorder(ps...), nil
}
