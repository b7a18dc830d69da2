// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package circuitfile reads and writes circuits as YAML documents.
//
//	components:
//	  - {id: vcc, kind: vcc}
//	  - {id: gnd, kind: gnd}
//	  - {id: sw1, kind: switch, closed: true}
//	  - {id: r1, kind: resistor, value: 4.7k}
//	  - {id: d1, kind: led, color: green}
//	wires:
//	  - vcc.1=sw1.1
//	  - sw1.2=r1.1, r1.2=d1.A, d1.K=gnd.1
//	  - net: r1.2=gnd.1
//	    waypoints: [{x: 120, y: 40}, {x: 120, y: 80}]
//
// Wires use the compact syntax of ParseWires. Pins can be given by number or
// by catalog name. An entry with waypoints must describe a single wire.
//
// Sequential state is saved along with the counter and timer so that a
// reloaded circuit sees no spurious clock edge.
//
package circuitfile

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/icsim"
	"github.com/db47h/icsim/chiplib"
	"github.com/db47h/icsim/internal/netspec"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Component is the file representation of an icsim.Component.
//
type Component struct {
	ID          string     `yaml:"id"`
	Kind        icsim.Kind `yaml:"kind"`
	Rotation    int        `yaml:"rotation,omitempty"`
	Value       string     `yaml:"value,omitempty"`
	Label       string     `yaml:"label,omitempty"`
	Color       string     `yaml:"color,omitempty"`
	Closed      bool       `yaml:"closed,omitempty"`
	On          []int      `yaml:"on,omitempty"`
	CommonAnode bool       `yaml:"common_anode,omitempty"`
	Count       *int       `yaml:"count,omitempty"`
	PrevUp      bool       `yaml:"prev_up,omitempty"`
	PrevDown    bool       `yaml:"prev_down,omitempty"`
	Out         bool       `yaml:"out,omitempty"`
	Discharge   bool       `yaml:"discharge,omitempty"`
}

// Wire is a wiring entry. It is written as a plain string unless it has
// waypoints.
//
type Wire struct {
	Net       string        `yaml:"net"`
	Waypoints []icsim.Point `yaml:"waypoints,flow,omitempty"`
}

type plainWire Wire

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (w *Wire) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*w = Wire{Net: n.Value}
		return nil
	}
	return n.Decode((*plainWire)(w))
}

// MarshalYAML implements yaml.Marshaler.
//
func (w Wire) MarshalYAML() (interface{}, error) {
	if len(w.Waypoints) == 0 {
		return w.Net, nil
	}
	return plainWire(w), nil
}

// File is the top level document.
//
type File struct {
	Components []Component `yaml:"components"`
	Wires      []Wire      `yaml:"wires,omitempty"`
}

// Decode reads a circuit from r.
//
func Decode(r io.Reader) (*icsim.Circuit, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "invalid circuit file")
	}
	return f.Build()
}

// Load reads the circuit file at path.
//
func Load(path string) (*icsim.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open circuit file")
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// Build creates the circuit described by f.
//
func (f *File) Build() (*icsim.Circuit, error) {
	c := icsim.New()
	for _, fc := range f.Components {
		if err := addComponent(c, &fc); err != nil {
			return nil, err
		}
	}
	for _, w := range f.Wires {
		ws, err := ParseWires(c, w.Net)
		if err != nil {
			return nil, err
		}
		if len(w.Waypoints) == 0 {
			continue
		}
		if len(ws) != 1 {
			return nil, errors.Errorf("in %q: waypoints need exactly one wire", w.Net)
		}
		ws[0].Waypoints = append([]icsim.Point(nil), w.Waypoints...)
	}
	return c, nil
}

func addComponent(c *icsim.Circuit, fc *Component) error {
	cp, err := c.Add(fc.Kind, fc.ID)
	if err != nil {
		return err
	}
	id := cp.ID
	cp.Rotation = fc.Rotation
	if fc.Value != "" {
		v, err := icsim.ParseValue(fc.Value)
		if err != nil {
			return errors.Wrap(err, id)
		}
		switch fc.Kind {
		case icsim.Resistor:
			err = c.SetResistance(id, v)
		case icsim.Capacitor:
			err = c.SetCapacitance(id, v, fc.Label)
		default:
			err = errors.Errorf("%s: value not supported on %s", id, fc.Kind)
		}
		if err != nil {
			return err
		}
	}
	if fc.Label != "" && fc.Kind != icsim.Capacitor {
		if err := c.SetLabel(id, fc.Label); err != nil {
			return err
		}
	}
	if fc.Color != "" {
		if err := c.SetColor(id, fc.Color); err != nil {
			return err
		}
	}
	if fc.Closed {
		if err := c.SetClosed(id, true); err != nil {
			return err
		}
	}
	for _, b := range fc.On {
		if err := c.SetDIP(id, b, true); err != nil {
			return err
		}
	}
	if fc.CommonAnode {
		if err := c.SetCommonAnode(id, true); err != nil {
			return err
		}
	}
	if fc.Count != nil || fc.PrevUp || fc.PrevDown {
		if fc.Kind != icsim.CNT74193 {
			return errors.Errorf("%s: counter state not supported on %s", id, fc.Kind)
		}
		s := chiplib.Counter{PrevUp: fc.PrevUp, PrevDown: fc.PrevDown}
		if fc.Count != nil {
			s.Count = uint8(*fc.Count)
		}
		cp.SetCounter(s)
	}
	if fc.Out || fc.Discharge {
		if fc.Kind != icsim.TIMER555 {
			return errors.Errorf("%s: timer state not supported on %s", id, fc.Kind)
		}
		cp.SetTimer(chiplib.Latch{Out: fc.Out, Discharge: fc.Discharge})
	}
	return nil
}

// Endpoint resolves a pin reference against the components of c.
//
func Endpoint(c *icsim.Circuit, r netspec.Ref) (icsim.Endpoint, error) {
	cp := c.Component(r.Comp)
	if cp == nil {
		return icsim.Endpoint{}, errors.Errorf("unknown component %q", r.Comp)
	}
	if n, ok := r.Num(); ok {
		return icsim.Endpoint{Comp: r.Comp, Pin: n}, nil
	}
	n, ok := cp.Spec().LookupPin(r.Pin)
	if !ok {
		return icsim.Endpoint{}, errors.Errorf("no pin named %q on %s", r.Pin, r.Comp)
	}
	return icsim.Endpoint{Comp: r.Comp, Pin: n}, nil
}

// ParseWires parses a wiring description and adds the corresponding wires
// to c. Each pin of a chain is wired to the previous one.
//
func ParseWires(c *icsim.Circuit, spec string) ([]*icsim.Wire, error) {
	chains, err := netspec.Parse(spec)
	if err != nil {
		return nil, err
	}
	var ws []*icsim.Wire
	for _, ch := range chains {
		prev, err := Endpoint(c, ch[0])
		if err != nil {
			return nil, errors.Wrapf(err, "in %q at pos %d", spec, ch[0].Pos+1)
		}
		for _, r := range ch[1:] {
			e, err := Endpoint(c, r)
			if err != nil {
				return nil, errors.Wrapf(err, "in %q at pos %d", spec, r.Pos+1)
			}
			w, err := c.Connect(prev, e)
			if err != nil {
				return nil, errors.Wrapf(err, "in %q at pos %d", spec, r.Pos+1)
			}
			ws = append(ws, w)
			prev = e
		}
	}
	return ws, nil
}

// FromCircuit returns the file representation of c.
//
func FromCircuit(c *icsim.Circuit) *File {
	f := new(File)
	for _, cp := range c.Components() {
		fc := Component{ID: cp.ID, Kind: cp.Kind, Rotation: cp.Rotation}
		switch cp.Kind {
		case icsim.Resistor:
			fc.Value = strconv.FormatFloat(cp.Ohms, 'g', -1, 64)
		case icsim.Capacitor:
			fc.Value = strconv.FormatFloat(cp.Farads, 'g', -1, 64)
			fc.Label = cp.Label
		case icsim.Power:
			if cp.Label != "5V" {
				fc.Label = cp.Label
			}
		case icsim.LED:
			if cp.Color != "red" {
				fc.Color = cp.Color
			}
		case icsim.Switch, icsim.PushButton:
			fc.Closed = cp.Closed
		case icsim.DIPSwitch:
			for b := 0; b < 4; b++ {
				if cp.Bits&(1<<uint(b)) != 0 {
					fc.On = append(fc.On, b)
				}
			}
		case icsim.SevenSeg:
			fc.CommonAnode = cp.CommonAnode
		case icsim.CNT74193:
			s := cp.Counter()
			if s.Count != 0 {
				n := int(s.Count)
				fc.Count = &n
			}
			fc.PrevUp, fc.PrevDown = s.PrevUp, s.PrevDown
		case icsim.TIMER555:
			l := cp.Timer()
			fc.Out, fc.Discharge = l.Out, l.Discharge
		}
		f.Components = append(f.Components, fc)
	}
	for _, w := range c.Wires() {
		f.Wires = append(f.Wires, Wire{
			Net:       w.From.String() + "=" + w.To.String(),
			Waypoints: w.Waypoints,
		})
	}
	return f
}

// Encode writes c to w.
//
func Encode(w io.Writer, c *icsim.Circuit) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromCircuit(c)); err != nil {
		return errors.Wrap(err, "failed to encode circuit")
	}
	return enc.Close()
}

// Save writes c to the file at path.
//
func Save(path string, c *icsim.Circuit) (err error) {
	var b strings.Builder
	if err = Encode(&b, c); err != nil {
		return err
	}
	if err = os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrap(err, "failed to save circuit")
	}
	return nil
}
