// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package wave records pin levels across simulation passes and renders them
// as timing diagrams.
//
package wave

import (
	"io"

	"github.com/db47h/icsim"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// A Probe designates a pin to record.
//
type Probe struct {
	Name string
	icsim.Endpoint
}

// Recorder samples probed pins after each simulation pass.
//
type Recorder struct {
	probes  []Probe
	samples [][]bool // samples[pass][probe]
}

// NewRecorder returns a recorder for the given probes. Probes without a name
// are named after their endpoint.
//
func NewRecorder(probes ...Probe) *Recorder {
	ps := make([]Probe, len(probes))
	for i, p := range probes {
		if p.Name == "" {
			p.Name = p.Endpoint.String()
		}
		ps[i] = p
	}
	return &Recorder{probes: ps}
}

// Sample records the current level of all probes.
//
func (r *Recorder) Sample(c *icsim.Circuit) error {
	s := make([]bool, len(r.probes))
	for i, p := range r.probes {
		cp := c.Component(p.Comp)
		if cp == nil {
			return errors.Errorf("probe %s: unknown component %q", p.Name, p.Comp)
		}
		if p.Pin < 1 || p.Pin >= len(cp.Pins) {
			return errors.Errorf("probe %s: pin %d out of range", p.Name, p.Pin)
		}
		s[i] = cp.Pins[p.Pin]
	}
	r.samples = append(r.samples, s)
	return nil
}

// Len returns the number of samples.
//
func (r *Recorder) Len() int { return len(r.samples) }

// Trace returns the recorded levels of probe i.
//
func (r *Recorder) Trace(i int) []bool {
	t := make([]bool, len(r.samples))
	for j, s := range r.samples {
		t[j] = s[i]
	}
	return t
}

// Plot returns a timing diagram of the recorded traces, one row per probe,
// first probe on top.
//
func (r *Recorder) Plot(title string) (*plot.Plot, error) {
	if len(r.samples) == 0 {
		return nil, errors.New("no samples recorded")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "pass"

	n := len(r.probes)
	names := make([]string, n)
	for i, pr := range r.probes {
		row := float64(n - 1 - i)
		names[n-1-i] = pr.Name
		// repeat the last sample so that the last pass gets a full step
		pts := make(plotter.XYs, len(r.samples)+1)
		for j := range pts {
			s := r.samples[len(r.samples)-1]
			if j < len(r.samples) {
				s = r.samples[j]
			}
			pts[j].X = float64(j)
			pts[j].Y = row - 0.3
			if s[i] {
				pts[j].Y = row + 0.3
			}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "probe %s", pr.Name)
		}
		l.StepStyle = plotter.PostStep
		l.Color = plotutil.Color(i)
		l.Width = vg.Points(1.5)
		p.Add(l)
	}
	p.NominalY(names...)
	p.X.Min = 0
	p.X.Max = float64(len(r.samples))
	return p, nil
}

func (r *Recorder) size() (w, h vg.Length) {
	return 6 * vg.Inch, vg.Length(len(r.probes))*0.5*vg.Inch + 1*vg.Inch
}

// Save renders the timing diagram to a file. The format is taken from the
// file extension (.png, .svg, .pdf, ...).
//
func (r *Recorder) Save(path, title string) error {
	p, err := r.Plot(title)
	if err != nil {
		return err
	}
	w, h := r.size()
	return errors.Wrap(p.Save(w, h, path), "failed to save waveform")
}

// Render writes the timing diagram to w in the given format ("png", "svg",
// ...).
//
func (r *Recorder) Render(w io.Writer, format, title string) error {
	p, err := r.Plot(title)
	if err != nil {
		return err
	}
	width, h := r.size()
	wt, err := p.WriterTo(width, h, format)
	if err != nil {
		return errors.Wrap(err, "failed to render waveform")
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "failed to render waveform")
}
