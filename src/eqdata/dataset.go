// Package eqdata holds the machine EQ reference measurement tables and the
// validated dataset type that feeds the chart renderer.
package eqdata

import (
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Errors returned by Dataset construction and lookup.
var (
	ErrShapeMismatch         = errors.New("eqdata: frequency and gain tables differ in length")
	ErrNonMonotonicFrequency = errors.New("eqdata: frequencies must be positive and strictly increasing")
	ErrShortCurve            = errors.New("eqdata: a response curve needs at least two samples")
	ErrDuplicateName         = errors.New("eqdata: curve name already present")
	ErrNotFound              = errors.New("eqdata: curve not found")
)

// Sample is one measured point of a frequency response: frequency in Hz,
// gain in dB relative to unity.
type Sample struct {
	Frequency float64
	Gain      float64
}

// Style describes how a curve is drawn.
type Style struct {
	Color       drawing.Color
	StrokeWidth float64
	DotWidth    float64
}

// Curve is a named frequency response with its plot style.
type Curve struct {
	Name    string
	Samples []Sample
	Style   Style
}

// Frequencies returns the curve's frequency grid.
func (c Curve) Frequencies() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Frequency
	}
	return out
}

// Gains returns the curve's gain values, parallel to Frequencies.
func (c Curve) Gains() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Gain
	}
	return out
}

// Dataset holds named response curves in insertion order. The zero value is
// not usable; call NewDataset.
type Dataset struct {
	curves []Curve
	index  map[string]int
}

func NewDataset() *Dataset {
	return &Dataset{index: map[string]int{}}
}

// AddCurve validates the parallel measurement tables and appends a curve.
// Malformed tables are rejected here so they never reach the renderer, where
// they would silently produce a misleading plot.
func (d *Dataset) AddCurve(name string, freqs, gains []float64, style Style) error {
	if len(freqs) != len(gains) {
		return fmt.Errorf("%w: %q has %d frequencies vs %d gains", ErrShapeMismatch, name, len(freqs), len(gains))
	}
	if len(freqs) < 2 {
		return fmt.Errorf("%w: %q has %d", ErrShortCurve, name, len(freqs))
	}
	prev := 0.0
	for i, f := range freqs {
		// prev starts at 0, so the first sample also has to be positive
		if f <= prev {
			return fmt.Errorf("%w: %q at index %d (%g after %g)", ErrNonMonotonicFrequency, name, i, f, prev)
		}
		prev = f
	}
	if _, ok := d.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	samples := make([]Sample, len(freqs))
	for i := range freqs {
		samples[i] = Sample{Frequency: freqs[i], Gain: gains[i]}
	}
	d.index[name] = len(d.curves)
	d.curves = append(d.curves, Curve{Name: name, Samples: samples, Style: style})
	return nil
}

// Curve returns the named curve or ErrNotFound.
func (d *Dataset) Curve(name string) (Curve, error) {
	i, ok := d.index[name]
	if !ok {
		return Curve{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return d.curves[i], nil
}

// Curves returns the curves in insertion order.
func (d *Dataset) Curves() []Curve {
	out := make([]Curve, len(d.curves))
	copy(out, d.curves)
	return out
}

// Names returns the curve names in insertion order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.curves))
	for i, c := range d.curves {
		out[i] = c.Name
	}
	return out
}

func (d *Dataset) Len() int { return len(d.curves) }

// CommonGrid reports whether every curve shares one frequency grid. Curves on
// divergent grids still render; alignment is a visual nicety, not an
// invariant.
func (d *Dataset) CommonGrid() bool {
	if len(d.curves) < 2 {
		return true
	}
	ref := d.curves[0].Samples
	for _, c := range d.curves[1:] {
		if len(c.Samples) != len(ref) {
			return false
		}
		for i, s := range c.Samples {
			if s.Frequency != ref[i].Frequency {
				return false
			}
		}
	}
	return true
}
