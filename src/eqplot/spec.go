// Package eqplot renders annotated Bode-style charts of machine EQ frequency
// responses: log-frequency axis, dB gain axis, one line series per reference
// curve, and labeled arrow callouts marking spectral features.
package eqplot

import (
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sandovalmusic/LOWTHD/src/eqdata"
)

// Render-time precondition errors.
var (
	ErrEmptyDataset = errors.New("eqplot: chart needs at least one curve")
	ErrAxisRange    = errors.New("eqplot: invalid axis range")
)

// Annotation is a labeled callout: an arrow drawn from the label position to
// an anchor point on a curve. Label may span multiple lines ("\n"). Either
// end is allowed to fall outside the axis window; it clips instead of
// failing the chart.
type Annotation struct {
	Label      string
	AnchorFreq float64 // Hz
	AnchorGain float64 // dB
	LabelFreq  float64 // Hz, where the text block starts
	LabelGain  float64 // dB
	Color      drawing.Color
	FontSize   float64 // points, 0 means the default callout size
}

// LegendLocation places the legend box inside the plot area. Lower right is
// the default policy: the feature callouts cluster in the upper left of the
// reference plots.
type LegendLocation int

const (
	LegendLowerRight LegendLocation = iota
	LegendLowerLeft
	LegendUpperRight
	LegendUpperLeft
	LegendHidden
)

// ChartSpec fully describes one render. A spec is consumed by a single
// Render call and never mutated; renders of distinct specs are independent.
type ChartSpec struct {
	Title       string
	Curves      []eqdata.Curve
	Annotations []Annotation

	// Axis window. XMin must be positive: the frequency axis is logarithmic.
	XMin, XMax float64 // Hz
	YMin, YMax float64 // dB

	// XTicks overrides the canonical audio-band tick positions when non-nil.
	// Tick labels come from FormatFrequency.
	XTicks []float64

	XAxisLabel string // default "Frequency (Hz)"
	YAxisLabel string // default "Gain (dB)"

	// Raster geometry; zero values fall back to the reference 1800x900 at
	// 150 DPI.
	Width  int
	Height int
	DPI    float64

	Legend LegendLocation
}

func (s ChartSpec) validate() error {
	if len(s.Curves) == 0 {
		return ErrEmptyDataset
	}
	if s.XMin <= 0 {
		return fmt.Errorf("%w: xmin %g not positive on a log axis", ErrAxisRange, s.XMin)
	}
	if s.XMin >= s.XMax {
		return fmt.Errorf("%w: x [%g, %g]", ErrAxisRange, s.XMin, s.XMax)
	}
	if s.YMin >= s.YMax {
		return fmt.Errorf("%w: y [%g, %g]", ErrAxisRange, s.YMin, s.YMax)
	}
	return nil
}
