package eqplot

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sandovalmusic/LOWTHD/src/eqdata"
)

// logGrid returns n log-spaced frequencies spanning [20, 20000].
func logGrid(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 20 * math.Pow(10, 3*float64(i)/float64(n-1))
	}
	return out
}

func twoCurveSpec(t *testing.T, points int) ChartSpec {
	t.Helper()
	d := eqdata.NewDataset()
	freqs := logGrid(points)
	flat := make([]float64, points)
	bumped := make([]float64, points)
	for i, f := range freqs {
		bumped[i] = 1.2 * math.Exp(-math.Pow(math.Log(f/110), 2))
	}
	if err := d.AddCurve("flat", freqs, flat, eqdata.AmpexStyle()); err != nil {
		t.Fatalf("AddCurve flat: %v", err)
	}
	if err := d.AddCurve("bumped", freqs, bumped, eqdata.StuderStyle()); err != nil {
		t.Fatalf("AddCurve bumped: %v", err)
	}
	return ChartSpec{
		Title:  "test chart",
		Curves: d.Curves(),
		XMin:   20, XMax: 20000,
		YMin: -10, YMax: 4,
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	_, err := Render(ChartSpec{XMin: 20, XMax: 20000, YMin: -10, YMax: 4})
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestRenderAxisRangeErrors(t *testing.T) {
	base := twoCurveSpec(t, 8)

	zeroXMin := base
	zeroXMin.XMin = 0
	if _, err := Render(zeroXMin); !errors.Is(err, ErrAxisRange) {
		t.Fatalf("xmin=0: expected ErrAxisRange, got %v", err)
	}

	inverted := base
	inverted.XMin, inverted.XMax = 20000, 20
	if _, err := Render(inverted); !errors.Is(err, ErrAxisRange) {
		t.Fatalf("inverted x: expected ErrAxisRange, got %v", err)
	}

	flatY := base
	flatY.YMin, flatY.YMax = 4, 4
	if _, err := Render(flatY); !errors.Is(err, ErrAxisRange) {
		t.Fatalf("ymin==ymax: expected ErrAxisRange, got %v", err)
	}
}

func TestRenderPNGWritesNothingOnError(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(ChartSpec{XMin: 0, XMax: 20000, YMin: -10, YMax: 4}, &buf)
	if err == nil {
		t.Fatalf("expected error")
	}
	if buf.Len() != 0 {
		t.Fatalf("failed render leaked %d bytes to the writer", buf.Len())
	}
}

func TestRenderTwoCurvesWithCallouts(t *testing.T) {
	spec := twoCurveSpec(t, 31)
	spec.Annotations = []Annotation{
		{Label: "Head Bump\n+1.2dB @ 110Hz", AnchorFreq: 110, AnchorGain: 1.2, LabelFreq: 200, LabelGain: 2.5, Color: eqdata.StuderColor},
		{Label: "flat here", AnchorFreq: 1000, AnchorGain: 0, LabelFreq: 2000, LabelGain: -2, Color: eqdata.AmpexColor},
		{Label: "low end", AnchorFreq: 25, AnchorGain: 0, LabelFreq: 40, LabelGain: -4, Color: eqdata.AmpexColor},
		// deliberately outside xMax: must clip, not fail
		{Label: "beyond the window", AnchorFreq: 20000, AnchorGain: 0.3, LabelFreq: 30000, LabelGain: 1.5, Color: eqdata.StuderColor},
	}
	img, err := Render(spec)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Fatalf("expected %dx%d raster, got %dx%d", DefaultWidth, DefaultHeight, b.Dx(), b.Dy())
	}

	ch := buildChart(spec)
	if got := len(legendEntries(ch.Series)); got != 2 {
		t.Fatalf("expected 2 legend entries, got %d", got)
	}
	callouts := 0
	for _, s := range ch.Series {
		if _, ok := s.(calloutSeries); ok {
			callouts++
		}
	}
	if callouts != 4 {
		t.Fatalf("expected 4 callout series, got %d", callouts)
	}
}

func TestRenderGeometryIdempotent(t *testing.T) {
	spec := twoCurveSpec(t, 31)
	first, err := Render(spec)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := Render(spec)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first.Bounds() != second.Bounds() {
		t.Fatalf("renders disagree on dimensions: %v vs %v", first.Bounds(), second.Bounds())
	}
}

func TestRenderHonorsExplicitSize(t *testing.T) {
	spec := twoCurveSpec(t, 8)
	spec.Width, spec.Height = 900, 450
	img, err := Render(spec)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 900 || b.Dy() != 450 {
		t.Fatalf("expected 900x450, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestSeriesZOrder(t *testing.T) {
	spec := twoCurveSpec(t, 8)
	spec.Annotations = []Annotation{
		{Label: "x", AnchorFreq: 100, AnchorGain: 0, LabelFreq: 200, LabelGain: 2, Color: eqdata.AmpexColor},
	}
	ch := buildChart(spec)

	// reference line first (under curves), unnamed
	ref, ok := ch.Series[0].(chart.ContinuousSeries)
	if !ok || ref.Name != "" {
		t.Fatalf("expected unnamed reference series first, got %T %q", ch.Series[0], ch.Series[0].GetName())
	}
	if len(ref.Style.StrokeDashArray) == 0 {
		t.Fatalf("reference line should be dashed")
	}
	// callouts last (over curves)
	if _, ok := ch.Series[len(ch.Series)-1].(calloutSeries); !ok {
		t.Fatalf("expected callout series last, got %T", ch.Series[len(ch.Series)-1])
	}
}

func TestReferenceLineOmittedWhenZeroOutsideWindow(t *testing.T) {
	spec := twoCurveSpec(t, 8)
	spec.YMin, spec.YMax = 1, 4
	for i := range spec.Curves[0].Samples {
		spec.Curves[0].Samples[i].Gain = 2
		spec.Curves[1].Samples[i].Gain = 3
	}
	ch := buildChart(spec)
	if _, ok := ch.Series[0].(chart.ContinuousSeries); !ok {
		t.Fatalf("unexpected first series %T", ch.Series[0])
	}
	if ch.Series[0].GetName() == "" {
		t.Fatalf("no 0 dB line expected when y window excludes zero")
	}
}
