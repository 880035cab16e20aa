package eqplot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Reference raster geometry: the measurement plots are 12x6 inches at 150
// DPI.
const (
	DefaultWidth  = 1800
	DefaultHeight = 900
	DefaultDPI    = 150.0
)

var (
	gridMajorColor = drawing.Color{R: 0, G: 0, B: 0, A: 40}
	gridMinorColor = drawing.Color{R: 0, G: 0, B: 0, A: 18}
	zeroLineColor  = drawing.Color{R: 128, G: 128, B: 128, A: 180}
)

// Render produces the chart raster for one spec. It is a pure transformation:
// no I/O, no retained state, same spec in means same geometry out. The caller
// owns persistence and display.
func Render(spec ChartSpec) (image.Image, error) {
	var buf bytes.Buffer
	if err := RenderPNG(spec, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("eqplot: decoding rendered chart: %w", err)
	}
	return img, nil
}

// RenderPNG validates the spec, renders, and encodes PNG to w. The chart is
// rasterized into memory first, so nothing reaches w unless the whole render
// succeeded.
func RenderPNG(spec ChartSpec, w io.Writer) error {
	if err := spec.validate(); err != nil {
		return err
	}
	ch := buildChart(spec)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("eqplot: rendering chart: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func buildChart(spec ChartSpec) chart.Chart {
	width, height, dpi := spec.Width, spec.Height, spec.DPI
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	tickPositions := spec.XTicks
	if tickPositions == nil {
		tickPositions = DefaultFrequencyTicks
	}
	xTicks := frequencyTicks(tickPositions, spec.XMin, spec.XMax)
	yTicks := gainTicks(spec.YMin, spec.YMax, 8)

	majorStyle := chart.Style{StrokeColor: gridMajorColor, StrokeWidth: 1.0}
	minorStyle := chart.Style{StrokeColor: gridMinorColor, StrokeWidth: 1.0}

	xGrid := make([]chart.GridLine, 0, len(xTicks)+3*9)
	for _, t := range xTicks {
		xGrid = append(xGrid, chart.GridLine{Value: t.Value, Style: majorStyle})
	}
	for _, v := range logMinorGridValues(spec.XMin, spec.XMax) {
		xGrid = append(xGrid, chart.GridLine{Value: v, IsMinor: true, Style: minorStyle})
	}
	yGrid := make([]chart.GridLine, 0, len(yTicks))
	for _, t := range yTicks {
		yGrid = append(yGrid, chart.GridLine{Value: t.Value, Style: majorStyle})
	}

	series := make([]chart.Series, 0, 1+len(spec.Curves)+len(spec.Annotations))

	// The 0 dB reference sits under every curve when the y window spans it.
	if spec.YMin < 0 && spec.YMax > 0 {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{spec.XMin, spec.XMax},
			YValues: []float64{0, 0},
			Style: chart.Style{
				StrokeColor:     zeroLineColor,
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{4.0, 4.0},
			},
		})
	}

	for _, c := range spec.Curves {
		st := chart.Style{
			StrokeColor: c.Style.Color,
			StrokeWidth: c.Style.StrokeWidth,
			DotColor:    c.Style.Color,
			DotWidth:    c.Style.DotWidth,
		}
		if st.StrokeWidth == 0 {
			st.StrokeWidth = 2.0
		}
		if st.DotWidth == 0 {
			st.DotWidth = 4.0
		}
		series = append(series, chart.ContinuousSeries{
			Name:    c.Name,
			XValues: c.Frequencies(),
			YValues: c.Gains(),
			Style:   st,
		})
	}

	// Callouts go last so no curve paints over them.
	for _, ann := range spec.Annotations {
		series = append(series, calloutSeries{ann: ann})
	}

	xLabel := spec.XAxisLabel
	if xLabel == "" {
		xLabel = "Frequency (Hz)"
	}
	yLabel := spec.YAxisLabel
	if yLabel == "" {
		yLabel = "Gain (dB)"
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           xLabel,
			Range:          &chart.LogarithmicRange{Min: spec.XMin, Max: spec.XMax},
			Ticks:          xTicks,
			GridLines:      xGrid,
			GridMajorStyle: majorStyle,
			GridMinorStyle: minorStyle,
		},
		YAxis: chart.YAxis{
			Name:           yLabel,
			Range:          &chart.ContinuousRange{Min: spec.YMin, Max: spec.YMax},
			Ticks:          yTicks,
			GridLines:      yGrid,
			GridMajorStyle: majorStyle,
		},
		Series: series,
	}
	if spec.Legend != LegendHidden {
		ch.Elements = []chart.Renderable{legend(&ch, spec.Legend)}
	}
	return ch
}
