package eqplot

import (
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	defaultCalloutFontSize = 9.0

	arrowHeadLen   = 8.0
	arrowHeadAngle = math.Pi / 7

	calloutLineSpacing = 2
)

// calloutSeries draws one annotation: an arrow from the label position to the
// anchor point, then the label text. It is a chart.Series so it receives the
// translated axis ranges and paints in series order, after every curve.
type calloutSeries struct {
	ann Annotation
}

// GetName returns "" so callouts never appear in the legend.
func (cs calloutSeries) GetName() string { return "" }

func (cs calloutSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (cs calloutSeries) GetStyle() chart.Style {
	return chart.Style{StrokeColor: cs.ann.Color, StrokeWidth: 1.0}
}

func (cs calloutSeries) Validate() error { return nil }

func (cs calloutSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := cs.GetStyle().InheritFrom(defaults)

	lx := canvasBox.Left + xrange.Translate(cs.ann.LabelFreq)
	ly := canvasBox.Bottom - yrange.Translate(cs.ann.LabelGain)
	ax := canvasBox.Left + xrange.Translate(cs.ann.AnchorFreq)
	ay := canvasBox.Bottom - yrange.Translate(cs.ann.AnchorGain)

	drawArrow(r, style, lx, ly, ax, ay)

	size := cs.ann.FontSize
	if size == 0 {
		size = defaultCalloutFontSize
	}
	font := style.GetFont()
	if font == nil {
		font, _ = chart.GetDefaultFont()
	}
	r.SetFont(font)
	r.SetFontSize(size)
	r.SetFontColor(style.GetStrokeColor())

	y := ly
	for _, line := range strings.Split(cs.ann.Label, "\n") {
		r.Text(line, lx+3, y)
		y += r.MeasureText(line).Height() + calloutLineSpacing
	}
}

func drawArrow(r chart.Renderer, style chart.Style, x0, y0, x1, y1 int) {
	r.SetStrokeColor(style.GetStrokeColor())
	r.SetStrokeWidth(style.GetStrokeWidth(1.0))
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()

	theta := math.Atan2(float64(y1-y0), float64(x1-x0))
	for _, wing := range []float64{theta + math.Pi - arrowHeadAngle, theta + math.Pi + arrowHeadAngle} {
		hx := x1 + int(math.Round(arrowHeadLen*math.Cos(wing)))
		hy := y1 + int(math.Round(arrowHeadLen*math.Sin(wing)))
		r.MoveTo(x1, y1)
		r.LineTo(hx, hy)
		r.Stroke()
	}
}
