package eqplot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	legendInset      = 14
	legendPad        = 8
	legendSwatchW    = 22
	legendSwatchGap  = 6
	legendRowGap     = 6
	legendSwatchLine = 3.0
)

type legendEntry struct {
	name  string
	color drawing.Color
}

// legendEntries collects the named series in declaration order. Reference
// lines and callouts carry no name and stay out of the legend.
func legendEntries(series []chart.Series) []legendEntry {
	var entries []legendEntry
	for _, s := range series {
		if s.GetName() == "" {
			continue
		}
		st := s.GetStyle()
		col := st.StrokeColor
		if col.IsZero() {
			col = st.DotColor
		}
		entries = append(entries, legendEntry{name: s.GetName(), color: col})
	}
	return entries
}

// legend returns a Renderable drawing a boxed legend inside the canvas at the
// requested corner. go-chart's stock Legend pins itself to one spot; here
// placement is part of the chart spec so the box can be kept away from the
// annotation cluster.
func legend(c *chart.Chart, loc LegendLocation, userDefaults ...chart.Style) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		legendDefaults := chart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   chart.DefaultTextColor,
			FontSize:    10.0,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: chart.DefaultAxisLineWidth,
		}
		var st chart.Style
		if len(userDefaults) > 0 {
			st = userDefaults[0].InheritFrom(chartDefaults.InheritFrom(legendDefaults))
		} else {
			st = chartDefaults.InheritFrom(legendDefaults)
		}

		entries := legendEntries(c.Series)
		if len(entries) == 0 {
			return
		}

		font := st.GetFont()
		if font == nil {
			font, _ = chart.GetDefaultFont()
		}
		r.SetFont(font)
		r.SetFontSize(st.GetFontSize(10.0))
		r.SetFontColor(st.GetFontColor(chart.DefaultTextColor))

		var textW, lineH int
		for _, e := range entries {
			tb := r.MeasureText(e.name)
			if tb.Width() > textW {
				textW = tb.Width()
			}
			if tb.Height() > lineH {
				lineH = tb.Height()
			}
		}
		boxW := legendPad + legendSwatchW + legendSwatchGap + textW + legendPad
		boxH := legendPad + len(entries)*lineH + (len(entries)-1)*legendRowGap + legendPad

		var left, top int
		switch loc {
		case LegendUpperLeft:
			left, top = cb.Left+legendInset, cb.Top+legendInset
		case LegendUpperRight:
			left, top = cb.Right-legendInset-boxW, cb.Top+legendInset
		case LegendLowerLeft:
			left, top = cb.Left+legendInset, cb.Bottom-legendInset-boxH
		default: // LegendLowerRight
			left, top = cb.Right-legendInset-boxW, cb.Bottom-legendInset-boxH
		}

		r.SetFillColor(st.GetFillColor())
		r.SetStrokeColor(st.GetStrokeColor())
		r.SetStrokeWidth(st.GetStrokeWidth())
		r.MoveTo(left, top)
		r.LineTo(left+boxW, top)
		r.LineTo(left+boxW, top+boxH)
		r.LineTo(left, top+boxH)
		r.LineTo(left, top)
		r.Close()
		r.FillStroke()

		y := top + legendPad + lineH
		for _, e := range entries {
			mid := y - lineH/2 + 1
			r.SetStrokeColor(e.color)
			r.SetStrokeWidth(legendSwatchLine)
			r.MoveTo(left+legendPad, mid)
			r.LineTo(left+legendPad+legendSwatchW, mid)
			r.Stroke()
			r.Text(e.name, left+legendPad+legendSwatchW+legendSwatchGap, y)
			y += lineH + legendRowGap
		}
	}
}
