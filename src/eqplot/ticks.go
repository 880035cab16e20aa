package eqplot

import (
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// DefaultFrequencyTicks are the canonical audio-band tick positions.
var DefaultFrequencyTicks = []float64{20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000}

// FormatFrequency renders a tick value in Hz, abbreviating kilohertz with a
// "k" suffix: 500 -> "500", 1000 -> "1k", 2500 -> "2.5k", 20000 -> "20k".
func FormatFrequency(v float64) string {
	if v >= 1000 {
		return strconv.FormatFloat(v/1000, 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// frequencyTicks builds labeled x ticks from the requested positions,
// dropping any outside the axis window.
func frequencyTicks(positions []float64, min, max float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(positions))
	for _, p := range positions {
		if p < min || p > max {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: p, Label: FormatFrequency(p)})
	}
	return ticks
}

// gainTicks builds dB ticks between min and max using nice step sizes,
// aiming for roughly n labels.
func gainTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || max <= min {
		return nil
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	var ticks []chart.Tick
	for v := math.Ceil(min/bestStep) * bestStep; v <= max+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatGain(v)})
	}
	return ticks
}

func formatGain(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// logMinorGridValues returns the 2..9 mantissa positions between decades, the
// minor grid a log-frequency plot shows between the major lines.
func logMinorGridValues(min, max float64) []float64 {
	if min <= 0 || max <= min {
		return nil
	}
	var vals []float64
	dec := math.Pow(10, math.Floor(math.Log10(min)))
	for dec <= max {
		for m := 2.0; m <= 9; m++ {
			if v := m * dec; v > min && v < max {
				vals = append(vals, v)
			}
		}
		dec *= 10
	}
	return vals
}
