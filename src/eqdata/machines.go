package eqdata

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Revision selects one tuning pass of the reference measurement tables.
// RevisionA carries the original filter design targets on a coarse grid;
// RevisionB is the later fine-tuned measurement at 96 kHz, matched against
// the Pro-Q4 reference. The two passes disagree slightly on purpose: they are
// snapshots of an iterated tuning, not one table with errors, so neither
// replaces the other.
type Revision int

const (
	RevisionA Revision = iota
	RevisionB
)

func (r Revision) String() string {
	switch r {
	case RevisionA:
		return "A"
	case RevisionB:
		return "B"
	}
	return "unknown"
}

// Canonical curve names for the two emulated machines.
const (
	AmpexName  = "Ampex ATR-102 (Master)"
	StuderName = "Studer A820 (Tracks)"
)

// Curve colors follow the reference plots: Ampex in blue, Studer in red.
var (
	AmpexColor  = drawing.Color{R: 0, G: 116, B: 217, A: 255}
	StuderColor = drawing.Color{R: 217, G: 83, B: 79, A: 255}
)

// AmpexStyle is the default plot style for the Ampex curve. The reference
// plot uses circle markers; markers here are round dots regardless of curve.
func AmpexStyle() Style {
	return Style{Color: AmpexColor, StrokeWidth: 2, DotWidth: 4}
}

// StuderStyle is the default plot style for the Studer curve.
func StuderStyle() Style {
	return Style{Color: StuderColor, StrokeWidth: 2, DotWidth: 4}
}

// RevisionA: composite design targets for the machine EQ filter banks.
// Ampex: 28 Hz lift, 40 Hz head bump, 350 Hz dip, HF shelving around 16 kHz.
// Studer: 18 dB/oct HP at 27 Hz, head bumps at 49.5 Hz and 110 Hz.
var (
	ampexFreqsA = []float64{20, 28, 40, 70, 105, 150, 350, 1200, 3000, 10000, 16000, 21500}
	ampexGainsA = []float64{-2.7, 0, 1.15, 0.17, 0.3, 0, -0.5, -0.3, -0.45, 0, -0.25, 0}

	studerFreqsA = []float64{30, 38, 49.5, 69.5, 110, 260, 600, 1000, 5000, 10000}
	studerGainsA = []float64{-2.0, 0, 0.55, 0.1, 1.2, 0.05, 0.2, 0.15, 0.1, -0.1}
)

// RevisionB: measured composite response at 96 kHz sample rate, shared
// 44-point grid.
var (
	machineFreqsB = []float64{
		20, 28, 30, 38, 40, 49.5, 50, 63, 69.5, 70, 72, 80, 100, 105, 110,
		125, 150, 160, 200, 250, 260, 315, 350, 400, 500, 630, 800, 1000,
		1200, 1250, 1600, 2000, 2500, 3000, 3150, 4000, 5000, 6300, 8000,
		10000, 12500, 16000, 20000, 21500,
	}

	ampexGainsB = []float64{
		-2.67, -0.08, 0.22, 1.17, 1.15, 0.88, 0.85, 0.26, 0.15, 0.15,
		0.23, 0.16, 0.31, 0.29, 0.25, 0.17, 0.03, -0.05, -0.25, -0.42,
		-0.44, -0.48, -0.46, -0.41, -0.31, -0.23, -0.21, -0.26, -0.30,
		-0.30, -0.25, -0.27, -0.37, -0.41, -0.40, -0.26, -0.13, -0.04,
		0.01, 0.04, -0.01, -0.11, 0.04, 0.05,
	}

	studerGainsB = []float64{
		-8.36, -3.08, -1.90, -0.13, 0.30, 0.57, 0.63, 0.20, 0.09, 0.13,
		0.29, 0.34, 1.23, 1.25, 1.24, 1.14, 0.64, 0.42, 0.02, -0.04,
		-0.05, 0.01, 0.05, 0.08, 0.06, 0.03, 0.03, 0.03, 0.05, 0.05,
		0.11, 0.15, 0.11, 0.06, 0.05, 0.03, 0.03, 0.03, 0.04, 0.06,
		0.11, 0.24, 0.35, 0.33,
	}
)

// BuiltinDataset builds the reference dataset for one tuning revision, with
// the Ampex and Studer curves in that order.
func BuiltinDataset(rev Revision) (*Dataset, error) {
	d := NewDataset()
	var err error
	switch rev {
	case RevisionA:
		if err = d.AddCurve(AmpexName, ampexFreqsA, ampexGainsA, AmpexStyle()); err == nil {
			err = d.AddCurve(StuderName, studerFreqsA, studerGainsA, StuderStyle())
		}
	case RevisionB:
		if err = d.AddCurve(AmpexName, machineFreqsB, ampexGainsB, AmpexStyle()); err == nil {
			err = d.AddCurve(StuderName, machineFreqsB, studerGainsB, StuderStyle())
		}
	default:
		return nil, fmt.Errorf("eqdata: unknown revision %d", int(rev))
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
