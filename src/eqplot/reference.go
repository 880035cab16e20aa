package eqplot

import "github.com/sandovalmusic/LOWTHD/src/eqdata"

// ReferenceChartSpec assembles the canonical two-machine comparison chart for
// one tuning revision: both response curves, the feature callouts, and the
// axis window the measurement plots use. Callers may adjust the returned spec
// (title, size, output ticks) before rendering.
func ReferenceChartSpec(rev eqdata.Revision) (ChartSpec, error) {
	ds, err := eqdata.BuiltinDataset(rev)
	if err != nil {
		return ChartSpec{}, err
	}
	return ChartSpec{
		Title:       "Machine EQ Frequency Response (Jack Endino Measurements)",
		Curves:      ds.Curves(),
		Annotations: referenceAnnotations(rev),
		XMin:        20,
		XMax:        20000,
		YMin:        -10,
		YMax:        4,
	}, nil
}

// referenceAnnotations returns the feature callouts for one revision. Colors
// match the curve each feature belongs to. Values track the tables: the rev A
// design targets round where the rev B measurement does not.
func referenceAnnotations(rev eqdata.Revision) []Annotation {
	if rev == eqdata.RevisionA {
		return []Annotation{
			{Label: "Head Bump\n+1.15dB @ 40Hz", AnchorFreq: 40, AnchorGain: 1.15, LabelFreq: 80, LabelGain: 2.5, Color: eqdata.AmpexColor},
			{Label: "Head Bump 1\n+0.55dB @ 49.5Hz", AnchorFreq: 49.5, AnchorGain: 0.55, LabelFreq: 90, LabelGain: 2.0, Color: eqdata.StuderColor},
			{Label: "Head Bump 2\n+1.2dB @ 110Hz", AnchorFreq: 110, AnchorGain: 1.2, LabelFreq: 200, LabelGain: 2.5, Color: eqdata.StuderColor},
			{Label: "18dB/oct HP\n-2dB @ 30Hz", AnchorFreq: 30, AnchorGain: -2.0, LabelFreq: 50, LabelGain: -4, Color: eqdata.StuderColor},
			{Label: "Mid dip\n-0.5dB @ 350Hz", AnchorFreq: 350, AnchorGain: -0.5, LabelFreq: 600, LabelGain: -2, Color: eqdata.AmpexColor},
		}
	}
	return []Annotation{
		{Label: "Head Bump\n+1.15dB @ 40Hz", AnchorFreq: 40, AnchorGain: 1.15, LabelFreq: 80, LabelGain: 2.5, Color: eqdata.AmpexColor},
		{Label: "Head Bump 1\n+0.6dB @ 50Hz", AnchorFreq: 50, AnchorGain: 0.63, LabelFreq: 90, LabelGain: 2.0, Color: eqdata.StuderColor},
		{Label: "Head Bump 2\n+1.24dB @ 110Hz", AnchorFreq: 110, AnchorGain: 1.24, LabelFreq: 200, LabelGain: 2.5, Color: eqdata.StuderColor},
		{Label: "18dB/oct HP\n-1.9dB @ 30Hz", AnchorFreq: 30, AnchorGain: -1.90, LabelFreq: 50, LabelGain: -4, Color: eqdata.StuderColor},
		{Label: "Mid dip\n-0.46dB @ 350Hz", AnchorFreq: 350, AnchorGain: -0.46, LabelFreq: 600, LabelGain: -2, Color: eqdata.AmpexColor},
		{Label: "HF rise\n+0.35dB @ 20kHz", AnchorFreq: 20000, AnchorGain: 0.35, LabelFreq: 8000, LabelGain: 1.5, Color: eqdata.StuderColor},
	}
}
