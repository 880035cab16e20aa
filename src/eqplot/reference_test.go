package eqplot

import (
	"testing"

	"github.com/sandovalmusic/LOWTHD/src/eqdata"
)

func TestReferenceChartSpecRevB(t *testing.T) {
	spec, err := ReferenceChartSpec(eqdata.RevisionB)
	if err != nil {
		t.Fatalf("ReferenceChartSpec: %v", err)
	}
	if len(spec.Curves) != 2 {
		t.Fatalf("expected 2 curves, got %d", len(spec.Curves))
	}
	if len(spec.Annotations) != 6 {
		t.Fatalf("expected 6 callouts, got %d", len(spec.Annotations))
	}
	if spec.XMin != 20 || spec.XMax != 20000 || spec.YMin != -10 || spec.YMax != 4 {
		t.Fatalf("unexpected axis window: x [%g,%g] y [%g,%g]", spec.XMin, spec.XMax, spec.YMin, spec.YMax)
	}
	if _, err := Render(spec); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestReferenceChartSpecRevA(t *testing.T) {
	spec, err := ReferenceChartSpec(eqdata.RevisionA)
	if err != nil {
		t.Fatalf("ReferenceChartSpec: %v", err)
	}
	// rev A predates the HF rise measurement, so it has one fewer callout
	if len(spec.Annotations) != 5 {
		t.Fatalf("expected 5 callouts, got %d", len(spec.Annotations))
	}
	if _, err := Render(spec); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestReferenceCalloutColorsMatchCurves(t *testing.T) {
	spec, err := ReferenceChartSpec(eqdata.RevisionB)
	if err != nil {
		t.Fatalf("ReferenceChartSpec: %v", err)
	}
	curveColors := map[[4]uint8]bool{}
	for _, c := range spec.Curves {
		col := c.Style.Color
		curveColors[[4]uint8{col.R, col.G, col.B, col.A}] = true
	}
	for _, a := range spec.Annotations {
		key := [4]uint8{a.Color.R, a.Color.G, a.Color.B, a.Color.A}
		if !curveColors[key] {
			t.Fatalf("callout %q colored %v, matching no curve", a.Label, a.Color)
		}
	}
}

func TestReferenceCalloutsAnchorOnSamples(t *testing.T) {
	for _, rev := range []eqdata.Revision{eqdata.RevisionA, eqdata.RevisionB} {
		spec, err := ReferenceChartSpec(rev)
		if err != nil {
			t.Fatalf("rev %s: %v", rev, err)
		}
		for _, a := range spec.Annotations {
			found := false
			for _, c := range spec.Curves {
				for _, s := range c.Samples {
					if s.Frequency == a.AnchorFreq {
						found = true
					}
				}
			}
			if !found {
				t.Fatalf("rev %s: callout %q anchors at %g Hz, off every sample grid", rev, a.Label, a.AnchorFreq)
			}
		}
	}
}
