// eqplotter renders the machine EQ reference chart and writes it to a
// caller-chosen destination.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sandovalmusic/LOWTHD/src/eqdata"
	"github.com/sandovalmusic/LOWTHD/src/eqplot"
)

func main() {
	out := flag.String("out", "", "output PNG path, or '-' for stdout")
	rev := flag.String("rev", "b", "reference data revision: 'a' (design targets) or 'b' (96kHz measurement)")
	width := flag.Int("width", 0, "raster width in pixels (0 = default)")
	height := flag.Int("height", 0, "raster height in pixels (0 = default)")
	dpi := flag.Float64("dpi", 0, "raster DPI (0 = default 150)")
	title := flag.String("title", "", "override the chart title")
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "usage: eqplotter -out <path> [-rev a|b] [-width N] [-height N] [-dpi N] [-title S]")
		os.Exit(2)
	}

	revision, err := parseRevision(*rev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[eqplot] %v\n", err)
		os.Exit(2)
	}

	spec, err := eqplot.ReferenceChartSpec(revision)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[eqplot] building chart spec: %v\n", err)
		os.Exit(1)
	}
	if *title != "" {
		spec.Title = *title
	}
	spec.Width = *width
	spec.Height = *height
	spec.DPI = *dpi

	var w io.Writer
	if *out == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[eqplot] %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := eqplot.RenderPNG(spec, w); err != nil {
		fmt.Fprintf(os.Stderr, "[eqplot] render failed: %v\n", err)
		os.Exit(1)
	}
	if *out != "-" {
		fmt.Printf("[eqplot] wrote %s (rev %s, %d curves, %d callouts)\n", *out, revision, len(spec.Curves), len(spec.Annotations))
	}
}

func parseRevision(s string) (eqdata.Revision, error) {
	switch s {
	case "a", "A":
		return eqdata.RevisionA, nil
	case "b", "B":
		return eqdata.RevisionB, nil
	}
	return 0, fmt.Errorf("unknown revision %q (want 'a' or 'b')", s)
}
