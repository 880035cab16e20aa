// eqviewer shows the rendered machine EQ chart in a window, with a revision
// selector and PNG export.
package main

import (
	"image"
	"image/png"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sandovalmusic/LOWTHD/src/eqdata"
	"github.com/sandovalmusic/LOWTHD/src/eqplot"
)

const (
	revALabel = "Rev A (design targets)"
	revBLabel = "Rev B (96kHz measurement)"
)

func main() {
	a := app.NewWithID("com.sandovalmusic.lowthd.eqviewer")
	w := a.NewWindow("Machine EQ Curves")

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain

	var current image.Image
	render := func(rev eqdata.Revision) {
		spec, err := eqplot.ReferenceChartSpec(rev)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		rendered, err := eqplot.Render(spec)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		current = rendered
		img.Image = rendered
		img.Refresh()
	}

	revSelect := widget.NewSelect([]string{revALabel, revBLabel}, func(s string) {
		if strings.HasPrefix(s, "Rev A") {
			render(eqdata.RevisionA)
		} else {
			render(eqdata.RevisionB)
		}
	})

	export := widget.NewButton("Export PNG…", func() {
		if current == nil {
			dialog.ShowInformation("Export", "No chart to export.", w)
			return
		}
		fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer wc.Close()
			_ = png.Encode(wc, current)
		}, w)
		fs.SetFileName("MachineEQ_Curves.png")
		fs.Show()
	})

	w.SetContent(container.NewBorder(container.NewHBox(revSelect, export), nil, nil, nil, img))
	w.Resize(fyne.NewSize(1100, 600))
	revSelect.SetSelected(revBLabel)
	w.ShowAndRun()
}
