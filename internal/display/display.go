/*
PURPOSE:
  Shows a rendered chart in an interactive desktop window.

REQUIREMENTS:
  User-specified:
  - plot-csvs displays its chart interactively instead of saving it.

  Implementation-discovered:
  - fyne owns the main goroutine until the window closes; Show blocks.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/plot-csvs (injected into internal/cli as the presenter)
  - Satisfies: internal/engine.Presenter

ERROR HANDLING:
  - None; fyne reports driver failures itself.

USAGE:
  err := display.Window{AppID: "io.runplot.plotcsvs"}.Show(title, img)

SELF-HEALING INSTRUCTIONS:
  - On a headless host the GL driver cannot start; use plot-csvs --out.

RELATED FILES:
  - internal/plot/chart.go
  - cmd/plot-csvs/main.go
*/

package display

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Window presents charts in a fyne window.
type Window struct {
	AppID string
}

// Show opens a window sized to img and blocks until it is closed.
func (w Window) Show(title string, img image.Image) error {
	a := app.NewWithID(w.AppID)
	win := a.NewWindow(title)

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	size := img.Bounds().Size()
	c.SetMinSize(fyne.NewSize(float32(size.X)/2, float32(size.Y)/2))

	win.SetContent(c)
	win.Resize(fyne.NewSize(float32(size.X), float32(size.Y)))
	win.ShowAndRun()
	return nil
}
