/*
PURPOSE:
  Builds line charts of CSV series and renders them to PNG.

REQUIREMENTS:
  User-specified:
  - Title, X/Y axis labels, one legend entry per series, visible grid.
  - Optional horizontal reference (BKS) line with its own legend entry.

  Implementation-discovered:
  - go-chart refuses zero-width ranges, so single-point or flat data gets a padded range.
  - Each invocation builds its own Chart; nothing is global.
  - A chart with nothing on it still renders its title, axes and grid over a
    unit range. go-chart needs one series, so a hidden placeholder is drawn.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Series
  - Consumed by: internal/display (via Image)

ERROR HANDLING:
  - ErrUnsupportedFormat for image extensions we cannot produce.
  - Render/IO errors are wrapped with context.

USAGE:
  c := plot.New("Combined Plot of CSV Files", "X", "Y", plot.DefaultOptions())
  c.AddSeries(s)
  c.AddReferenceLine(bks, "BKS: 1073.0")
  err := c.Save("runs/X-n101/X-n101.png")

SELF-HEALING INSTRUCTIONS:
  - If go-chart rejects a range ("infinite"/"nan" delta), check bounds() and
    padRange(); series values must be finite before they reach this package.

RELATED FILES:
  - internal/display/display.go
  - internal/csvdata/reader.go

MAINTENANCE:
  - Extend RendererFor() together with config validation of image_ext.
*/

package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/daryltucker/runplot/internal/model"
)

// ErrUnsupportedFormat is returned for image extensions other than .png and .svg.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// RendererFor maps an image file extension to a go-chart renderer.
func RendererFor(ext string) (chart.RendererProvider, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return chart.PNG, nil
	case ".svg":
		return chart.SVG, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorAlternateGray,
}

// Options sizes the rendered image in pixels.
type Options struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultOptions matches a 10x6 inch figure at 100 DPI.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 600}
}

type refLine struct {
	y     float64
	label string
}

// Chart is a single line chart under construction.
type Chart struct {
	title  string
	xLabel string
	yLabel string
	opts   Options
	series []model.Series
	refs   []refLine
}

// New returns an empty chart.
func New(title, xLabel, yLabel string, opts Options) *Chart {
	return &Chart{title: title, xLabel: xLabel, yLabel: yLabel, opts: opts}
}

// AddSeries appends a line series; its name is the legend entry.
func (c *Chart) AddSeries(s model.Series) {
	c.series = append(c.series, s)
}

// AddReferenceLine adds a dashed horizontal line at y.
func (c *Chart) AddReferenceLine(y float64, label string) {
	c.refs = append(c.refs, refLine{y: y, label: label})
}

// SeriesCount returns the number of data series (reference lines excluded).
func (c *Chart) SeriesCount() int { return len(c.series) }

// SeriesNames returns the data series names in insertion order.
func (c *Chart) SeriesNames() []string {
	names := make([]string, len(c.series))
	for i, s := range c.series {
		names[i] = s.Name
	}
	return names
}

// Title returns the chart title.
func (c *Chart) Title() string { return c.title }

// bounds returns the x and y extents of data series and reference lines.
func (c *Chart) bounds() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range c.series {
		for _, p := range s.Points {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		}
	}
	if math.IsInf(xmin, 1) {
		xmin, xmax = 0, 1
	}
	for _, r := range c.refs {
		ymin, ymax = math.Min(ymin, r.y), math.Max(ymax, r.y)
	}
	if math.IsInf(ymin, 1) {
		ymin, ymax = 0, 1
	}
	return xmin, xmax, ymin, ymax
}

// padRange widens a degenerate [lo, hi] so the renderer accepts it.
func padRange(lo, hi float64) *chart.ContinuousRange {
	if hi > lo {
		return nil
	}
	d := math.Max(math.Abs(lo)*0.05, 1)
	return &chart.ContinuousRange{Min: lo - d, Max: hi + d}
}

func (c *Chart) build() *chart.Chart {
	empty := len(c.series) == 0 && len(c.refs) == 0
	xmin, xmax, ymin, ymax := c.bounds()

	grid := chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: 1}
	xAxis := chart.XAxis{Name: c.xLabel, GridMajorStyle: grid}
	yAxis := chart.YAxis{Name: c.yLabel, GridMajorStyle: grid}
	if r := padRange(xmin, xmax); r != nil {
		xAxis.Range = r
		xmin, xmax = r.Min, r.Max
	}
	if r := padRange(ymin, ymax); r != nil {
		yAxis.Range = r
	}
	if empty {
		xAxis.Range = &chart.ContinuousRange{Min: xmin, Max: xmax}
		yAxis.Range = &chart.ContinuousRange{Min: ymin, Max: ymax}
	}

	series := make([]chart.Series, 0, len(c.series)+len(c.refs))
	for i, s := range c.series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.XValues(),
			YValues: s.YValues(),
			Style: chart.Style{
				StrokeColor: palette[i%len(palette)],
				StrokeWidth: 2,
			},
		})
	}
	for _, r := range c.refs {
		series = append(series, chart.ContinuousSeries{
			Name:    r.label,
			XValues: []float64{xmin, xmax},
			YValues: []float64{r.y, r.y},
			Style: chart.Style{
				StrokeColor:     chart.ColorRed,
				StrokeWidth:     2,
				StrokeDashArray: []float64{6, 4},
			},
		})
	}

	if empty {
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xmin, xmax},
			YValues: []float64{ymin, ymax},
			Style:   chart.Style{Hidden: true, StrokeColor: chart.ColorTransparent},
		})
	}

	ch := &chart.Chart{
		Title:      c.title,
		Width:      c.opts.Width,
		Height:     c.opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	if !empty {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
	return ch
}

// Render writes the chart as PNG to w.
func (c *Chart) Render(w io.Writer) error {
	return c.render(chart.PNG, w)
}

func (c *Chart) render(rp chart.RendererProvider, w io.Writer) error {
	if err := c.build().Render(rp, w); err != nil {
		return fmt.Errorf("render %q: %w", c.title, err)
	}
	return nil
}

// Image renders the chart and decodes it into an image.
func (c *Chart) Image() (image.Image, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return img, nil
}

// Save renders the chart to path, as PNG or SVG depending on its extension.
func (c *Chart) Save(path string) error {
	rp, err := RendererFor(filepath.Ext(path))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.render(rp, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
