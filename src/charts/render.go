// Package charts renders magnetometer channels as static line charts against time.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// FigureInches is the edge length of the square figure.
	FigureInches = 100
	// FigureDPI converts FigureInches to pixels.
	FigureDPI = 40

	baseWidth = 1600 // canvas width the go-chart default font sizes suit
)

// Trace is one labelled line on a chart.
type Trace struct {
	Label  string
	Color  drawing.Color
	Values []float64
}

// Options control titling and canvas size.
type Options struct {
	Title        string
	XAxisName    string
	YAxisName    string
	Width        int
	Height       int
	TickRotation float64 // degrees, applied to X tick labels
	YTicks       int     // desired number of Y ticks
}

// DefaultOptions returns the fixed axis naming and the large square canvas.
func DefaultOptions() Options {
	return Options{
		XAxisName:    "Time (UTC)",
		YAxisName:    "Magnetic Field (nT)",
		Width:        FigureInches * FigureDPI,
		Height:       FigureInches * FigureDPI,
		TickRotation: 45,
		YTicks:       12,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.XAxisName == "" {
		o.XAxisName = d.XAxisName
	}
	if o.YAxisName == "" {
		o.YAxisName = d.YAxisName
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.YTicks < 2 {
		o.YTicks = d.YTicks
	}
	return o
}

// fontScale grows text with the canvas so labels stay legible on large figures.
func (o Options) fontScale() float64 {
	return math.Max(1, float64(o.Width)/baseWidth)
}

var gridStyle = chart.Style{
	StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
	StrokeWidth: 1,
}

// Render draws traces against times and returns the rasterized chart.
// Every trace must have one value per timestamp. NaN and Inf samples leave a gap in their
// line. With no timestamps, or no finite sample at all, a placeholder image of the
// requested size is returned instead of a chart.
func Render(times []time.Time, traces []Trace, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	if len(times) == 0 {
		return placeholder(opts.Width, opts.Height, opts.Title), nil
	}
	if len(traces) == 0 {
		return nil, fmt.Errorf("render %q: no traces", opts.Title)
	}
	for _, tr := range traces {
		if len(tr.Values) != len(times) {
			return nil, fmt.Errorf("render %q: trace %s has %d values for %d timestamps", opts.Title, tr.Label, len(tr.Values), len(times))
		}
	}

	scale := opts.fontScale()
	lineWidth := math.Max(1, scale)
	series, legendEntries := buildSeries(times, traces, lineWidth)
	if len(series) == 0 {
		return placeholder(opts.Width, opts.Height, opts.Title), nil
	}

	minT, maxT := timeBounds(times)
	axisFont := chart.DefaultAxisFontSize * scale
	pad := int(16 * scale)
	ch := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontSize: chart.DefaultTitleFontSize * scale},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: pad * 4, Left: pad, Right: pad * 2, Bottom: pad * 4}},
		XAxis: chart.XAxis{
			Name:           opts.XAxisName,
			NameStyle:      chart.Style{FontSize: axisFont},
			Style:          chart.Style{FontSize: axisFont},
			TickStyle:      chart.Style{TextRotationDegrees: opts.TickRotation},
			Ticks:          timeTicks(minT, maxT),
			GridMajorStyle: gridStyle,
			GridMinorStyle: chart.Hidden(),
		},
		YAxis: chart.YAxis{
			Name:           opts.YAxisName,
			NameStyle:      chart.Style{FontSize: axisFont},
			Style:          chart.Style{FontSize: axisFont},
			Ticks:          valueTicks(traces, opts.YTicks),
			GridMajorStyle: gridStyle,
			GridMinorStyle: chart.Hidden(),
		},
		Series: series,
	}
	// The legend reads its entries from a chart holding one labelled series per trace, so
	// the extra runs of a gapped trace are drawn but not listed.
	legendChart := ch
	legendChart.Series = legendEntries
	ch.Elements = []chart.Renderable{chart.Legend(&legendChart, chart.Style{FontSize: 8 * scale})}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", opts.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", opts.Title, err)
	}
	return img, nil
}

// finiteRuns returns [start, end) index ranges of consecutive finite values.
func finiteRuns(values []float64) [][2]int {
	var runs [][2]int
	start := -1
	for i, v := range values {
		finite := !math.IsNaN(v) && !math.IsInf(v, 0)
		switch {
		case finite && start < 0:
			start = i
		case !finite && start >= 0:
			runs = append(runs, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(values)})
	}
	return runs
}

// buildSeries splits every trace at NaN and Inf samples so the line shows a gap there.
// It returns the drawable runs plus one legend entry per trace.
func buildSeries(times []time.Time, traces []Trace, lineWidth float64) (series, legend []chart.Series) {
	for _, tr := range traces {
		st := chart.Style{StrokeColor: tr.Color, StrokeWidth: lineWidth}
		legend = append(legend, chart.TimeSeries{Name: tr.Label, Style: st})
		for _, run := range finiteRuns(tr.Values) {
			rs := st
			if run[1]-run[0] == 1 { // a lone sample has no segment to stroke
				rs.DotColor = tr.Color
				rs.DotWidth = 3 * lineWidth
			}
			series = append(series, chart.TimeSeries{
				Name:    tr.Label,
				XValues: times[run[0]:run[1]],
				YValues: tr.Values[run[0]:run[1]],
				Style:   rs,
			})
		}
	}
	return series, legend
}
