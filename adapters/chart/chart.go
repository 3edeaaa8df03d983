// Package chart renders figures with go-chart.
package chart

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strings"
	"time"

	"showcase/domain/series"
	"showcase/domain/textstats"
	"showcase/internal/errors"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an output image format
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat accepts svg or png; empty means svg
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	}
	return "", errors.InvalidInput(fmt.Sprintf("unsupported image format %q", s))
}

// ContentType is the HTTP media type of the format
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// text prepares a label for the format. The SVG renderer writes text
// nodes verbatim, so markup in a label must be escaped there.
func (f Format) text(s string) string {
	if f == SVG {
		return html.EscapeString(s)
	}
	return s
}

func (f Format) renderer() gochart.RendererProvider {
	if f == PNG {
		return gochart.PNG
	}
	return gochart.SVG
}

const (
	defaultWidth  = 960
	defaultHeight = 420
	barSpacing    = 4
)

var (
	seriesColor = drawing.ColorFromHex("636EFA")
	barColor    = drawing.ColorFromHex("00CC96")
)

// Figure is one chart of the synthetic series
type Figure struct {
	Title  string         `json:"title"`
	Style  series.Style   `json:"style"`
	Points []series.Point `json:"points"`
	Width  int            `json:"-"`
	Height int            `json:"-"`
}

// NewFigure wraps every point of s in a figure of the given style
func NewFigure(style series.Style, s series.Series) Figure {
	return Figure{
		Title:  style.Title(),
		Style:  style,
		Points: append([]series.Point(nil), s.Points...),
		Width:  defaultWidth,
		Height: defaultHeight,
	}
}

// Render draws the figure
func (f Figure) Render(w io.Writer, format Format) error {
	if len(f.Points) == 0 {
		return errors.InvalidInput("figure has no points")
	}

	var err error
	switch f.Style {
	case series.Bar:
		bars := f.barChart(format)
		err = bars.Render(format.renderer(), w)
	default:
		graph := f.timeChart(format)
		err = graph.Render(format.renderer(), w)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to render %s chart", f.Style)
	}
	return nil
}

// RenderString renders to a string, for inlining SVG in a page
func (f Figure) RenderString(format Format) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// timeChart draws Line and Scatter styles; scatter hides the stroke and
// shows the dots
func (f Figure) timeChart(format Format) gochart.Chart {
	xs := make([]time.Time, len(f.Points))
	ys := make([]float64, len(f.Points))
	for i, p := range f.Points {
		xs[i] = p.Date
		ys[i] = p.Value
	}

	style := gochart.Style{
		StrokeColor: seriesColor,
		StrokeWidth: 2,
	}
	if f.Style == series.Scatter {
		style = gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    4,
			DotColor:    seriesColor,
		}
	}

	return gochart.Chart{
		Title:  format.text(f.Title),
		Width:  f.Width,
		Height: f.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 10},
		},
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeValueFormatterWithFormat("Jan 02"),
		},
		YAxis: gochart.YAxis{Name: "Value"},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    "Value",
				XValues: xs,
				YValues: ys,
				Style:   style,
			},
		},
	}
}

func (f Figure) barChart(format Format) gochart.BarChart {
	bars := make([]gochart.Value, len(f.Points))
	values := make([]float64, len(f.Points))
	for i, p := range f.Points {
		bars[i] = gochart.Value{
			Label: format.text(p.Date.Format("01-02")),
			Value: p.Value,
			Style: gochart.Style{FillColor: seriesColor, StrokeColor: seriesColor},
		}
		values[i] = p.Value
	}
	return newBarChart(format.text(f.Title), f.Width, f.Height, bars, values)
}

// WordChart is the word statistics bar chart of the text page
type WordChart struct {
	Words  []textstats.WordFrequency
	Width  int
	Height int
}

// NewWordChart charts the given frequencies, one bar per word
func NewWordChart(words []textstats.WordFrequency) WordChart {
	return WordChart{Words: words, Width: defaultWidth, Height: defaultHeight}
}

// Render draws the word chart
func (c WordChart) Render(w io.Writer, format Format) error {
	if len(c.Words) == 0 {
		return errors.InvalidInput("no words to chart")
	}
	bars := make([]gochart.Value, len(c.Words))
	values := make([]float64, len(c.Words))
	for i, wf := range c.Words {
		bars[i] = gochart.Value{
			Label: format.text(wf.Word),
			Value: float64(wf.Count),
			Style: gochart.Style{FillColor: barColor, StrokeColor: barColor},
		}
		values[i] = float64(wf.Count)
	}
	graph := newBarChart("Word Statistics", c.Width, c.Height, bars, values)
	if err := graph.Render(format.renderer(), w); err != nil {
		return errors.Wrap(err, "failed to render word chart")
	}
	return nil
}

// RenderString renders to a string
func (c WordChart) RenderString(format Format) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// newBarChart sizes bars to fit the width and anchors them at zero, so
// negative values hang below the axis
func newBarChart(title string, width, height int, bars []gochart.Value, values []float64) gochart.BarChart {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		hi = lo + 1
	}

	barWidth := 4
	if len(bars) > 0 {
		barWidth = (width-120)/len(bars) - barSpacing
	}
	if barWidth < 4 {
		barWidth = 4
	}

	return gochart.BarChart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 10, Right: 10, Bottom: 10},
		},
		BarWidth:     barWidth,
		BarSpacing:   barSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
}
