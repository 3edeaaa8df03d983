package chart

import (
	"bytes"
	"testing"
	"time"

	"showcase/domain/series"
	"showcase/domain/textstats"
	"showcase/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"
)

func testSeries(t *testing.T) series.Series {
	t.Helper()
	s, err := series.Generate(series.NewSource(5), 30, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return s
}

func TestFigureKeepsEveryPoint(t *testing.T) {
	s := testSeries(t)
	for _, style := range series.Styles() {
		fig := NewFigure(style, s)
		assert.Equal(t, style.Title(), fig.Title)
		assert.Equal(t, s.Points, fig.Points, "style %s", style)

		switch style {
		case series.Bar:
			bars := fig.barChart(SVG)
			require.Len(t, bars.Bars, 30)
			assert.Equal(t, s.Points[7].Value, bars.Bars[7].Value)
			assert.Equal(t, "01-08", bars.Bars[7].Label)
		default:
			graph := fig.timeChart(SVG)
			require.Len(t, graph.Series, 1)
			ts := graph.Series[0].(gochart.TimeSeries)
			assert.Len(t, ts.XValues, 30)
			assert.Equal(t, s.Values(), ts.YValues)
		}
	}
}

func TestScatterHidesStroke(t *testing.T) {
	fig := NewFigure(series.Scatter, testSeries(t))
	ts := fig.timeChart(SVG).Series[0].(gochart.TimeSeries)
	assert.Less(t, ts.Style.StrokeWidth, 0.0)
	assert.Greater(t, ts.Style.DotWidth, 0.0)
}

func TestFigureRender(t *testing.T) {
	s := testSeries(t)
	for _, style := range series.Styles() {
		svg, err := NewFigure(style, s).RenderString(SVG)
		require.NoError(t, err, "style %s", style)
		assert.Contains(t, svg, "<svg")
		assert.Contains(t, svg, style.Title())
	}

	var png bytes.Buffer
	require.NoError(t, NewFigure(series.Line, s).Render(&png, PNG))
	assert.Equal(t, []byte("\x89PNG"), png.Bytes()[:4])
}

func TestFigureRenderEmpty(t *testing.T) {
	_, err := NewFigure(series.Line, series.Series{}).RenderString(SVG)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestWordChart(t *testing.T) {
	words := []textstats.WordFrequency{{Word: "go", Count: 3}, {Word: "chart", Count: 1}}
	svg, err := NewWordChart(words).RenderString(SVG)
	require.NoError(t, err)
	assert.Contains(t, svg, "Word Statistics")

	_, err = NewWordChart(nil).RenderString(SVG)
	assert.Error(t, err)
}

func TestWordChartEscapesMarkup(t *testing.T) {
	words := []textstats.WordFrequency{{Word: "<img/src=x/onerror=alert(1)>", Count: 2}, {Word: "a&b", Count: 1}}
	svg, err := NewWordChart(words).RenderString(SVG)
	require.NoError(t, err)
	assert.NotContains(t, svg, "<img")
	assert.Contains(t, svg, "&lt;img/src=x/onerror=alert(1)&gt;")
	assert.NotContains(t, svg, "a&b")

	var png bytes.Buffer
	require.NoError(t, NewWordChart(words).Render(&png, PNG))
	assert.Equal(t, "a&b", PNG.text("a&b"))
}

func TestNewBarChartRange(t *testing.T) {
	two := []gochart.Value{{Label: "a"}, {Label: "b"}}
	bc := newBarChart("t", 960, 420, two, []float64{-2, 3})
	rng := bc.YAxis.Range.(*gochart.ContinuousRange)
	assert.Equal(t, -2.0, rng.Min)
	assert.Equal(t, 3.0, rng.Max)

	flat := newBarChart("t", 960, 420, two, []float64{0, 0})
	assert.Equal(t, 1.0, flat.YAxis.Range.(*gochart.ContinuousRange).Max)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, SVG, f)
	f, err = ParseFormat("PNG")
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.ContentType())
	_, err = ParseFormat("gif")
	assert.Error(t, err)
}
