// Package series generates the synthetic time series shown on the
// visualization page.
package series

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"showcase/internal/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Point is one (date, value) pair
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is an ordered run of daily points
type Series struct {
	Points []Point `json:"points"`
}

// Len returns the number of points
func (s Series) Len() int {
	return len(s.Points)
}

// Values returns the y values
func (s Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// Generate builds a random walk of n daily points starting at start: the
// value at day i is the sum of the first i+1 standard normal draws.
func Generate(src rand.Source, n int, start time.Time) (Series, error) {
	if n <= 0 {
		return Series{}, errors.InvalidInput(fmt.Sprintf("point count must be positive, got %d", n))
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	steps := make([]float64, n)
	for i := range steps {
		steps[i] = normal.Rand()
	}
	walk := floats.CumSum(make([]float64, n), steps)

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	points := make([]Point, n)
	for i, v := range walk {
		points[i] = Point{Date: day.AddDate(0, 0, i), Value: v}
	}
	return Series{Points: points}, nil
}

// NewSource returns a random source. A zero seed draws one from the clock,
// so every request sees a fresh walk.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Style is how a series is drawn
type Style string

const (
	Line    Style = "Line"
	Bar     Style = "Bar"
	Scatter Style = "Scatter"
)

// Styles lists the chart styles in menu order
func Styles() []Style {
	return []Style{Line, Bar, Scatter}
}

// ParseStyle matches a style name case-insensitively; empty means Line
func ParseStyle(s string) (Style, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Line, nil
	}
	for _, style := range Styles() {
		if strings.EqualFold(string(style), s) {
			return style, nil
		}
	}
	return "", errors.InvalidInput(fmt.Sprintf("unknown chart type %q", s))
}

// Title is the chart heading for the style
func (s Style) Title() string {
	switch s {
	case Bar:
		return "Interactive Bar Chart"
	case Scatter:
		return "Interactive Scatter Plot"
	default:
		return "Interactive Line Chart"
	}
}
