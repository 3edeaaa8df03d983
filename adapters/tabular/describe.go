package tabular

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
)

// NumericSummary is one column of the numeric describe table.
// Statistics that are undefined for the column (no values, a standard
// deviation of a single value, or a result that overflows) are nil.
type NumericSummary struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	Q25    *float64 `json:"25%"`
	Q50    *float64 `json:"50%"`
	Q75    *float64 `json:"75%"`
	Max    *float64 `json:"max"`
}

// TextSummary is one column of the describe table of a table without
// numeric columns
type TextSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Unique int    `json:"unique"`
	Top    string `json:"top,omitempty"`
	Freq   int    `json:"freq"`
}

// Description is the describe table. Numeric columns are described when
// the table has any; otherwise every column is described as text.
type Description struct {
	Kind    Kind             `json:"kind"`
	Numeric []NumericSummary `json:"numeric,omitempty"`
	Text    []TextSummary    `json:"text,omitempty"`
}

// NullCount is the number of missing cells in one column
type NullCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// Summary is what the file page renders for an upload
type Summary struct {
	Rows       int         `json:"rows"`
	Columns    int         `json:"columns"`
	Preview    *Table      `json:"preview"`
	Kinds      []Kind      `json:"kinds"`
	Describe   Description `json:"describe"`
	NullCounts []NullCount `json:"null_counts"`
}

// Summarize builds the preview, describe table and null counts
func Summarize(t *Table, previewRows int) *Summary {
	return &Summary{
		Rows:       t.NumRows(),
		Columns:    t.NumColumns(),
		Preview:    t.Head(previewRows),
		Kinds:      ColumnKinds(t),
		Describe:   Describe(t),
		NullCounts: NullCounts(t),
	}
}

// decimalNumber is plain decimal notation with an optional exponent.
// Spellings like inf, Infinity or 0x1p-2 are text.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber reads a cell written in decimal notation. Magnitudes beyond
// the float64 range come back as ±Inf.
func parseNumber(raw string) (float64, bool) {
	if !decimalNumber.MatchString(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// ColumnKinds infers each column's kind. A column is numeric when every
// non-missing cell is a decimal number; a column with no values at all is
// numeric too, as its values are all NaN.
func ColumnKinds(t *Table) []Kind {
	kinds := make([]Kind, t.NumColumns())
	for i := range kinds {
		kinds[i] = KindNumeric
		for _, c := range t.Column(i) {
			if c.Missing {
				continue
			}
			if _, ok := parseNumber(c.Raw); !ok {
				kinds[i] = KindText
				break
			}
		}
	}
	return kinds
}

// NullCounts counts missing cells per column, in column order
func NullCounts(t *Table) []NullCount {
	counts := make([]NullCount, t.NumColumns())
	for i, name := range t.Headers {
		counts[i].Column = name
		for _, row := range t.Rows {
			if row[i].Missing {
				counts[i].Count++
			}
		}
	}
	return counts
}

// Describe summarizes the numeric columns, or all columns as text when
// none is numeric
func Describe(t *Table) Description {
	kinds := ColumnKinds(t)

	var numeric []NumericSummary
	for i, kind := range kinds {
		if kind == KindNumeric {
			numeric = append(numeric, describeNumeric(t.Headers[i], t.Column(i)))
		}
	}
	if len(numeric) > 0 {
		return Description{Kind: KindNumeric, Numeric: numeric}
	}

	text := make([]TextSummary, 0, len(kinds))
	for i := range kinds {
		text = append(text, describeText(t.Headers[i], t.Column(i)))
	}
	return Description{Kind: KindText, Text: text}
}

func describeNumeric(name string, cells []Cell) NumericSummary {
	values := make(stats.Float64Data, 0, len(cells))
	for _, c := range cells {
		if c.Missing {
			continue
		}
		v, ok := parseNumber(c.Raw)
		if !ok {
			continue
		}
		values = append(values, v)
	}

	summary := NumericSummary{Column: name, Count: len(values)}
	if len(values) == 0 {
		return summary
	}

	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	summary.Mean = finite(mean)
	summary.Min = finite(min)
	summary.Max = finite(max)

	if len(values) > 1 {
		std, _ := stats.StandardDeviationSample(values)
		summary.Std = finite(std)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	summary.Q25 = finite(linearPercentile(sorted, 0.25))
	summary.Q50 = finite(linearPercentile(sorted, 0.50))
	summary.Q75 = finite(linearPercentile(sorted, 0.75))

	return summary
}

func describeText(name string, cells []Cell) TextSummary {
	summary := TextSummary{Column: name}
	counts := make(map[string]int)
	var order []string
	for _, c := range cells {
		if c.Missing {
			continue
		}
		summary.Count++
		if counts[c.Raw] == 0 {
			order = append(order, c.Raw)
		}
		counts[c.Raw]++
	}
	summary.Unique = len(order)

	// most frequent value; ties go to the one seen first
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 0 {
		summary.Top = order[0]
		summary.Freq = counts[order[0]]
	}
	return summary
}

// linearPercentile interpolates between the two closest ranks at
// position p*(n-1), the default of common dataframe libraries. sorted must
// be non-empty and ascending.
func linearPercentile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// finite returns nil for NaN and ±Inf
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
