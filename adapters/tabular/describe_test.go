package tabular

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, csv string) *Table {
	t.Helper()
	table, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return table
}

func TestDescribeNumeric(t *testing.T) {
	table := mustRead(t, "label,x,y\na,1,10\nb,2,\nc,3,30\nd,4,40\n")
	desc := Describe(table)

	require.Equal(t, KindNumeric, desc.Kind)
	require.Len(t, desc.Numeric, 2)

	x := desc.Numeric[0]
	assert.Equal(t, "x", x.Column)
	assert.Equal(t, 4, x.Count)
	assert.InDelta(t, 2.5, *x.Mean, 1e-12)
	assert.InDelta(t, 1.2909944487358056, *x.Std, 1e-12)
	assert.Equal(t, 1.0, *x.Min)
	assert.InDelta(t, 1.75, *x.Q25, 1e-12)
	assert.InDelta(t, 2.5, *x.Q50, 1e-12)
	assert.InDelta(t, 3.25, *x.Q75, 1e-12)
	assert.Equal(t, 4.0, *x.Max)

	y := desc.Numeric[1]
	assert.Equal(t, 3, y.Count)
	assert.InDelta(t, 80.0/3, *y.Mean, 1e-12)
	assert.InDelta(t, 20.0, *y.Q25, 1e-12)
}

func TestDescribeUndefinedStatistics(t *testing.T) {
	table := mustRead(t, "one,none\n5,\n,\n")
	desc := Describe(table)
	require.Len(t, desc.Numeric, 2)

	one := desc.Numeric[0]
	assert.Equal(t, 1, one.Count)
	assert.Nil(t, one.Std)
	assert.Equal(t, 5.0, *one.Q75)

	none := desc.Numeric[1]
	assert.Zero(t, none.Count)
	assert.Nil(t, none.Mean)
	assert.Nil(t, none.Max)
}

func TestColumnKindsRequireDecimalNotation(t *testing.T) {
	table := mustRead(t, "plain,exp,inf,hex,big\n1.5,2e3,inf,0x1p-2,1e400\n-.5,1E-2,Infinity,0x10,2\n")
	assert.Equal(t, []Kind{KindNumeric, KindNumeric, KindText, KindText, KindNumeric}, ColumnKinds(table))
}

func TestDescribeOverflowIsUndefined(t *testing.T) {
	table := mustRead(t, "huge,both\n1e308,1e400\n1e308,-1e400\n")
	desc := Describe(table)
	require.Len(t, desc.Numeric, 2)

	huge := desc.Numeric[0]
	assert.Equal(t, 2, huge.Count)
	assert.Nil(t, huge.Mean, "sum overflows")
	assert.Equal(t, 1e308, *huge.Max)

	both := desc.Numeric[1]
	assert.Nil(t, both.Mean)
	assert.Nil(t, both.Std)
	assert.Nil(t, both.Min)
	assert.Nil(t, both.Max)
}

func TestDescribeTextOnly(t *testing.T) {
	table := mustRead(t, "fruit,color\napple,red\npear,green\napple,\nplum,red\n")
	desc := Describe(table)

	require.Equal(t, KindText, desc.Kind)
	assert.Equal(t, []TextSummary{
		{Column: "fruit", Count: 4, Unique: 3, Top: "apple", Freq: 2},
		{Column: "color", Count: 3, Unique: 2, Top: "red", Freq: 2},
	}, desc.Text)
}

func TestNullCountsMatchMissingCells(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	markers := []string{"", "NA", "null", "1", "x", "2.5"}

	for trial := 0; trial < 20; trial++ {
		// a lone empty field would be a blank line, which CSV readers skip
		cols := 2 + rng.Intn(4)
		rows := rng.Intn(30)

		var b strings.Builder
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "c%d", c)
		}
		b.WriteString("\n")

		expected := make([]int, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c > 0 {
					b.WriteString(",")
				}
				m := markers[rng.Intn(len(markers))]
				if IsMissing(m) {
					expected[c]++
				}
				b.WriteString(m)
			}
			b.WriteString("\n")
		}

		table := mustRead(t, b.String())
		counts := NullCounts(table)
		require.Len(t, counts, cols)
		for c, nc := range counts {
			assert.Equal(t, fmt.Sprintf("c%d", c), nc.Column)
			assert.Equal(t, expected[c], nc.Count, "trial %d column %d", trial, c)
		}
	}
}

func TestSummarize(t *testing.T) {
	var b strings.Builder
	b.WriteString("n\n")
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	summary := Summarize(mustRead(t, b.String()), 5)

	assert.Equal(t, 12, summary.Rows)
	assert.Equal(t, 1, summary.Columns)
	assert.Equal(t, 5, summary.Preview.NumRows())
	assert.Equal(t, "4", summary.Preview.Rows[4][0].Raw)
	assert.Equal(t, []Kind{KindNumeric}, summary.Kinds)
	assert.Equal(t, []NullCount{{Column: "n", Count: 0}}, summary.NullCounts)
}

func TestLinearPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 10.0, linearPercentile(sorted, 0))
	assert.Equal(t, 30.0, linearPercentile(sorted, 0.5))
	assert.Equal(t, 50.0, linearPercentile(sorted, 1))
	assert.InDelta(t, 12.0, linearPercentile(sorted, 0.05), 1e-12)
}
