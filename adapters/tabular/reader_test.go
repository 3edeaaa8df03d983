package tabular

import (
	"strings"
	"testing"

	"showcase/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("name,age,score\nann,31,9.5\nbob,,7\ncid,27,NA\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age", "score"}, table.Headers)
	require.Equal(t, 3, table.NumRows())
	assert.Equal(t, Cell{Raw: "ann"}, table.Rows[0][0])
	assert.True(t, table.Rows[1][1].Missing)
	assert.Equal(t, Cell{Raw: "NA", Missing: true}, table.Rows[2][2])
}

func TestReadCSVPadsShortRows(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("a,b,c\n1\n1,2,3\n"))
	require.NoError(t, err)

	require.Len(t, table.Rows[0], 3)
	assert.False(t, table.Rows[0][0].Missing)
	assert.True(t, table.Rows[0][1].Missing)
	assert.True(t, table.Rows[0][2].Missing)
}

func TestReadCSVRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"too many fields": "a,b\n1,2,3\n",
		"bare quote":      "a,b\n1,\"unterminated\n",
		"empty":           "",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(input))
			require.Error(t, err)
			assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
		})
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("x,y\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, table.NumColumns())
	assert.Zero(t, table.NumRows())
}

func TestNormalizeHeaders(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(" id ,,id,id,Unnamed: 1\n1,2,3,4,5\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "Unnamed: 1", "id.1", "id.2", "Unnamed: 1.1"}, table.Headers)
}

func TestIsMissing(t *testing.T) {
	for _, raw := range []string{"", " ", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "#N/A", "<NA>"} {
		assert.True(t, IsMissing(raw), "%q", raw)
	}
	for _, raw := range []string{"0", "none at all", "NAB", "-"} {
		assert.False(t, IsMissing(raw), "%q", raw)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatXLSX, DetectFormat("Report.XLSX"))
	assert.Equal(t, FormatCSV, DetectFormat("data.csv"))
	assert.Equal(t, FormatCSV, DetectFormat("noext"))
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"city", "temp"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Oslo", 4.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"Lima"}))
	require.NoError(t, f.SetCellValue(sheet, "C4", "stray"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := Read("weather.xlsx", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "temp", "Unnamed: 2"}, table.Headers)
	require.Equal(t, 3, table.NumRows())
	assert.Equal(t, "4.5", table.Rows[0][1].Raw)
	assert.True(t, table.Rows[1][1].Missing)
	assert.Equal(t, "stray", table.Rows[2][2].Raw)
	assert.True(t, table.Rows[2][0].Missing)
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	_, err := Read("broken.xlsx", []byte("not a zip"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}
