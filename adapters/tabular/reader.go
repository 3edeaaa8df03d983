// Package tabular parses uploaded CSV and XLSX files into tables and
// summarizes them.
package tabular

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"showcase/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Format is the file format of an upload
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the format from the file name; anything that is not
// .xlsx is read as CSV.
func DetectFormat(fileName string) Format {
	if strings.ToLower(filepath.Ext(fileName)) == ".xlsx" {
		return FormatXLSX
	}
	return FormatCSV
}

// naValues are the cell texts treated as missing, matching what common
// dataframe readers recognise by default.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsMissing reports whether a cell text denotes a missing value
func IsMissing(raw string) bool {
	return naValues[strings.TrimSpace(raw)]
}

// Read parses data according to the format implied by fileName
func Read(fileName string, data []byte) (*Table, error) {
	switch DetectFormat(fileName) {
	case FormatXLSX:
		return ReadXLSX(bytes.NewReader(data))
	default:
		return ReadCSV(bytes.NewReader(data))
	}
}

// ReadCSV parses CSV text. Rows shorter than the header are padded with
// missing cells; rows longer than the header are rejected.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if stderrors.As(err, &parseErr) {
			return nil, errors.ParseError(fmt.Sprintf("malformed CSV at line %d", parseErr.Line), err)
		}
		return nil, errors.ParseError("failed to read CSV", err)
	}
	log.Printf("[Tabular] CSV read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return processRows(FormatCSV, rows)
}

// ReadXLSX parses the first worksheet of an Excel workbook
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.ParseError("failed to open Excel workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.ParseError("workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseError(fmt.Sprintf("failed to read sheet %q", sheets[0]), err)
	}
	log.Printf("[Tabular] sheet %q read (%d rows)", sheets[0], len(rows))

	return processRows(FormatXLSX, rows)
}

// processRows converts raw string rows into a Table
func processRows(format Format, rows [][]string) (*Table, error) {
	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return nil, errors.ParseError("no columns to parse from file", nil)
	}

	headerRow := rows[0]
	width := len(headerRow)
	if format == FormatXLSX {
		// spreadsheets may hold data to the right of the last titled column
		for _, row := range rows[1:] {
			width = max(width, len(row))
		}
	}
	headers := normalizeHeaders(headerRow, width)

	dataRows := make([][]Cell, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > width {
			// row numbers are 1-based and count the header
			return nil, errors.ParseError(
				fmt.Sprintf("expected %d fields in row %d, saw %d", width, i+2, len(row)), nil)
		}

		cells := make([]Cell, width)
		for j := range cells {
			if j < len(row) {
				raw := strings.TrimSpace(row[j])
				cells[j] = Cell{Raw: raw, Missing: IsMissing(raw)}
			} else {
				cells[j] = Cell{Missing: true}
			}
		}
		dataRows = append(dataRows, cells)
	}

	log.Printf("[Tabular] %s processed (%d columns, %d rows)", strings.ToUpper(string(format)), len(headers), len(dataRows))

	return &Table{Headers: headers, Rows: dataRows}, nil
}

// normalizeHeaders trims names, names blank columns "Unnamed: <i>" and
// suffixes repeated names with ".1", ".2", ...
func normalizeHeaders(row []string, width int) []string {
	headers := make([]string, width)
	seen := make(map[string]int, width)
	taken := make(map[string]bool, width)
	for i := range headers {
		name := ""
		if i < len(row) {
			name = strings.TrimSpace(row[i])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		unique := name
		for taken[unique] {
			seen[name]++
			unique = fmt.Sprintf("%s.%d", name, seen[name])
		}
		taken[unique] = true
		headers[i] = unique
	}
	return headers
}

// dropBlankRows removes rows without any cell. Rows of empty cells stay:
// they are rows of missing values.
func dropBlankRows(rows [][]string) [][]string {
	kept := rows[:0:0]
	for _, row := range rows {
		if len(row) > 0 {
			kept = append(kept, row)
		}
	}
	return kept
}
