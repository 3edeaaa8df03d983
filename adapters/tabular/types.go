package tabular

// Cell is one parsed value. Missing cells keep their raw text so previews
// can show what the file contained.
type Cell struct {
	Raw     string `json:"raw"`
	Missing bool   `json:"missing"`
}

// Table is a parsed upload. Every row has exactly len(Headers) cells.
type Table struct {
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"rows"`
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns
func (t *Table) NumColumns() int {
	return len(t.Headers)
}

// Column returns the cells of column i, top to bottom
func (t *Table) Column(i int) []Cell {
	cells := make([]Cell, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = row[i]
	}
	return cells
}

// Head returns a table holding the first n rows
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Headers: t.Headers, Rows: t.Rows[:n]}
}

// Kind is the inferred type of a column
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)
