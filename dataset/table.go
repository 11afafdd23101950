// Package dataset loads comma-separated files into column-oriented tables.
//
// A Table keeps every cell as its raw string until a caller asks for a
// numeric view, so categorical columns pass through untouched and parse
// failures are reported against the column and row that caused them.
package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/pkg/errors"
)

// Table is a rectangular, column-oriented view of a loaded file.
type Table struct {
	names   []string
	index   []string
	columns [][]string
}

// ReadOption configures ReadCSV.
type ReadOption func(*readConfig)

type readConfig struct {
	indexColumn int
}

// WithIndexColumn treats the given zero-based column as the row index instead
// of a data column.
func WithIndexColumn(col int) ReadOption {
	return func(c *readConfig) {
		c.indexColumn = col
	}
}

// ReadCSV loads a comma-separated file with a header row. The whole file is
// read before returning; any malformed row fails the load.
func ReadCSV(path string, opts ...ReadOption) (*Table, error) {
	cfg := readConfig{indexColumn: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadCSV: opening %s", path)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "ReadCSV: parsing %s", path)
	}
	if len(records) < 1 {
		return nil, errors.NewModelError("ReadCSV", "no header row in "+path, errors.ErrEmptyData)
	}

	header := records[0]
	t := &Table{}
	for j, name := range header {
		if j == cfg.indexColumn {
			continue
		}
		t.names = append(t.names, name)
		t.columns = append(t.columns, make([]string, 0, len(records)-1))
	}

	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, errors.NewDimensionError("ReadCSV", len(header), len(rec), 1)
		}
		col := 0
		for j, cell := range rec {
			if j == cfg.indexColumn {
				t.index = append(t.index, cell)
				continue
			}
			t.columns[col] = append(t.columns[col], strings.TrimSpace(cell))
			col++
		}
	}

	return t, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0])
}

// NumCols returns the number of data columns, excluding any index column.
func (t *Table) NumCols() int {
	return len(t.columns)
}

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Index returns the row labels, or nil when no index column was configured.
func (t *Table) Index() []string {
	if t.index == nil {
		return nil
	}
	labels := make([]string, len(t.index))
	copy(labels, t.index)
	return labels
}

func (t *Table) column(name string) ([]string, error) {
	for j, n := range t.names {
		if n == name {
			return t.columns[j], nil
		}
	}
	return nil, errors.NewValueError("Table.Column", "no such column: "+name)
}

// Column returns the raw string values of a column.
func (t *Table) Column(name string) ([]string, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(col))
	copy(out, col)
	return out, nil
}

// Floats parses a column as float64 values. An empty or unparseable cell
// fails with the row that caused it; use DropNA first if missing values are
// expected.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, cell := range col {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errors.NewValueError("Table.Floats",
				"column "+name+", row "+strconv.Itoa(i)+": cannot parse "+strconv.Quote(cell))
		}
		out[i] = v
	}
	return out, nil
}

// DropNA returns a new table without the rows that have an empty cell in any
// of the given columns. With no columns given, all columns are checked.
func (t *Table) DropNA(cols ...string) (*Table, error) {
	check := make([][]string, 0, len(cols))
	if len(cols) == 0 {
		check = t.columns
	} else {
		for _, name := range cols {
			col, err := t.column(name)
			if err != nil {
				return nil, err
			}
			check = append(check, col)
		}
	}

	keep := make([]int, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		complete := true
		for _, col := range check {
			if col[i] == "" {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	out := &Table{names: append([]string(nil), t.names...)}
	if t.index != nil {
		out.index = make([]string, 0, len(keep))
		for _, i := range keep {
			out.index = append(out.index, t.index[i])
		}
	}
	out.columns = make([][]string, len(t.columns))
	for j, col := range t.columns {
		out.columns[j] = make([]string, 0, len(keep))
		for _, i := range keep {
			out.columns[j] = append(out.columns[j], col[i])
		}
	}
	return out, nil
}

// Matrix assembles the given numeric columns into a feature matrix, one
// column per name in the given order.
func (t *Table) Matrix(cols ...string) (*mat.Dense, error) {
	if len(cols) == 0 {
		return nil, errors.NewModelError("Table.Matrix", "no columns selected", errors.ErrEmptyData)
	}
	n := t.NumRows()
	if n == 0 {
		return nil, errors.NewModelError("Table.Matrix", "empty table", errors.ErrEmptyData)
	}
	X := mat.NewDense(n, len(cols), nil)
	for j, name := range cols {
		vals, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			X.Set(i, j, v)
		}
	}
	return X, nil
}

// Vector parses a single numeric column into a column vector.
func (t *Table) Vector(col string) (*mat.VecDense, error) {
	vals, err := t.Floats(col)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, errors.NewModelError("Table.Vector", "empty column "+col, errors.ErrEmptyData)
	}
	return mat.NewVecDense(len(vals), vals), nil
}
