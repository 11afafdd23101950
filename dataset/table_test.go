package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statlearn/statlearn/pkg/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSVWithIndexColumn(t *testing.T) {
	path := writeCSV(t, ",TV,radio,sales\n1,230.1,37.8,22.1\n2,44.5,39.3,10.4\n")

	table, err := ReadCSV(path, WithIndexColumn(0))
	require.NoError(t, err)

	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, 3, table.NumCols())
	assert.Equal(t, []string{"TV", "radio", "sales"}, table.Columns())
	assert.Equal(t, []string{"1", "2"}, table.Index())

	tv, err := table.Floats("TV")
	require.NoError(t, err)
	assert.Equal(t, []float64{230.1, 44.5}, tv)
}

func TestReadCSVNoIndex(t *testing.T) {
	path := writeCSV(t, "survived,sex\n1,female\n0,male\n")

	table, err := ReadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 2, table.NumRows())
	assert.Nil(t, table.Index())

	sex, err := table.Column("sex")
	require.NoError(t, err)
	assert.Equal(t, []string{"female", "male"}, sex)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestReadCSVRaggedRow(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\n3\n")
	_, err := ReadCSV(path)
	require.Error(t, err, "a malformed row must fail the whole load")
}

func TestFloatsReportsRowAndColumn(t *testing.T) {
	path := writeCSV(t, "age\n21\nnot-a-number\n")

	table, err := ReadCSV(path)
	require.NoError(t, err)

	_, err = table.Floats("age")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
	assert.Contains(t, err.Error(), "row 1")
}

func TestUnknownColumn(t *testing.T) {
	path := writeCSV(t, "a\n1\n")
	table, err := ReadCSV(path)
	require.NoError(t, err)

	_, err = table.Floats("missing")
	require.Error(t, err)

	var valueErr *errors.ValueError
	assert.True(t, errors.As(err, &valueErr))
}

func TestDropNA(t *testing.T) {
	path := writeCSV(t, "survived,sex,age,fare\n1,female,29,91.1\n0,male,,8.05\n1,female,4,\n0,male,35,53.1\n")

	table, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, 4, table.NumRows())

	clean, err := table.DropNA("sex", "age", "fare")
	require.NoError(t, err)
	assert.Equal(t, 2, clean.NumRows())

	age, err := clean.Floats("age")
	require.NoError(t, err)
	assert.Equal(t, []float64{29, 35}, age)

	// The original table is untouched.
	assert.Equal(t, 4, table.NumRows())
}

func TestMatrixAndVector(t *testing.T) {
	path := writeCSV(t, "x1,x2,y\n1,10,100\n2,20,200\n3,30,300\n")

	table, err := ReadCSV(path)
	require.NoError(t, err)

	X, err := table.Matrix("x1", "x2")
	require.NoError(t, err)
	r, c := X.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 20.0, X.At(1, 1))

	y, err := table.Vector("y")
	require.NoError(t, err)
	assert.Equal(t, 3, y.Len())
	assert.Equal(t, 300.0, y.AtVec(2))
}
