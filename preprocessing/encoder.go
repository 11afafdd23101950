package preprocessing

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/core/model"
	"github.com/statlearn/statlearn/pkg/errors"
)

// OneHotEncoder expands a categorical column into one indicator column per
// observed level. Levels are ordered by lexicographic sort, so the column
// layout is deterministic and reproducible across runs; downstream
// coefficients depend positionally on it. Use FeatureNames to build
// inference vectors explicitly instead of by position.
type OneHotEncoder struct {
	model.BaseEstimator

	// Levels holds the observed levels in sorted order, one indicator
	// column each.
	Levels []string

	index map[string]int
}

// NewOneHotEncoder creates an unfitted OneHotEncoder.
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{}
}

// Fit records the distinct levels present in values.
func (e *OneHotEncoder) Fit(values []string) error {
	if len(values) == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[string]bool)
	for _, v := range values {
		seen[v] = true
	}

	e.Levels = make([]string, 0, len(seen))
	for v := range seen {
		e.Levels = append(e.Levels, v)
	}
	sort.Strings(e.Levels)

	e.index = make(map[string]int, len(e.Levels))
	for i, v := range e.Levels {
		e.index[v] = i
	}

	e.SetFitted()
	return nil
}

// Transform expands values into an indicator matrix with one column per
// fitted level. A value not seen during Fit is an error, not a zero row.
func (e *OneHotEncoder) Transform(values []string) (*mat.Dense, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}
	if len(values) == 0 {
		return nil, errors.NewModelError("OneHotEncoder.Transform", "empty data", errors.ErrEmptyData)
	}

	out := mat.NewDense(len(values), len(e.Levels), nil)
	for i, v := range values {
		j, ok := e.index[v]
		if !ok {
			return nil, errors.NewValueError("OneHotEncoder.Transform", "unseen level: "+v)
		}
		out.Set(i, j, 1.0)
	}
	return out, nil
}

// FitTransform fits the encoder to values and returns their indicator matrix.
func (e *OneHotEncoder) FitTransform(values []string) (*mat.Dense, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// FeatureNames returns one "column=level" name per indicator column, in
// column order.
func (e *OneHotEncoder) FeatureNames(column string) []string {
	names := make([]string, len(e.Levels))
	for i, level := range e.Levels {
		names[i] = column + "=" + level
	}
	return names
}
