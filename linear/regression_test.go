package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/pkg/errors"
)

func TestLinearRegressionExactFit(t *testing.T) {
	// y = 1 + 2*x1 + 3*x2, no noise.
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		2, 0,
		0, 2,
		3, 1,
		1, 3,
	})
	y := mat.NewDense(5, 1, []float64{6, 5, 7, 10, 12})

	lr := NewLinearRegression()
	require.NoError(t, lr.Fit(X, y))

	assert.InDelta(t, 1.0, lr.Intercept, 1e-9)
	coef := lr.Coefficients()
	require.Len(t, coef, 2)
	assert.InDelta(t, 2.0, coef[0], 1e-9)
	assert.InDelta(t, 3.0, coef[1], 1e-9)

	pred, err := lr.Predict(mat.NewDense(1, 2, []float64{4, 4}))
	require.NoError(t, err)
	assert.InDelta(t, 21.0, pred.At(0, 0), 1e-9)

	score, err := lr.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestLinearRegressionValidation(t *testing.T) {
	lr := NewLinearRegression()

	err := lr.Fit(&mat.Dense{}, &mat.Dense{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	err = lr.Fit(mat.NewDense(3, 1, nil), mat.NewDense(2, 1, nil))
	require.Error(t, err)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	err = lr.Fit(mat.NewDense(3, 1, nil), mat.NewDense(3, 2, nil))
	require.Error(t, err)
}

func TestLinearRegressionNotFitted(t *testing.T) {
	lr := NewLinearRegression()
	_, err := lr.Predict(mat.NewDense(1, 1, nil))
	require.Error(t, err)

	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))
}

func TestLinearRegressionPredictDimensionMismatch(t *testing.T) {
	lr := NewLinearRegression()
	require.NoError(t, lr.Fit(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 7}), mat.NewDense(3, 1, []float64{1, 2, 3})))

	_, err := lr.Predict(mat.NewDense(1, 3, nil))
	require.Error(t, err)

	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Got)
}

func TestRidgeMatchesOLSAtZeroAlpha(t *testing.T) {
	X := mat.NewDense(6, 2, []float64{
		1, 2,
		2, 1,
		3, 3,
		4, 1,
		5, 4,
		6, 2,
	})
	y := mat.NewDense(6, 1, []float64{5, 4, 9, 7, 13, 10})

	ols := NewLinearRegression()
	require.NoError(t, ols.Fit(X, y))

	ridge := NewRidge(0)
	require.NoError(t, ridge.Fit(X, y))

	assert.InDelta(t, ols.Intercept, ridge.Intercept, 1e-9)
	for i, c := range ols.Coefficients() {
		assert.InDelta(t, c, ridge.Coefficients()[i], 1e-9)
	}
}

func TestRidgeShrinksCoefficients(t *testing.T) {
	X := mat.NewDense(6, 2, []float64{
		1, 2,
		2, 1,
		3, 3,
		4, 1,
		5, 4,
		6, 2,
	})
	y := mat.NewDense(6, 1, []float64{5, 4, 9, 7, 13, 10})

	ols := NewLinearRegression()
	require.NoError(t, ols.Fit(X, y))

	ridge := NewRidge(1000)
	require.NoError(t, ridge.Fit(X, y))

	olsNorm, ridgeNorm := 0.0, 0.0
	for i := range ols.Coefficients() {
		olsNorm += ols.Coefficients()[i] * ols.Coefficients()[i]
		ridgeNorm += ridge.Coefficients()[i] * ridge.Coefficients()[i]
	}
	assert.Less(t, ridgeNorm, olsNorm, "a large alpha must shrink the coefficient norm")
}

func TestRidgeNegativeAlpha(t *testing.T) {
	ridge := NewRidge(-1)
	err := ridge.Fit(mat.NewDense(2, 1, []float64{1, 2}), mat.NewDense(2, 1, []float64{1, 2}))
	require.Error(t, err)

	var valueErr *errors.ValueError
	assert.True(t, errors.As(err, &valueErr))
}
