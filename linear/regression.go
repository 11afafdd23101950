// Package linear implements linear predictors: ordinary least squares,
// ridge regression, and binary logistic regression.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/core/model"
	"github.com/statlearn/statlearn/core/parallel"
	"github.com/statlearn/statlearn/pkg/errors"
)

// Row counts at or below this are filled sequentially.
const parallelThreshold = 1000

// LinearRegression fits an ordinary least-squares linear model via the
// normal equations w = (X^T X)^-1 X^T y.
type LinearRegression struct {
	model.BaseEstimator
	Weights   *mat.VecDense
	Intercept float64
	NFeatures int
}

// NewLinearRegression creates an unfitted LinearRegression.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// designMatrix prepends an all-ones intercept column to X.
func designMatrix(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	Z := mat.NewDense(r, c+1, nil)
	parallel.RunWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			Z.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				Z.Set(i, j+1, X.At(i, j))
			}
		}
	})
	return Z
}

// validateFit checks the shapes shared by the least-squares fitters.
func validateFit(op string, X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError(op, "y must be a column vector")
	}
	return nil
}

// solveNormalEquations solves (Z^T Z + penalty) w = Z^T y for the augmented
// design matrix Z. A nil penalty solves plain least squares.
func solveNormalEquations(op string, Z *mat.Dense, y mat.Matrix, penalty *mat.DiagDense) (*mat.VecDense, error) {
	r, cols := Z.Dims()

	var ZT mat.Dense
	ZT.CloneFrom(Z.T())

	var ZTZ mat.Dense
	ZTZ.Mul(&ZT, Z)

	if penalty != nil {
		var reg mat.Dense
		reg.Add(&ZTZ, penalty)
		ZTZ.CloneFrom(&reg)
	}

	var inv mat.Dense
	if err := inv.Inverse(&ZTZ); err != nil {
		return nil, errors.NewModelError(op, "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var ZTy mat.VecDense
	ZTy.MulVec(&ZT, yVec)

	w := mat.NewVecDense(cols, nil)
	w.MulVec(&inv, &ZTy)
	return w, nil
}

// Fit trains the model on X and the column vector y.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	if err := validateFit("LinearRegression.Fit", X, y); err != nil {
		return err
	}
	_, c := X.Dims()
	lr.NFeatures = c

	w, err := solveNormalEquations("LinearRegression.Fit", designMatrix(X), y, nil)
	if err != nil {
		return err
	}

	lr.Intercept = w.AtVec(0)
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, w.AtVec(i + 1))
	}

	lr.SetFitted()
	return nil
}

// Predict returns the fitted values for X as an n×1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}
	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// Coefficients returns a copy of the fitted coefficients, one per feature.
func (lr *LinearRegression) Coefficients() []float64 {
	if lr.Weights == nil {
		return nil
	}
	out := make([]float64, lr.Weights.Len())
	for i := range out {
		out[i] = lr.Weights.AtVec(i)
	}
	return out
}

// Score returns the coefficient of determination R² on X, y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	var tss, rss float64
	for i := 0; i < r; i++ {
		yTrue := y.At(i, 0)
		yHat := yPred.At(i, 0)
		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yHat) * (yTrue - yHat)
	}

	if tss == 0 {
		return 0, errors.Newf("LinearRegression.Score: total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}
