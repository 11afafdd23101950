package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/core/model"
	"github.com/statlearn/statlearn/pkg/errors"
)

// Ridge fits a linear model minimizing the squared residuals plus
// Alpha times the squared coefficient norm. The intercept is not penalized.
// Larger Alpha shrinks the coefficients toward zero, trading training fit
// for robustness on small samples.
type Ridge struct {
	model.BaseEstimator
	Alpha     float64
	Weights   *mat.VecDense
	Intercept float64
	NFeatures int
}

// NewRidge creates an unfitted Ridge with the given regularization strength.
func NewRidge(alpha float64) *Ridge {
	return &Ridge{Alpha: alpha}
}

// Fit trains the model on X and the column vector y by solving
// (Z^T Z + Alpha·D) w = Z^T y, where Z is the intercept-augmented design
// matrix and D is the identity with a zero in the intercept position.
func (r *Ridge) Fit(X, y mat.Matrix) error {
	if r.Alpha < 0 {
		return errors.NewValueError("Ridge.Fit", "alpha must be non-negative")
	}
	if err := validateFit("Ridge.Fit", X, y); err != nil {
		return err
	}
	_, c := X.Dims()
	r.NFeatures = c

	diag := make([]float64, c+1)
	for j := 1; j <= c; j++ {
		diag[j] = r.Alpha
	}
	penalty := mat.NewDiagDense(c+1, diag)

	w, err := solveNormalEquations("Ridge.Fit", designMatrix(X), y, penalty)
	if err != nil {
		return err
	}

	r.Intercept = w.AtVec(0)
	r.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		r.Weights.SetVec(i, w.AtVec(i+1))
	}

	r.SetFitted()
	return nil
}

// Predict returns the fitted values for X as an n×1 matrix.
func (r *Ridge) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "Predict")
	}
	rows, c := X.Dims()
	if c != r.NFeatures {
		return nil, errors.NewDimensionError("Ridge.Predict", r.NFeatures, c, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred := r.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * r.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// Coefficients returns a copy of the fitted coefficients, one per feature.
func (r *Ridge) Coefficients() []float64 {
	if r.Weights == nil {
		return nil
	}
	out := make([]float64, r.Weights.Len())
	for i := range out {
		out[i] = r.Weights.AtVec(i)
	}
	return out
}
