// Package preprocessing prepares feature matrices for fitting: categorical
// expansion and standardization.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/core/model"
	"github.com/statlearn/statlearn/pkg/errors"
)

// StandardScaler transforms each feature to zero mean and unit variance.
// Gradient-descent fitting on raw columns with very different scales (ages
// against fares, say) converges poorly, so the classification workflow
// standardizes first.
type StandardScaler struct {
	model.BaseEstimator

	// Mean holds the per-feature mean observed during Fit.
	Mean []float64

	// Scale holds the per-feature standard deviation observed during Fit.
	// Near-constant features get a scale of 1 to avoid division by zero.
	Scale []float64

	// NFeatures is the number of features seen during Fit.
	NFeatures int
}

// NewStandardScaler creates an unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes the per-feature mean and standard deviation of X.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		s.Mean[j] = sum / float64(r)
	}

	for j := 0; j < c; j++ {
		sumSquares := 0.0
		for i := 0; i < r; i++ {
			diff := X.At(i, j) - s.Mean[j]
			sumSquares += diff * diff
		}
		s.Scale[j] = math.Sqrt(sumSquares / float64(r))
		if s.Scale[j] < 1e-8 {
			s.Scale[j] = 1.0
		}
	}

	s.SetFitted()
	return nil
}

// Transform standardizes X with the statistics computed during Fit.
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}
	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return out, nil
}

// FitTransform fits the scaler to X and returns the standardized matrix.
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
