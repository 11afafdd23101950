package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/core/model"
	"github.com/statlearn/statlearn/pkg/errors"
)

// LogisticRegression fits a binary classifier under the logistic link using
// batch gradient descent with a decaying learning rate. Weights start at
// zero, so a fit is fully deterministic for a given input.
type LogisticRegression struct {
	model.BaseEstimator

	penalty string
	c       float64
	maxIter int
	tol     float64

	coef      []float64
	intercept float64
	classes   []int
	nFeatures int
	nIter     int
}

// LogisticOption configures a LogisticRegression.
type LogisticOption func(*LogisticRegression)

// WithPenalty sets the regularization type, "l2" or "none".
func WithPenalty(penalty string) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.penalty = penalty
	}
}

// WithC sets the inverse regularization strength used with the l2 penalty.
func WithC(c float64) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.c = c
	}
}

// WithMaxIter sets the maximum number of gradient-descent iterations.
func WithMaxIter(maxIter int) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.maxIter = maxIter
	}
}

// WithTol sets the gradient-norm stopping tolerance.
func WithTol(tol float64) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.tol = tol
	}
}

// NewLogisticRegression creates an unfitted LogisticRegression.
func NewLogisticRegression(opts ...LogisticOption) *LogisticRegression {
	lr := &LogisticRegression{
		penalty: "none",
		c:       1.0,
		maxIter: 200,
		tol:     1e-4,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit trains the classifier on X and the column vector y of class labels.
// Exactly two distinct labels must be present; the larger one is treated as
// the positive class.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) error {
	if err := validateFit("LogisticRegression.Fit", X, y); err != nil {
		return err
	}
	nSamples, nFeatures := X.Dims()

	classSet := make(map[int]bool)
	for i := 0; i < nSamples; i++ {
		classSet[int(y.At(i, 0))] = true
	}
	if len(classSet) != 2 {
		return errors.NewValueError("LogisticRegression.Fit", "expected exactly 2 classes")
	}
	lr.classes = make([]int, 0, 2)
	for class := range classSet {
		lr.classes = append(lr.classes, class)
	}
	if lr.classes[0] > lr.classes[1] {
		lr.classes[0], lr.classes[1] = lr.classes[1], lr.classes[0]
	}

	lr.nFeatures = nFeatures
	lr.coef = make([]float64, nFeatures)
	lr.intercept = 0

	// 0/1 targets against the positive class.
	target := make([]float64, nSamples)
	for i := 0; i < nSamples; i++ {
		if int(y.At(i, 0)) == lr.classes[1] {
			target[i] = 1.0
		}
	}

	const baseLearningRate = 1.0

	for iter := 0; iter < lr.maxIter; iter++ {
		gradWeights := make([]float64, nFeatures)
		gradIntercept := 0.0

		for i := 0; i < nSamples; i++ {
			z := lr.intercept
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * lr.coef[j]
			}
			residual := sigmoid(z) - target[i]
			gradIntercept += residual
			for j := 0; j < nFeatures; j++ {
				gradWeights[j] += residual * X.At(i, j)
			}
		}

		for j := range gradWeights {
			gradWeights[j] /= float64(nSamples)
		}
		gradIntercept /= float64(nSamples)

		if lr.penalty == "l2" {
			lambda := 1.0 / lr.c
			for j := range lr.coef {
				gradWeights[j] += lambda * lr.coef[j]
			}
		}

		learningRate := baseLearningRate / (1.0 + 0.1*float64(iter))
		for j := range lr.coef {
			lr.coef[j] -= learningRate * gradWeights[j]
		}
		lr.intercept -= learningRate * gradIntercept

		lr.nIter = iter + 1

		maxGrad := math.Abs(gradIntercept)
		for _, g := range gradWeights {
			if math.Abs(g) > maxGrad {
				maxGrad = math.Abs(g)
			}
		}
		if maxGrad < lr.tol {
			break
		}
	}

	lr.SetFitted()
	return nil
}

// Predict returns the hard class label for each row of X as an n×1 matrix.
func (lr *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "Predict")
	}
	r, c := X.Dims()
	if c != lr.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.Predict", lr.nFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		if lr.decision(X, i) >= 0.5 {
			predictions.Set(i, 0, float64(lr.classes[1]))
		} else {
			predictions.Set(i, 0, float64(lr.classes[0]))
		}
	}
	return predictions, nil
}

// PredictProba returns an n×2 matrix of class probabilities, columns ordered
// [negative, positive].
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "PredictProba")
	}
	r, c := X.Dims()
	if c != lr.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProba", lr.nFeatures, c, 1)
	}

	probas := mat.NewDense(r, 2, nil)
	for i := 0; i < r; i++ {
		p := lr.decision(X, i)
		probas.Set(i, 0, 1.0-p)
		probas.Set(i, 1, p)
	}
	return probas, nil
}

func (lr *LogisticRegression) decision(X mat.Matrix, row int) float64 {
	z := lr.intercept
	for j := 0; j < lr.nFeatures; j++ {
		z += X.At(row, j) * lr.coef[j]
	}
	return sigmoid(z)
}

// Coefficients returns a copy of the fitted coefficients, one per feature.
func (lr *LogisticRegression) Coefficients() []float64 {
	if lr.coef == nil {
		return nil
	}
	out := make([]float64, len(lr.coef))
	copy(out, lr.coef)
	return out
}

// Intercept returns the fitted intercept.
func (lr *LogisticRegression) Intercept() float64 {
	return lr.intercept
}

// Classes returns the two class labels in ascending order.
func (lr *LogisticRegression) Classes() []int {
	out := make([]int, len(lr.classes))
	copy(out, lr.classes)
	return out
}

// NIter returns the number of gradient-descent iterations run by Fit.
func (lr *LogisticRegression) NIter() int {
	return lr.nIter
}

// Score returns the mean accuracy on X against the labels y.
func (lr *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := X.Dims()
	correct := 0
	for i := 0; i < r; i++ {
		if predictions.At(i, 0) == y.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(r), nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
