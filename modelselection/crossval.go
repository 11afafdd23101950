package modelselection

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/statlearn/statlearn/pkg/errors"
)

// Estimator is the fit/predict surface the cross-validators need.
type Estimator interface {
	Fit(X, y mat.Matrix) error
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// ScoreFunc computes a summary statistic from true and predicted values.
type ScoreFunc func(yTrue, yPred *mat.VecDense) (float64, error)

// CVResult holds per-fold scores from CrossValScore.
type CVResult struct {
	Scores []float64
}

// Mean returns the mean fold score.
func (r *CVResult) Mean() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	return stat.Mean(r.Scores, nil)
}

// Std returns the sample standard deviation of the fold scores.
func (r *CVResult) Std() float64 {
	if len(r.Scores) <= 1 {
		return 0
	}
	return stat.StdDev(r.Scores, nil)
}

// CrossValPredict fits a fresh estimator per fold and assembles the held-out
// predictions into a single vector aligned to the original row order. Every
// row is predicted exactly once. newEstimator must return an unfitted model
// each call.
func CrossValPredict(newEstimator func() Estimator, X, y mat.Matrix, kf *KFold) (*mat.VecDense, error) {
	nSamples, _ := X.Dims()
	folds, err := kf.Split(nSamples)
	if err != nil {
		return nil, err
	}

	predictions := mat.NewVecDense(nSamples, nil)
	for i, fold := range folds {
		if err := predictFold(newEstimator(), X, y, fold, predictions); err != nil {
			return nil, errors.Wrapf(err, "fold %d", i)
		}
	}
	return predictions, nil
}

// CrossValScore fits a fresh estimator per fold and scores its held-out
// predictions, returning one score per fold.
func CrossValScore(newEstimator func() Estimator, X, y mat.Matrix, kf *KFold, score ScoreFunc) (*CVResult, error) {
	nSamples, _ := X.Dims()
	folds, err := kf.Split(nSamples)
	if err != nil {
		return nil, err
	}

	result := &CVResult{Scores: make([]float64, len(folds))}
	for i, fold := range folds {
		predictions := mat.NewVecDense(nSamples, nil)
		if err := predictFold(newEstimator(), X, y, fold, predictions); err != nil {
			return nil, errors.Wrapf(err, "fold %d", i)
		}

		yTest := mat.NewVecDense(len(fold.TestIndices), nil)
		yPred := mat.NewVecDense(len(fold.TestIndices), nil)
		for k, idx := range fold.TestIndices {
			yTest.SetVec(k, y.At(idx, 0))
			yPred.SetVec(k, predictions.AtVec(idx))
		}

		s, err := score(yTest, yPred)
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d scoring", i)
		}
		result.Scores[i] = s
	}
	return result, nil
}

// predictFold trains est on the fold's training rows and writes held-out
// predictions into out at their original positions.
func predictFold(est Estimator, X, y mat.Matrix, fold Fold, out *mat.VecDense) error {
	trainX, trainY := subset(X, y, fold.TrainIndices)
	if err := est.Fit(trainX, trainY); err != nil {
		return errors.Wrap(err, "training")
	}

	testX, _ := subset(X, y, fold.TestIndices)
	pred, err := est.Predict(testX)
	if err != nil {
		return errors.Wrap(err, "prediction")
	}

	for k, idx := range fold.TestIndices {
		out.SetVec(idx, pred.At(k, 0))
	}
	return nil
}

// subset extracts the given rows of X and y, preserving index order.
func subset(X, y mat.Matrix, indices []int) (mat.Matrix, mat.Matrix) {
	_, xCols := X.Dims()

	xSub := mat.NewDense(len(indices), xCols, nil)
	ySub := mat.NewDense(len(indices), 1, nil)
	for i, idx := range indices {
		for j := 0; j < xCols; j++ {
			xSub.Set(i, j, X.At(idx, j))
		}
		ySub.Set(i, 0, y.At(idx, 0))
	}
	return xSub, ySub
}
