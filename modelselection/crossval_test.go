package modelselection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/dataset"
	"github.com/statlearn/statlearn/linear"
	"github.com/statlearn/statlearn/metrics"
	"github.com/statlearn/statlearn/modelselection"
	"github.com/statlearn/statlearn/preprocessing"
)

func loadAdvertising(t *testing.T) (*mat.Dense, *mat.VecDense) {
	t.Helper()
	table, err := dataset.ReadCSV("../testdata/advertising.csv", dataset.WithIndexColumn(0))
	require.NoError(t, err)

	X, err := table.Matrix("TV", "radio", "newspaper")
	require.NoError(t, err)
	y, err := table.Vector("sales")
	require.NoError(t, err)
	return X, y
}

func newOLS() modelselection.Estimator {
	return linear.NewLinearRegression()
}

func TestCrossValPredictCoversEveryRowOnce(t *testing.T) {
	X, y := loadAdvertising(t)

	pred, err := modelselection.CrossValPredict(newOLS, X, y, modelselection.NewKFold(10))
	require.NoError(t, err)
	require.Equal(t, y.Len(), pred.Len(), "one out-of-sample prediction per input row")

	// All predictions written: with this data none can be exactly zero.
	for i := 0; i < pred.Len(); i++ {
		assert.NotZero(t, pred.AtVec(i), "row %d was never predicted", i)
	}
}

func TestCrossValScoreMeanStd(t *testing.T) {
	X, y := loadAdvertising(t)

	result, err := modelselection.CrossValScore(newOLS, X, y, modelselection.NewKFold(10), metrics.MSE)
	require.NoError(t, err)
	require.Len(t, result.Scores, 10)

	assert.Greater(t, result.Mean(), 0.0)
	assert.Greater(t, result.Std(), 0.0)
}

// Fitting all 200 rows gives a far smaller error than a 5-row subsample
// evaluated out of sample, and ridge recovers much of the damage.
func TestOverfittingAndRegularization(t *testing.T) {
	X, y := loadAdvertising(t)

	full := linear.NewLinearRegression()
	require.NoError(t, full.Fit(X, y))
	fullPred, err := full.Predict(X)
	require.NoError(t, err)
	fullTrainMSE, err := metrics.MSE(y, colVec(fullPred))
	require.NoError(t, err)
	assert.InDelta(t, 1.507, fullTrainMSE, 0.01)

	// 5 rows, 3 features: near-zero training error, huge validation error.
	subX := X.Slice(15, 20, 0, 3)
	subY := mat.NewVecDense(5, nil)
	for i := 0; i < 5; i++ {
		subY.SetVec(i, y.AtVec(15+i))
	}

	small := linear.NewLinearRegression()
	require.NoError(t, small.Fit(subX, subY))
	smallPred, err := small.Predict(subX)
	require.NoError(t, err)
	smallTrainMSE, err := metrics.MSE(subY, colVec(smallPred))
	require.NoError(t, err)
	assert.Less(t, smallTrainMSE, 1.0)

	kf := modelselection.NewKFold(5)
	olsCV, err := modelselection.CrossValPredict(newOLS, subX, subY, kf)
	require.NoError(t, err)
	olsCVMSE, err := metrics.MSE(subY, olsCV)
	require.NoError(t, err)

	assert.Greater(t, olsCVMSE, fullTrainMSE, "subsample CV error must exceed full-data training error")
	assert.Greater(t, olsCVMSE, 10*smallTrainMSE, "training error wildly understates out-of-sample error")

	ridgeCV, err := modelselection.CrossValPredict(func() modelselection.Estimator {
		return linear.NewRidge(10)
	}, subX, subY, kf)
	require.NoError(t, err)
	ridgeCVMSE, err := metrics.MSE(subY, ridgeCV)
	require.NoError(t, err)

	assert.Less(t, ridgeCVMSE, olsCVMSE, "regularization must not hurt the overfit subsample")
}

// End-to-end classification workflow: cross-validated precision and recall
// on the bundled passenger data.
func TestPassengerWorkflowCrossValidation(t *testing.T) {
	raw, err := dataset.ReadCSV("../testdata/passengers.csv")
	require.NoError(t, err)

	table, err := raw.DropNA("sex", "age", "fare", "survived")
	require.NoError(t, err)
	require.Less(t, table.NumRows(), raw.NumRows(), "some rows have missing values")

	sex, err := table.Column("sex")
	require.NoError(t, err)
	sexInd, err := preprocessing.NewOneHotEncoder().FitTransform(sex)
	require.NoError(t, err)

	numeric, err := table.Matrix("age", "fare")
	require.NoError(t, err)

	var X mat.Dense
	X.Augment(sexInd, numeric)

	Xs, err := preprocessing.NewStandardScaler().FitTransform(&X)
	require.NoError(t, err)

	y, err := table.Vector("survived")
	require.NoError(t, err)

	newClf := func() modelselection.Estimator {
		return linear.NewLogisticRegression()
	}
	kf := modelselection.NewKFold(5)

	precision, err := modelselection.CrossValScore(newClf, Xs, y, kf, metrics.Precision)
	require.NoError(t, err)
	recall, err := modelselection.CrossValScore(newClf, Xs, y, kf, metrics.Recall)
	require.NoError(t, err)

	assert.InDelta(t, 0.779, precision.Mean(), 0.02)
	assert.InDelta(t, 0.770, recall.Mean(), 0.02)

	for _, s := range append(precision.Scores, recall.Scores...) {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}

	pred, err := modelselection.CrossValPredict(newClf, Xs, y, kf)
	require.NoError(t, err)
	assert.Equal(t, y.Len(), pred.Len())
}

func colVec(m mat.Matrix) *mat.VecDense {
	r, _ := m.Dims()
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v
}
