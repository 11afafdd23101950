package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statlearn/statlearn/pkg/errors"
)

// ConfusionCounts holds the four cells of a binary confusion matrix, with
// label 1 as the positive class.
type ConfusionCounts struct {
	TP, FP, TN, FN int
}

// ConfusionMatrix counts agreement between the 0/1 label vectors yTrue and
// yPred. Any value other than 0 or 1 is an error.
func ConfusionMatrix(yTrue, yPred *mat.VecDense) (ConfusionCounts, error) {
	var counts ConfusionCounts

	n := yTrue.Len()
	if n == 0 {
		return counts, errors.NewValueError("ConfusionMatrix", "empty vector")
	}
	if yPred.Len() != n {
		return counts, errors.NewDimensionError("ConfusionMatrix", n, yPred.Len(), 0)
	}

	for i := 0; i < n; i++ {
		t, p := yTrue.AtVec(i), yPred.AtVec(i)
		if (t != 0 && t != 1) || (p != 0 && p != 1) {
			return counts, errors.NewValueError("ConfusionMatrix", "labels must be 0 or 1")
		}
		switch {
		case t == 1 && p == 1:
			counts.TP++
		case t == 0 && p == 1:
			counts.FP++
		case t == 1 && p == 0:
			counts.FN++
		default:
			counts.TN++
		}
	}
	return counts, nil
}

// Precision returns TP / (TP + FP) with label 1 as the positive class.
// When no positive predictions were made the metric is ill-defined; it
// returns 0 and emits an UndefinedMetricWarning.
func Precision(yTrue, yPred *mat.VecDense) (float64, error) {
	counts, err := ConfusionMatrix(yTrue, yPred)
	if err != nil {
		return 0, errors.Wrap(err, "Precision")
	}
	if counts.TP+counts.FP == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted positives", 0))
		return 0, nil
	}
	return float64(counts.TP) / float64(counts.TP+counts.FP), nil
}

// Recall returns TP / (TP + FN) with label 1 as the positive class.
// When no true positives exist the metric is ill-defined; it returns 0 and
// emits an UndefinedMetricWarning.
func Recall(yTrue, yPred *mat.VecDense) (float64, error) {
	counts, err := ConfusionMatrix(yTrue, yPred)
	if err != nil {
		return 0, errors.Wrap(err, "Recall")
	}
	if counts.TP+counts.FN == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall", "no true positives", 0))
		return 0, nil
	}
	return float64(counts.TP) / float64(counts.TP+counts.FN), nil
}

// Accuracy returns the fraction of labels predicted exactly.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}
