// Package statlearn is a small supervised-learning library with a
// scikit-learn-like API, built for walking through introductory modeling
// workflows: loading tabular data, preparing features, fitting linear and
// logistic models, evaluating them with cross-validation, and plotting the
// results.
//
// # Packages
//
//   - dataset: CSV loading into column-oriented tables
//   - preprocessing: one-hot encoding and standardization
//   - linear: LinearRegression, Ridge, LogisticRegression
//   - modelselection: k-fold cross-validation
//   - metrics: regression and classification metrics
//   - plotting: scatter and predicted-vs-actual diagnostics
//   - core/model: shared estimator state
//   - pkg/errors, pkg/log: structured errors and logging
//
// # Quick start
//
//	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	model := linear.NewLinearRegression()
//	if err := model.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	predictions, err := model.Predict(mat.NewDense(2, 1, []float64{5, 6}))
//
// The examples directory contains two complete workflows: a regression study
// on an advertising-spend dataset and a classification study on a passenger
// survival dataset.
package statlearn
