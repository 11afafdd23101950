// Package model holds the state shared by all estimators.
package model

// BaseEstimator tracks whether an estimator has been fitted. Estimators embed
// it and call SetFitted at the end of a successful Fit.
type BaseEstimator struct {
	fitted bool
}

// IsFitted reports whether Fit has completed successfully.
func (e *BaseEstimator) IsFitted() bool {
	return e.fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.fitted = true
}

// Reset returns the estimator to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.fitted = false
}
