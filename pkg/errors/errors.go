// Package errors provides the structured error and warning types used across
// the library. Every error names the operation that failed and, where it
// applies, the input shape involved, so a failing workflow step can be
// identified from the message alone.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

var (
	warningMu      sync.Mutex
	warningHandler = func(w error) {
		log.Printf("statlearn warning: %v\n", w)
	}
)

// SetWarningHandler replaces the library-wide warning sink. Pass a no-op
// handler to silence warnings.
func SetWarningHandler(handler func(w error)) {
	warningMu.Lock()
	defer warningMu.Unlock()
	warningHandler = handler
}

// UseZerolog routes warnings through the given zerolog logger. Warning types
// implementing zerolog.LogObjectMarshaler are logged with their structured
// fields.
func UseZerolog(logger zerolog.Logger) {
	SetWarningHandler(func(w error) {
		ev := logger.Warn()
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev.EmbedObject(m)
		}
		ev.Msg(w.Error())
	})
}

// Warn emits a warning through the configured handler.
func Warn(w error) {
	warningMu.Lock()
	h := warningHandler
	warningMu.Unlock()
	if h != nil {
		h(w)
	}
}

// UndefinedMetricWarning is emitted when a metric is ill-defined for the
// given inputs, for example precision when no positive predictions were made.
// The metric returns Result in that case.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %g due to %s", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// NotFittedError is returned when Predict or Transform is called on an
// estimator that has not been fitted.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("statlearn: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// DimensionError is returned when an input dimension does not match the
// expected one. Axis 0 is rows, axis 1 is columns/features.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("statlearn: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValueError is returned when an argument's value is invalid for the
// operation, for example a negative regularization strength.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("statlearn: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError is a general estimator failure, wrapping an underlying cause.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("statlearn: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("statlearn: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace attached.
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

var (
	// ErrEmptyData is the cause when an operation receives no rows or columns.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is the cause when a normal-equation solve fails.
	ErrSingularMatrix = New("singular matrix")
)
