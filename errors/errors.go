// Package errors wraps the standard errors package with context-annotating helpers.
package errors

import (
	"errors"
	"fmt"
)

// annotated prefixes a cause with a short description of the failed step.
type annotated struct {
	cause error
	step  string
}

func (e *annotated) Error() string { return e.step + ": " + e.cause.Error() }
func (e *annotated) Unwrap() error { return e.cause }

// New calls [errors.New].
func New(text string) error {
	return errors.New(text) //nolint:err113
}

// Errorf calls [fmt.Errorf].
func Errorf(format string, vals ...any) error {
	return fmt.Errorf(format, vals...) //nolint:err113
}

// Wrap annotates cause with step. It returns nil if cause is nil.
func Wrap(cause error, step string) error {
	if cause == nil {
		return nil
	}

	return &annotated{cause: cause, step: step}
}

// Wrapf is like Wrap with a formatted step.
func Wrapf(cause error, format string, vals ...any) error {
	if cause == nil {
		return nil
	}

	return &annotated{cause: cause, step: fmt.Sprintf(format, vals...)}
}

// Is calls [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As calls [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join calls [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
