// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import (
	"errors"

	"github.com/bassosimone/errclass"
)

// ErrClassifier classifies errors into categorical strings for analysis.
//
// Implementations map errors to short, descriptive labels (e.g., "ENONFINITE",
// "ETIMEDOUT") that end up in the errClass field of *Done log events.
type ErrClassifier interface {
	Classify(err error) string
}

// ErrClassifierFunc adapts a function to the [ErrClassifier] interface.
//
// This allows using simple functions as classifiers:
//
//	cfg.ErrClassifier = ErrClassifierFunc(errclass.New)
type ErrClassifierFunc func(error) string

var _ ErrClassifier = ErrClassifierFunc(nil)

// Classify implements [ErrClassifier].
func (f ErrClassifierFunc) Classify(err error) string {
	return f(err)
}

// ENONFINITE is the class assigned to errors wrapping [ErrNonFinite].
const ENONFINITE = "ENONFINITE"

// DefaultErrClassifier maps nil to the empty string, [ErrNonFinite] to
// [ENONFINITE], and delegates everything else to [errclass.New].
var DefaultErrClassifier = ErrClassifierFunc(func(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNonFinite):
		return ENONFINITE
	default:
		return errclass.New(err)
	}
})
