// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import "time"

// Config holds common configuration for leakyrelu stages.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// Slope is the factor applied to negative inputs by [*LeakyReLUFunc].
	//
	// Set by [NewConfig] to [DefaultSlope].
	Slope float64

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Slope:         DefaultSlope,
		ErrClassifier: DefaultErrClassifier,
		TimeNow:       time.Now,
	}
}
