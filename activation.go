// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import (
	"context"
	"log/slog"
	"time"
)

// NewLeakyReLUFunc returns a new [*LeakyReLUFunc].
//
// The cfg argument contains the common configuration.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewLeakyReLUFunc(cfg *Config, logger SLogger) *LeakyReLUFunc {
	return &LeakyReLUFunc{
		Logger:  logger,
		Slope:   cfg.Slope,
		TimeNow: cfg.TimeNow,
	}
}

// LeakyReLUFunc applies [LeakyReLU] with a configurable slope.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type LeakyReLUFunc struct {
	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewLeakyReLUFunc] to the user-provided logger.
	Logger SLogger

	// Slope is the factor applied to negative inputs.
	//
	// Set by [NewLeakyReLUFunc] from [Config.Slope].
	Slope float64

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewLeakyReLUFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Func[float64, float64] = &LeakyReLUFunc{}

// Call implements [Func]. It never fails.
func (op *LeakyReLUFunc) Call(ctx context.Context, x float64) (float64, error) {
	t0 := op.TimeNow()
	op.Logger.Debug(
		"leakyReluStart",
		slog.Float64("slope", op.Slope),
		slog.Time("t", t0),
		slog.Float64("x", x),
	)

	y := LeakyReLU(x, op.Slope)

	op.Logger.Debug(
		"leakyReluDone",
		slog.Float64("slope", op.Slope),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
		slog.Float64("x", x),
		slog.Float64("y", y),
	)
	return y, nil
}

// NewHandleElementFunc returns a new [*HandleElementFunc] whose Transform
// is a [*LeakyReLUFunc] built from the same cfg and logger.
//
// With the slope set by [NewConfig], Call behaves like [HandleElement].
func NewHandleElementFunc(cfg *Config, logger SLogger) *HandleElementFunc {
	return &HandleElementFunc{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		TimeNow:       cfg.TimeNow,
		Transform:     NewLeakyReLUFunc(cfg, logger),
	}
}

// HandleElementFunc calls Transform once and returns its result wrapped
// in a one-element slice.
//
// Returns either a one-element slice or an error, never both.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type HandleElementFunc struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewHandleElementFunc] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewHandleElementFunc] to the user-provided logger.
	Logger SLogger

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewHandleElementFunc] from [Config.TimeNow].
	TimeNow func() time.Time

	// Transform computes the single output value.
	//
	// Set by [NewHandleElementFunc] to a [*LeakyReLUFunc]. Replace it, e.g.
	// with Compose2(NewFiniteFunc(), transform), to reject some inputs.
	Transform Func[float64, float64]
}

var _ Func[float64, []float64] = &HandleElementFunc{}

// Call implements [Func].
func (op *HandleElementFunc) Call(ctx context.Context, x float64) ([]float64, error) {
	t0 := op.TimeNow()
	op.Logger.Debug(
		"handleElementStart",
		slog.Time("t", t0),
		slog.Float64("x", x),
	)

	var output []float64
	y, err := op.Transform.Call(ctx, x)
	if err == nil {
		output = []float64{y}
	}

	op.Logger.Debug(
		"handleElementDone",
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
		slog.Float64("x", x),
		slog.Any("y", output),
	)

	return output, err
}
