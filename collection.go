// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import (
	"context"
	"log/slog"
	"time"
)

// NewCollectionSourceFunc returns a [Func] that always returns the given
// elements, for injecting a finite collection into a pipeline.
//
// This is a convenience wrapper around [ConstFunc].
func NewCollectionSourceFunc[T any](elements []Element[T]) Func[Unit, []Element[T]] {
	return ConstFunc(elements)
}

// NewCollectionFunc returns a new [*CollectionFunc].
//
// The cfg argument contains the common configuration.
//
// The op argument is the operator applied to each element, typically
// an [*OperatorFunc].
//
// The logger argument is the [SLogger] to use for structured logging.
func NewCollectionFunc[A, B any](cfg *Config, op Func[Element[A], []Element[B]], logger SLogger) *CollectionFunc[A, B] {
	return &CollectionFunc[A, B]{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		Operator:      op,
		TimeNow:       cfg.TimeNow,
	}
}

// CollectionFunc runs an operator over a finite collection of elements.
//
// Elements are processed in order and their outputs are concatenated. The
// context is checked before each element; processing stops at the first
// error, either from the context or from the operator.
//
// Returns either the outputs or an error, never both.
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type CollectionFunc[A, B any] struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewCollectionFunc] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewCollectionFunc] to the user-provided logger.
	Logger SLogger

	// Operator is applied to each element.
	//
	// Set by [NewCollectionFunc] to the user-provided operator.
	Operator Func[Element[A], []Element[B]]

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewCollectionFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

// Call implements [Func].
func (op *CollectionFunc[A, B]) Call(ctx context.Context, input []Element[A]) ([]Element[B], error) {
	t0 := op.TimeNow()
	op.logCollectionStart(len(input), t0)

	output, err := op.run(ctx, input)

	op.logCollectionDone(len(input), len(output), t0, err)
	if err != nil {
		return nil, err
	}
	return output, nil
}

func (op *CollectionFunc[A, B]) run(ctx context.Context, input []Element[A]) ([]Element[B], error) {
	output := make([]Element[B], 0, len(input))
	for _, elem := range input {
		if err := ctx.Err(); err != nil {
			return output, err
		}
		values, err := op.Operator.Call(ctx, elem)
		if err != nil {
			return output, err
		}
		output = append(output, values...)
	}
	return output, nil
}

func (op *CollectionFunc[A, B]) logCollectionStart(inputCount int, t0 time.Time) {
	op.Logger.Info(
		"collectionStart",
		slog.Int("inputCount", inputCount),
		slog.Time("t", t0),
	)
}

func (op *CollectionFunc[A, B]) logCollectionDone(inputCount, outputCount int, t0 time.Time, err error) {
	op.Logger.Info(
		"collectionDone",
		slog.Any("err", err),
		slog.String("errClass", op.ErrClassifier.Classify(err)),
		slog.Int("inputCount", inputCount),
		slog.Int("outputCount", outputCount),
		slog.Time("t0", t0),
		slog.Time("t", op.TimeNow()),
	)
}
