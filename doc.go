// SPDX-License-Identifier: GPL-3.0-or-later

// Package leakyrelu implements the leaky ReLU activation and a small set of
// composable stages for applying it to a stream of elements.
//
// # Pure Functions
//
// [LeakyReLU] returns x unchanged when x >= 0 and x * slope otherwise.
// [DefaultLeakyReLU] uses [DefaultSlope] (0.01). [HandleElement] wraps the
// result of [DefaultLeakyReLU] inside a one-element slice. These functions
// are stateless and safe for concurrent use. They never fail: special
// floating-point values follow IEEE-754 comparison and multiplication.
//
// # Stages
//
// The stage abstraction is a single interface:
//
//	type Func[A, B any] interface {
//		Call(ctx context.Context, input A) (B, error)
//	}
//
// Stages compose via [Compose2] and [Compose3]:
//   - [LeakyReLUFunc]: applies [LeakyReLU] with a configurable slope
//   - [HandleElementFunc]: wraps a transform result in a one-element slice
//   - [FiniteFunc]: rejects NaN and ±Inf with [ErrNonFinite]
//   - [OperatorFunc]: lifts a handler to timestamped [Element] values,
//     emitting one output element per handler output with the input timestamp
//   - [CollectionFunc]: runs an operator over a finite collection, in order
//   - [NewCollectionSourceFunc]: injects a collection into a pipeline
//
// # Observability
//
// Stages log via [SLogger] (compatible with [log/slog]). By default logging
// is disabled. Per-element events (leakyReluStart/Done, handleElementStart/Done)
// use [log/slog.LevelDebug]; collection events (collectionStart/Done) use
// [log/slog.LevelInfo]. Completion events include t0, t, err, and errClass,
// where errClass comes from the configured [ErrClassifier].
//
// Use [NewSpanID] to generate a UUIDv7 and attach it to the logger with
// [*slog.Logger.With] to correlate the events of a single run.
//
// # Context
//
// Stages never modify the context they receive. [CollectionFunc] checks the
// context before each element and stops when it is done.
package leakyrelu
