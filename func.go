// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import "context"

// Func is a generic stage that accepts an input and returns a result.
//
// Func instances can be composed using [Compose2] and [Compose3] to create
// type-safe pipelines where the output of one stage flows to the input of the next.
//
// A Func must not retain or mutate its input after returning.
type Func[A, B any] interface {
	Call(ctx context.Context, input A) (B, error)
}

// FuncAdapter wraps a function as a [Func] implementation.
//
// Use this to create ad-hoc [Func] instances from closures, for example
// to plug a custom element handler into [NewOperatorFunc].
type FuncAdapter[A, B any] func(ctx context.Context, input A) (B, error)

// Call implements [Func].
func (f FuncAdapter[A, B]) Call(ctx context.Context, input A) (B, error) {
	return f(ctx, input)
}
