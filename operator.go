// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import "context"

// NewOperatorFunc returns a new [*OperatorFunc] wrapping the given handler.
func NewOperatorFunc[A, B any](handler Func[A, []B]) *OperatorFunc[A, B] {
	return &OperatorFunc[A, B]{Handler: handler}
}

// NewHandleElementOperatorFunc returns an [*OperatorFunc] that applies a
// [*HandleElementFunc] to each element, hence emitting exactly one output
// element per input element.
func NewHandleElementOperatorFunc(cfg *Config, logger SLogger) *OperatorFunc[float64, float64] {
	return NewOperatorFunc(NewHandleElementFunc(cfg, logger))
}

// OperatorFunc turns a handler of payloads into a handler of [Element].
//
// For each input element, Call invokes Handler on the payload and emits
// one output element per returned value, in order. Every output element
// carries the timestamp of the input element. When Handler fails, Call
// returns the error and emits nothing.
type OperatorFunc[A, B any] struct {
	// Handler maps a payload to zero or more output payloads.
	//
	// Set by [NewOperatorFunc] to the user-provided handler.
	Handler Func[A, []B]
}

// Call implements [Func].
func (op *OperatorFunc[A, B]) Call(ctx context.Context, elem Element[A]) ([]Element[B], error) {
	values, err := op.Handler.Call(ctx, elem.Data)
	if err != nil {
		return nil, err
	}
	output := make([]Element[B], 0, len(values))
	for _, value := range values {
		output = append(output, Element[B]{Timestamp: elem.Timestamp, Data: value})
	}
	return output, nil
}
