// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite indicates that a value is NaN or infinite.
var ErrNonFinite = errors.New("non-finite value")

// NewFiniteFunc returns a new [*FiniteFunc].
func NewFiniteFunc() *FiniteFunc {
	return &FiniteFunc{}
}

// FiniteFunc passes finite values through unchanged and rejects NaN
// and ±Inf with an error wrapping [ErrNonFinite].
//
// [LeakyReLU] itself accepts any float64 and follows IEEE-754 semantics.
// Put this stage in front of it when non-finite inputs must be rejected.
type FiniteFunc struct{}

var _ Func[float64, float64] = &FiniteFunc{}

// Call implements [Func].
func (op *FiniteFunc) Call(ctx context.Context, x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNonFinite, x)
	}
	return x, nil
}
