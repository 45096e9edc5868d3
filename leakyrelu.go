// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import "golang.org/x/exp/constraints"

// Number is the set of numeric types accepted by [LeakyReLU] and
// [HandleElement]: floating-point types and the integer types whose
// every value converts to float64 exactly.
//
// The 64-bit and platform-sized integers (int, int64, uint, uint64,
// uintptr) are excluded because values above 2^53 in magnitude would
// not survive the conversion. Convert those explicitly if needed.
type Number interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32 | constraints.Float
}

// DefaultSlope is the slope used by [DefaultLeakyReLU] and [HandleElement].
const DefaultSlope = 0.01

// LeakyReLU returns x unchanged when x >= 0 and x * slope otherwise.
//
// The slope is not validated: zero, negative, and non-finite slopes are
// used as-is. A NaN input takes the negative branch, since NaN is never
// >= 0, and therefore yields NaN. Negative zero compares >= 0 and is
// returned unchanged.
//
// Integer and single-precision inputs are widened to float64 without
// loss, hence x >= 0 always yields float64(x) exactly.
func LeakyReLU[T Number](x T, slope float64) float64 {
	v := float64(x)
	if v >= 0 {
		return v
	}
	return v * slope
}

// DefaultLeakyReLU is [LeakyReLU] with [DefaultSlope].
func DefaultLeakyReLU[T Number](x T) float64 {
	return LeakyReLU(x, DefaultSlope)
}

// HandleElement returns a freshly allocated slice containing exactly
// one value: the result of [DefaultLeakyReLU] applied to x.
func HandleElement[T Number](x T) []float64 {
	return []float64{DefaultLeakyReLU(x)}
}
