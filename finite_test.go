// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiniteFunc(t *testing.T) {
	tests := []struct {
		// name describes what this test case verifies.
		name string

		// x is the input value.
		x float64

		// wantErr indicates whether we expect an error.
		wantErr bool
	}{
		{name: "zero", x: 0},
		{name: "negative", x: -5},
		{name: "largest float", x: math.MaxFloat64},
		{name: "NaN", x: math.NaN(), wantErr: true},
		{name: "positive infinity", x: math.Inf(1), wantErr: true},
		{name: "negative infinity", x: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFiniteFunc().Call(context.Background(), tt.x)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrNonFinite)
				assert.Equal(t, 0.0, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.x, got)
		})
	}
}
