// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg)

	assert.Equal(t, DefaultSlope, cfg.Slope)

	// ErrClassifier should be DefaultErrClassifier
	assert.Equal(t, "", cfg.ErrClassifier.Classify(nil))
	assert.Equal(t, ENONFINITE, cfg.ErrClassifier.Classify(ErrNonFinite))

	// TimeNow should be set and return a valid time
	now := cfg.TimeNow()
	assert.False(t, now.IsZero())
}
