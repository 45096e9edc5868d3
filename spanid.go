// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 representing a span.
//
// Here a span is one run of a [*CollectionFunc] over a collection. Attach
// the ID to the logger using [*slog.Logger.With] so that the per-element
// and lifecycle events of the same run can be correlated.
//
// This function panics if the system random number generator fails.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
