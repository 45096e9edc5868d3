// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

// Timestamp is an optional event time attached to an [Element].
//
// The zero value is a missing timestamp.
type Timestamp struct {
	// Value is the timestamp value, meaningful only when Valid is true.
	Value uint64

	// Valid indicates whether Value is set.
	Valid bool
}

// NewTimestamp returns a valid [Timestamp] with the given value.
func NewTimestamp(value uint64) Timestamp {
	return Timestamp{Value: value, Valid: true}
}

// Element is a single stream record: a payload plus its optional [Timestamp].
type Element[T any] struct {
	Timestamp Timestamp
	Data      T
}

// NewElement returns an [Element] without a timestamp.
func NewElement[T any](data T) Element[T] {
	return Element[T]{Data: data}
}

// NewTimestampedElement returns an [Element] with the given timestamp.
func NewTimestampedElement[T any](ts uint64, data T) Element[T] {
	return Element[T]{Timestamp: NewTimestamp(ts), Data: data}
}
