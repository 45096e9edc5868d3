// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu_test

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/bassosimone/leakyrelu"
	"github.com/bassosimone/runtimex"
)

func ExampleLeakyReLU() {
	fmt.Println(leakyrelu.DefaultLeakyReLU(5.0))
	fmt.Println(leakyrelu.DefaultLeakyReLU(-5.0))
	fmt.Println(leakyrelu.LeakyReLU(-2.0, 0.5))

	// Output:
	// 5
	// -0.05
	// -1
}

func ExampleHandleElement() {
	fmt.Println(leakyrelu.HandleElement(-10.0))
	fmt.Println(leakyrelu.HandleElement(3.0))

	// Output:
	// [-0.1]
	// [3]
}

// This example shows how to run the element handler over a finite
// collection of timestamped elements.
func Example_collection() {
	ctx := context.Background()

	// Create a config and logger with a span ID for correlating log entries.
	// Per-element events are emitted at debug level, which the handler
	// options below filter out.
	cfg := leakyrelu.NewConfig()
	spanID := leakyrelu.NewSpanID()
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(handler).With("spanID", spanID)

	sourceOp := leakyrelu.NewCollectionSourceFunc([]leakyrelu.Element[float64]{
		leakyrelu.NewTimestampedElement(1, 5.0),
		leakyrelu.NewTimestampedElement(2, -5.0),
		leakyrelu.NewElement(-10.0),
	})

	elementOp := leakyrelu.NewHandleElementOperatorFunc(cfg, logger)

	runOp := leakyrelu.NewCollectionFunc[float64, float64](cfg, elementOp, logger)

	pipeline := leakyrelu.Compose2(sourceOp, runOp)

	output := runtimex.PanicOnError1(pipeline.Call(ctx, leakyrelu.Unit{}))
	for _, elem := range output {
		fmt.Println(elem.Timestamp.Valid, elem.Timestamp.Value, elem.Data)
	}

	// Output:
	// true 1 5
	// true 2 -0.05
	// false 0 -0.1
}

// This example shows how to reject non-finite inputs before the transform.
func Example_finite() {
	ctx := context.Background()
	cfg := leakyrelu.NewConfig()

	handler := leakyrelu.NewHandleElementFunc(cfg, leakyrelu.DefaultSLogger())
	handler.Transform = leakyrelu.Compose2(leakyrelu.NewFiniteFunc(), handler.Transform)

	_, err := handler.Call(ctx, math.Inf(-1))
	fmt.Println(err, cfg.ErrClassifier.Classify(err))

	// Output:
	// non-finite value: -Inf ENONFINITE
}
