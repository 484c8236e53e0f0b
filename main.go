package main

import (
	"fmt"
	"log"

	"github.com/torgeirsh/streamparse/pkg/stream"
	"github.com/torgeirsh/streamparse/pkg/stream/cursor"
	"github.com/torgeirsh/streamparse/pkg/stream/segment"
)

// ============================================================================
// DOMAIN LOGIC (EXAMPLE USAGE)
// ============================================================================

// Reading is one sample from a simulated sensor feed.
type Reading struct {
	Seq   int
	Level int
}

// generateReadings emits a feed whose level changes every few samples, so
// run-grouping has visible structure to find.
func generateReadings(count int) func(emit func(Reading)) error {
	return func(emit func(Reading)) error {
		for i := 0; i < count; i++ {
			emit(Reading{Seq: i, Level: i / 4})
		}
		return nil
	}
}

// ============================================================================
// EXPLICIT WALKTHROUGH
// ============================================================================

func main() {
	fmt.Println("--- streamparse demo ---")

	// 1. Cursor: ad hoc parsing with peek and pushback.
	c := cursor.New(stream.Of(10, 20, 30))
	head, _, err := c.Peek()
	if err != nil {
		log.Fatal(err)
	}
	c.Pushback(5)
	rest, err := c.DrawAll()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("peeked %d, drained after pushback: %v\n", head, rest)

	// 2. Run-grouping over an effectful generator source.
	levels := stream.Map(
		stream.FromGenerator(generateReadings(20)),
		func(r Reading) int { return r.Level },
	)
	runs := segment.Group(levels)

	lengths, genErr, err := stream.Collect(segment.Folds(runs, 0,
		func(acc, _ int) int { return acc + 1 },
		func(acc int) int { return acc }))
	if err != nil {
		log.Fatal(err)
	}
	if genErr != nil {
		log.Fatal(genErr)
	}
	fmt.Printf("run lengths: %v\n", lengths)

	// 3. Fixed-size chunking, folded to per-chunk sums.
	chunks := segment.ChunksOf(stream.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, "done"), 3)
	sums, final, err := stream.Collect(segment.Folds(chunks, 0,
		func(acc, v int) int { return acc + v },
		func(acc int) int { return acc }))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("chunk sums: %v (terminal %q)\n", sums, final)

	// 4. Intercalate: flatten with a separator between layers.
	chunks = segment.ChunksOf(stream.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, "done"), 3)
	joined, _, err := stream.Collect(segment.Intercalate(stream.Emit(0), chunks))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("intercalated: %v\n", joined)

	// 5. Truncation versus draining.
	take := segment.Take(1, segment.Group(stream.FromSlice([]int{1, 1, 2, 2}, "terminal")))
	kept, _, err := stream.Collect(segment.Concat(take))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("take 1 layer: %v (terminal value not recoverable)\n", kept)

	drained := segment.TakeDrain(1, segment.Group(stream.FromSlice([]int{1, 1, 2, 2}, "terminal")))
	kept, finalKept, err := stream.Collect(segment.Concat(drained))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("take-drain 1 layer: %v (terminal %q recovered)\n", kept, finalKept)

	fmt.Println("--- demo complete ---")
}
