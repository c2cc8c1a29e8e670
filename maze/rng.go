// Random source helpers.
//
// Every Maze owns exactly one *rand.Rand; there is no package-level source.
// math/rand.Rand is not goroutine-safe, which is fine because a Maze has a
// single writer (Generate).
package maze

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand for seed.
// Unlike clock seeding, seed==0 is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// clockSeed derives a seed from the wall clock for unseeded mazes.
// The value is stored on the maze so the run can be replayed with WithSeed.
func clockSeed() int64 {
	return time.Now().UnixNano()
}

// shuffleCoords performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleCoords(a []Coord, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	rng.Shuffle(len(a), func(i, j int) {
		a[i], a[j] = a[j], a[i]
	})
}
