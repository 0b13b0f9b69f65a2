package forest

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// SeededRNG returns the placement stream for a stand seed.
func SeededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible scene synthesis.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// TreeRNG returns an independent substream for the tree at the given stand
// index. Each tree draws from its own stream, separate from the placement
// stream, so a fixed seed reproduces the stand even if trees are later
// generated out of order or in parallel.
func TreeRNG(seed int64, index int) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(
		seedWord(seed, fmt.Sprintf("tree:%d:a", index)),
		seedWord(seed, fmt.Sprintf("tree:%d:b", index)),
	))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
