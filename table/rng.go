package table

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

// seatRNG returns a deterministically seeded RNG for one seat. Each seat's
// stream is derived by XORing the table seed with a hash of the seat name,
// so seats are isolated from each other and a given seed reproduces the same
// delay sequence at every seat.
func seatRNG(seed int64, seat int) *rand.Rand {
	derived := seed ^ fnv1a64(fmt.Sprintf("seat_%d", seat))
	return rand.New(rand.NewSource(derived))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// uniformDelay draws a duration uniformly from [r.Min, r.Max].
func uniformDelay(rng *rand.Rand, r DelayRange) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(rng.Int63n(int64(r.Max-r.Min)+1))
}
