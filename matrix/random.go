// SPDX-License-Identifier: MIT

package matrix

import (
	"math/rand"
	"time"
)

// Default value range of Random, [DefaultRandomMin, DefaultRandomMax).
const (
	DefaultRandomMin = 0
	DefaultRandomMax = 10
)

// Random returns a size×size matrix of uniform integers drawn from [lo, hi).
// A nil rng uses a time-seeded source; pass rand.New(rand.NewSource(seed))
// for reproducible test data.
//
// Errors:
//   - ErrInvalidDimensions for size <= 0.
//   - ErrBadRange for hi <= lo, or when hi − lo overflows int.
//
// Complexity:
//   - Time O(size²), Space O(size²).
func Random(rng *rand.Rand, size, lo, hi int) (*Dense, error) {
	span := hi - lo
	if hi <= lo || span <= 0 { // span wraps negative for ranges wider than MaxInt
		return nil, matrixErrorf(opRandom, ErrBadRange)
	}
	m, err := NewSquare(size)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for k := range m.data {
		m.data[k] = float64(lo + rng.Intn(span))
	}

	return m, nil
}
