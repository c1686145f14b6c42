package elastic

import "math"

// newLevelSizes computes s0..s_{L-1} for a table of capacity N. spec.md §3
// fixes L = max(1, ceil(log2(N))) and s_i ~= N/2^(i+1), with the last level
// absorbing rounding so that sum(sizes) == N exactly. Scenario 2 in spec.md
// §8 pins down the rounding rule precisely (N=8 must yield L=3 with sizes
// (4,2,2), not (4,2,1,1)): every level except the last is ceil(N/2^(i+1)),
// and the last level takes whatever capacity remains after the rest.
func newLevelSizes(capacity int) []int {
	levels := 1
	if capacity > 1 {
		levels = int(math.Ceil(math.Log2(float64(capacity))))
	}
	sizes := make([]int, 0, levels)
	remaining := capacity
	for i := 0; i < levels-1 && remaining > 0; i++ {
		s := ceilDiv(capacity, 1<<uint(i+1))
		if s > remaining {
			s = remaining
		}
		sizes = append(sizes, s)
		remaining -= s
	}
	// The ceil-rounded sizes above can, for some capacities, already sum to
	// capacity exactly before reaching the planned level count (e.g.
	// capacity=1000 exhausts remaining after 9 of its 10 planned levels).
	// Rather than append a degenerate zero-size trailing level, stop one
	// level short: every invariant (sum == capacity, geometric decrease)
	// still holds with fewer, larger levels.
	if remaining > 0 {
		sizes = append(sizes, remaining)
	}
	return sizes
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// insertionPolicy walks the level array in ascending order, applying
// spec.md §4.4's level-selection loop: skip a level outright once its free
// fraction has dropped to or below delta, otherwise spend a bounded probe
// budget in it before spilling to the next level.
func insertionPolicy[K comparable, V any](levels []*level[K, V], hasher Hasher[K], key K, value V, delta, c float64) (outcome insertOutcome, isNew bool) {
	for i, lv := range levels {
		epsilon := lv.epsilon()
		if epsilon <= delta {
			continue
		}
		limit := probeLimit(epsilon, delta, c, epsilonFloor(lv.size()))
		hash := hasher.HashAt(key, i)
		switch res, isNew := lv.tryInsert(key, value, hash, limit); res {
		case placed:
			return placed, isNew
		case probeLimitExceeded, levelFull:
			continue
		}
	}
	return probeLimitExceeded, false
}

// searchPolicy walks the same levels in the same ascending order using the
// unbounded, search-time probe limit, per spec.md §4.4's determinism
// requirement ("levels are always tried in ascending index order").
func searchPolicy[K comparable, V any](levels []*level[K, V], hasher Hasher[K], key K) (V, bool) {
	for i, lv := range levels {
		hash := hasher.HashAt(key, i)
		if v, ok := lv.search(key, hash); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}
