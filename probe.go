package elastic

import "math"

// probeIndex returns the j-th quadratic probe index within a level of size
// size, starting from base b: b plus the j-th triangular number, mod size.
// j*(j+1) is always even so the division is exact. This is the same
// formula the pack's gostonefire/filehashmap uses in its
// QuadraticProbingHashAlgorithm.ProbeIteration, and is what actually
// delivers the full-coverage property spec.md §4.2 describes ("visits all
// s positions when s is a power of two") — the un-halved j+j² sum spec.md
// writes is always even, which would only ever reach half the slots of a
// power-of-two-sized level. When size is not a power of two the sequence
// may revisit slots before its period completes, which is why every caller
// here bounds its own walk instead of trusting the sequence to
// self-terminate.
func probeIndex(base, j, size int) int {
	return (base + (j*j+j)/2) % size
}

// epsilonFloor is the minimum fractional free space a level is allowed to
// report, avoiding log2(1/0) in the probe-limit formula. spec.md §4.2 pins
// this to 1/size for the level in question.
func epsilonFloor(size int) float64 {
	return 1 / float64(size)
}

// probeLimit computes f(epsilon, delta) from spec.md §4.2: the number of
// slots an insertion attempt may examine in a level before giving up on it.
// epsilon is the level's current fractional free space; it is clamped to
// the level's epsilonFloor before the log2 so a nearly-full level still
// yields a positive, finite limit instead of probing forever.
func probeLimit(epsilon, delta, c float64, floor float64) int {
	if epsilon < floor {
		epsilon = floor
	}
	logInvEpsilon := math.Log2(1 / epsilon)
	logInvDelta := math.Log2(1 / delta)
	limit := math.Ceil(c * math.Min(logInvEpsilon, logInvDelta))
	if limit < 1 {
		limit = 1
	}
	return int(limit)
}
