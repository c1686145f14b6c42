package elastic

import "math"

// defaultProbeConstant is the c parameter from spec.md §3/§4.2. The paper
// and the Rust prototype both use 4.0; the teacher's own bank-based variants
// default their analogous constant ("Bank1FillFactor"/"BankOverflowFactor")
// much higher because their probe-limit formula is shaped differently, so
// that value isn't reused here — 4.0 is the one grounded directly in
// spec.md and original_source/src/lib.rs.
const defaultProbeConstant = 4.0

// Option configures a Table at construction time, following the
// functional-options pattern cockroachdb/swiss uses for its Map[K,V]
// (WithHash, WithAllocator).
type Option[K comparable, V any] func(*Table[K, V])

// WithProbeConstant overrides the default probe-limit constant c (spec.md
// §3, §9: "Implementations should expose c as a constructor parameter").
// c must be positive; New validates it after all options have run.
func WithProbeConstant[K comparable, V any](c float64) Option[K, V] {
	return func(t *Table[K, V]) {
		t.c = c
	}
}

// WithHasher overrides the default hash/maphash-backed Hasher, letting a
// caller plug in a different non-cryptographic hash family (spec.md §4.1).
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(t *Table[K, V]) {
		t.hasher = h
	}
}

// Table is the Elastic Table of spec.md §2/§3: a fixed-capacity,
// open-addressing associative container whose levels are allocated once at
// construction and never reallocated, resized, or rehashed. A Table is not
// safe for concurrent use; per spec.md §5 it is single-writer, and readers
// may only run concurrently with each other on a quiescent table.
type Table[K comparable, V any] struct {
	hasher     Hasher[K]
	levels     []*level[K, V]
	capacity   int
	maxInserts int
	delta      float64
	c          float64
	n          int
}

// New constructs a Table with the given total capacity and target
// free-space fraction delta, applying any Options in order. It validates
// capacity, delta, and (if set via WithProbeConstant) c against spec.md §6's
// parameter rules, returning InvalidParameterError instead of the teacher's
// panic-on-misuse behavior so construction failures are reportable like any
// other error in this module (spec.md §7).
func New[K comparable, V any](capacity int, delta float64, opts ...Option[K, V]) (*Table[K, V], error) {
	if capacity < 1 {
		return nil, InvalidParameterError{msg: "capacity must be at least 1"}
	}
	if !(delta > 0 && delta < 1) {
		return nil, InvalidParameterError{msg: "delta must be in (0, 1)"}
	}

	t := &Table[K, V]{
		capacity: capacity,
		delta:    delta,
		c:        defaultProbeConstant,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.c <= 0 {
		return nil, InvalidParameterError{msg: "probe constant c must be positive"}
	}
	if t.hasher == nil {
		t.hasher = newMapHasher[K]()
	}

	sizes := newLevelSizes(capacity)
	t.levels = make([]*level[K, V], len(sizes))
	for i, s := range sizes {
		t.levels[i] = newLevel[K, V](s)
	}
	t.maxInserts = int(math.Floor(float64(capacity) * (1 - delta)))

	return t, nil
}

// Insert places key/value into the table. It returns TableFullError, and
// leaves the table's state completely unchanged, if the delta-based
// occupancy ceiling has already been reached or every level declined the
// key within its bounded probe window (spec.md §4.4).
//
// Insert deduplicates only within its bounded probe window: a re-inserted
// key found there has its value overwritten in place, but a key placed
// deeper than the current limit is not seen, so it may occupy two slots,
// with the earlier-probed copy shadowing the later one for Search, per the
// documented subtlety in spec.md §4.3. Use InsertOrUpdate when callers need
// upsert semantics.
func (t *Table[K, V]) Insert(key K, value V) error {
	if t.n >= t.maxInserts {
		return TableFullError{msg: "capacity ceiling reached"}
	}
	outcome, isNew := insertionPolicy(t.levels, t.hasher, key, value, t.delta, t.c)
	if outcome != placed {
		return TableFullError{msg: "all levels declined the key"}
	}
	if isNew {
		t.n++
	}
	return nil
}

// InsertOrUpdate is the opt-in unbounded-search variant spec.md §4.3 and §9
// invite: it first performs an unbounded Search across every level, and if
// the key is already present, overwrites its value in place without
// touching occupancy. Only on a miss does it fall through to the ordinary
// bounded Insert. This mirrors the shape of the teacher's own Set method
// (lookup first, Insert on miss), wired to the elastic level/probe
// machinery instead of the teacher's bank walk.
func (t *Table[K, V]) InsertOrUpdate(key K, value V) error {
	for i, lv := range t.levels {
		hash := t.hasher.HashAt(key, i)
		if lv.updateIfPresent(key, value, hash) {
			return nil
		}
	}
	return t.Insert(key, value)
}

// Search returns the value stored under key, if any. It never fails:
// absence is reported as (zero, false), never an error (spec.md §7).
func (t *Table[K, V]) Search(key K) (V, bool) {
	return searchPolicy(t.levels, t.hasher, key)
}

// Len returns the current number of occupied slots across all levels.
func (t *Table[K, V]) Len() int {
	return t.n
}

// Capacity returns the total capacity N the table was constructed with.
func (t *Table[K, V]) Capacity() int {
	return t.capacity
}

// LevelStats describes one level's size and current occupancy, as returned
// by Table.Stats.
type LevelStats struct {
	Size     int
	Occupied int
}

// Stats returns a snapshot of per-level occupancy. It supplements a feature
// present in original_source/src/lib.rs (print_status) that the distilled
// spec.md dropped: a debug/introspection accessor, not a CLI or logging
// surface, so it stays inside the in-process API boundary of spec.md §6.
func (t *Table[K, V]) Stats() []LevelStats {
	stats := make([]LevelStats, len(t.levels))
	for i, lv := range t.levels {
		stats[i] = LevelStats{Size: lv.size(), Occupied: lv.occupied}
	}
	return stats
}
