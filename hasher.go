package elastic

import "hash/maphash"

// Hasher produces the per-level hash stream a Table probes with. HashAt must
// be deterministic within a single table's lifetime: the same (key, level)
// pair always yields the same value for the life of the Table that owns the
// Hasher, so that a key placed during insertion remains reachable by a later
// search. Cross-process stability is explicitly not required (spec.md §4.1).
//
// Implementations should mix the level index into the hash input rather than
// just XOR-ing it into the output, so that a key's probe trajectory in level
// i is statistically independent of its trajectory in level j.
type Hasher[K comparable] interface {
	HashAt(key K, level int) uint64
}

// levelKey bundles a level index with a key so a single maphash.Comparable
// call mixes both into one hash input, following the teacher's own comment
// ("write the level index first, then the key") from spec.md §4.1.
type levelKey[K comparable] struct {
	Level int
	Key   K
}

// mapHasher is the default Hasher, built on hash/maphash the same way the
// teacher's defaultHasher wraps maphash.Bytes/maphash.MakeSeed. A fresh seed
// is drawn once per table at construction time, giving each table instance
// its own independent hash family without requiring the caller to supply
// one.
type mapHasher[K comparable] struct {
	seed maphash.Seed
}

func newMapHasher[K comparable]() mapHasher[K] {
	return mapHasher[K]{seed: maphash.MakeSeed()}
}

func (h mapHasher[K]) HashAt(key K, level int) uint64 {
	return maphash.Comparable(h.seed, levelKey[K]{Level: level, Key: key})
}
