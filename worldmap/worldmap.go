// Package worldmap implements the perfect-hash lookup table from a
// region's XZ origin to its *region.Region, grounded on the original
// source's src/map.rs: a flat bucket array addressed by
// (magic*key)>>shift, rebuilt (new magic search, resized table) only
// when an insert can't find an empty bucket for its key.
package worldmap

import (
	"fmt"

	"github.com/rylanyancey/tanuki/internal/xrand"
	"github.com/rylanyancey/tanuki/ivec"
	"github.com/rylanyancey/tanuki/region"
)

// emptyKey marks an unoccupied bucket, mirroring the source's
// Bucket::EMPTY sentinel (key = u64::MAX, which no real packed origin
// key can ever equal since it packs two int32 halves).
const emptyKey = ^uint64(0)

// maxRebuildAttempts bounds the magic-search loop; exceeding it is
// treated as a panic-level invariant violation; per spec.md this
// should never happen in practice for any realistic region count.
const maxRebuildAttempts = 1000

type bucket struct {
	region *region.Region
	key    uint64
	idx    int // index into regions, valid only when key != emptyKey
}

// Map is the perfect-hash region table. The zero value is not usable;
// construct with New.
type Map struct {
	regions []*region.Region
	buckets []bucket
	shift   uint
	magic   uint64
	rng     *xrand.WyRand
}

// New constructs an empty Map, seeding its rebuild PRNG from
// xrand.DefaultSeed, matching the source's Regions::default() state.
func New() *Map {
	return &Map{
		buckets: []bucket{{key: emptyKey}},
		shift:   64, // single bucket: every key hashes to index 0
		rng:     xrand.NewWyRand(xrand.DefaultSeed),
	}
}

// ToKey packs a region XZ origin into the table's lookup key, per the
// source's to_key: high 32 bits from X, low 32 from Z (as their
// unsigned bit patterns, so negative origins pack distinctly rather
// than colliding after a lossy cast).
func ToKey(origin ivec.Vec2) uint64 {
	return (uint64(uint32(origin.X)) << 32) | uint64(uint32(origin.Z))
}

func (m *Map) hash(key uint64) uint64 {
	return (m.magic * key) >> m.shift
}

// Get returns the region registered at origin, if any.
func (m *Map) Get(origin ivec.Vec2) (*region.Region, bool) {
	key := ToKey(origin)
	b := m.buckets[m.hash(key)]
	if b.key != key {
		return nil, false
	}
	return b.region, true
}

// Has reports whether a region is registered at origin.
func (m *Map) Has(origin ivec.Vec2) bool {
	_, ok := m.Get(origin)
	return ok
}

// Insert registers r at its own origin, replacing any existing entry
// for that origin. It rebuilds the table (new magic, larger bucket
// array) if no empty bucket is available for a brand new key.
func (m *Map) Insert(r *region.Region) {
	origin := r.Origin()
	key := ToKey(origin)
	idx := m.hash(key)

	b := &m.buckets[idx]
	if b.key == key {
		b.region = r
		m.regions[b.idx] = r
		return
	}
	if b.key == emptyKey {
		regionIdx := len(m.regions)
		m.regions = append(m.regions, r)
		*b = bucket{region: r, key: key, idx: regionIdx}
		return
	}

	// collision against an occupied, differently-keyed bucket: append
	// the region and rebuild the whole table under a fresh magic.
	m.regions = append(m.regions, r)
	m.rebuild()
}

// Remove unregisters the region at origin, if present. It performs a
// swap-remove on the backing regions slice and patches the moved
// region's bucket index, exactly as the source's remove does, rather
// than rebuilding (removal never needs a new magic — it only shrinks
// the occupied set).
func (m *Map) Remove(origin ivec.Vec2) bool {
	key := ToKey(origin)
	idx := m.hash(key)
	b := &m.buckets[idx]
	if b.key != key {
		return false
	}

	removedIdx := b.idx
	last := len(m.regions) - 1
	m.regions[removedIdx] = m.regions[last]
	m.regions = m.regions[:last]

	*b = bucket{key: emptyKey}

	if removedIdx != last {
		movedOrigin := m.regions[removedIdx].Origin()
		movedKey := ToKey(movedOrigin)
		movedBucket := &m.buckets[m.hash(movedKey)]
		movedBucket.idx = removedIdx
	}
	return true
}

// Len returns the number of registered regions.
func (m *Map) Len() int { return len(m.regions) }

// Each calls f once per registered region, in no particular order.
func (m *Map) Each(f func(*region.Region)) {
	for _, r := range m.regions {
		f(r)
	}
}

// rebuild resizes the bucket table to next_pow2(1.5*len(regions)),
// searches for a magic constant placing every registered key in a
// distinct bucket, and re-inserts every region under the new table.
func (m *Map) rebuild() {
	n := len(m.regions)
	size := nextPow2(n + n/2)
	if size < 2 {
		size = 2
	}
	shift := uint(64 - trailingZeros64(uint64(size)))

	for attempt := 0; attempt < maxRebuildAttempts; attempt++ {
		magic := m.rng.Next()
		if tryMagic(m.regions, magic, shift, size) {
			m.magic = magic
			m.shift = shift
			m.buckets = make([]bucket, size)
			for i := range m.buckets {
				m.buckets[i] = bucket{key: emptyKey}
			}
			for i, r := range m.regions {
				key := ToKey(r.Origin())
				idx := (magic * key) >> shift
				m.buckets[idx] = bucket{region: r, key: key, idx: i}
			}
			return
		}
	}
	panic(rebuildFailedError{attempts: maxRebuildAttempts, n: n})
}

func tryMagic(regions []*region.Region, magic uint64, shift uint, size int) bool {
	seen := make([]bool, size)
	for _, r := range regions {
		key := ToKey(r.Origin())
		idx := (magic * key) >> shift
		if seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func trailingZeros64(n uint64) uint {
	if n == 0 {
		return 64
	}
	var i uint
	for n&1 == 0 {
		n >>= 1
		i++
	}
	return i
}

// rebuildFailedError is raised if no magic constant produces a
// collision-free table within maxRebuildAttempts tries — an
// astronomically unlikely event for any realistic region count, kept
// as a panic per spec.md's treatment of WorldMap invariant violations.
type rebuildFailedError struct {
	attempts int
	n        int
}

func (e rebuildFailedError) Error() string {
	return fmt.Sprintf("tanuki/worldmap: failed to find a collision-free magic for %d regions after %d attempts", e.n, e.attempts)
}
