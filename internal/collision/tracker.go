// Package collision detects events that share an archive key.
package collision

// Outcome classifies a tracked key.
type Outcome uint8

const (
	// New is a key seen for the first time.
	New Outcome = iota
	// Duplicate is a key seen before with identical content.
	Duplicate
	// Collision is a key seen before with different content.
	Collision
)

func (o Outcome) String() string {
	switch o {
	case New:
		return "new"
	case Duplicate:
		return "duplicate"
	case Collision:
		return "collision"
	default:
		return "unknown"
	}
}

// Tracker remembers the content checksum of every key it has seen.
//
// A Collision means two different events map to the same key; the later one
// replaces the earlier one in the archive.
//
// Note: Tracker is NOT thread-safe.
type Tracker[K comparable] struct {
	checksums  map[K]uint64
	collisions []K // in detection order
	duplicates int
}

// NewTracker creates an empty tracker.
func NewTracker[K comparable]() *Tracker[K] {
	return &Tracker[K]{
		checksums: make(map[K]uint64),
	}
}

// Track records key with the checksum of its content and classifies it.
//
// After a Collision the new checksum replaces the old one, matching the
// overwrite in the archive.
func (t *Tracker[K]) Track(key K, checksum uint64) Outcome {
	prev, exists := t.checksums[key]
	switch {
	case !exists:
		t.checksums[key] = checksum
		return New
	case prev == checksum:
		t.duplicates++
		return Duplicate
	default:
		t.checksums[key] = checksum
		t.collisions = append(t.collisions, key)

		return Collision
	}
}

// HasCollision reports whether any Collision has been seen.
func (t *Tracker[K]) HasCollision() bool {
	return len(t.collisions) > 0
}

// Collisions returns the colliding keys in detection order. A key appears once
// per collision.
func (t *Tracker[K]) Collisions() []K {
	return t.collisions
}

// Duplicates returns the number of Duplicate outcomes.
func (t *Tracker[K]) Duplicates() int {
	return t.duplicates
}

// Count returns the number of distinct keys.
func (t *Tracker[K]) Count() int {
	return len(t.checksums)
}

// Reset clears all state, keeping the map capacity.
func (t *Tracker[K]) Reset() {
	clear(t.checksums)
	t.collisions = t.collisions[:0]
	t.duplicates = 0
}
