// Package collision detects keys written twice into one CBOR map.
package collision

import (
	"fmt"
	"slices"

	"github.com/arloliu/coapenc/errs"
)

// Tracker records the keys of one map by hash. Keys that share a hash are told
// apart by name, so a hash collision is never reported as a duplicate.
type Tracker struct {
	keys         map[uint64]string // hash -> first key seen with it
	keyList      []string          // keys in write order
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:    make(map[uint64]string),
		keyList: make([]string, 0),
	}
}

// Track records key with its hash h.
//
// Returns errs.ErrDuplicateKey if key was already tracked.
func (t *Tracker) Track(key string, h uint64) error {
	if existing, ok := t.keys[h]; ok {
		if existing == key {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
		}

		// same hash, different key
		t.hasCollision = true
		if slices.Contains(t.keyList, key) {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
		}
	} else {
		t.keys[h] = key
	}

	t.keyList = append(t.keyList, key)

	return nil
}

// HasCollision reports whether two different keys shared a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Keys returns the tracked keys in write order.
func (t *Tracker) Keys() []string {
	return t.keyList
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return len(t.keyList)
}

// Reset clears the tracker for the next map, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.keys)
	t.keyList = t.keyList[:0]
	t.hasCollision = false
}
