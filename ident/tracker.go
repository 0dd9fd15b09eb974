package ident

import "github.com/arval-dev/tagwire/errs"

// Tracker detects member/variant identifier collisions within a single
// aggregate instance during encoding. Unlike the teacher's metric-name
// collision tracker, a collision here is always a generation-time error —
// this format has no in-band way to disambiguate two members that hash to
// the same identifier, so Track reports it immediately rather than
// deferring to a fallback encoding.
type Tracker struct {
	seen map[uint64]string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]string)}
}

// Track records that name resolved to id. It returns errs.ErrIdentifierZero
// if id is the reserved terminator value, and errs.ErrIdentifierCollision
// if id was already claimed by a different member name within this
// aggregate instance.
func (t *Tracker) Track(name string, id uint64) error {
	if id == 0 {
		return errs.ErrIdentifierZero
	}

	if existing, ok := t.seen[id]; ok && existing != name {
		return errs.ErrIdentifierCollision
	}

	t.seen[id] = name

	return nil
}

// Reset clears all tracked identifiers, allowing the Tracker to be reused
// for a subsequent aggregate instance.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
}
