package wirebuf

import "github.com/arval-dev/tagwire/errs"

// DefaultMaxDepth is the recommended maximum nesting depth.
const DefaultMaxDepth = 128

// DefaultMaxElements is the recommended maximum element count for a single
// list, map, or tuple. Zero means "no limit" and is the default; callers
// that want adversarial-input protection must opt in via Limits.
const DefaultMaxElements = 0

// Limits bounds the resources a single decode call may consume: a
// configurable maximum recursion depth and a maximum element count.
type Limits struct {
	// MaxDepth is the maximum nesting depth of negate-markers, optionals,
	// lists, tuples, maps, and aggregates. Zero means DefaultMaxDepth.
	MaxDepth int
	// MaxElements is the maximum element count accepted for a single
	// list, map, or tuple. Zero means unlimited.
	MaxElements int
}

// DefaultLimits returns the recommended limits: depth capped at
// DefaultMaxDepth, element counts unbounded.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth, MaxElements: DefaultMaxElements}
}

// Reader is a read cursor over a caller-owned byte slice. It exposes the
// peek-byte, advance-by-n, and split-off-n operations every primitive and
// aggregate decoder is built on, plus depth/count bookkeeping for
// adversarial-input protection.
//
// A Reader is not safe for concurrent use; a single buffer is single-owner.
type Reader struct {
	data   []byte
	pos    int
	limits Limits
	depth  int
}

// NewReader creates a Reader over data using DefaultLimits.
func NewReader(data []byte) *Reader {
	return NewReaderWithLimits(data, DefaultLimits())
}

// NewReaderWithLimits creates a Reader over data with explicit resource
// limits.
func NewReaderWithLimits(data []byte, limits Limits) *Reader {
	if limits.MaxDepth <= 0 {
		limits.MaxDepth = DefaultMaxDepth
	}

	return &Reader{data: data, limits: limits}
}

// Len returns the number of unread bytes remaining. A nil Reader has none.
func (r *Reader) Len() int {
	if r == nil {
		return 0
	}

	return len(r.data) - r.pos
}

// Pos returns the current cursor offset into the original data slice.
func (r *Reader) Pos() int {
	if r == nil {
		return 0
	}

	return r.pos
}

// PeekByte returns the next byte without advancing the cursor.
// ok is false if the reader is exhausted or nil.
func (r *Reader) PeekByte() (b byte, ok bool) {
	if r == nil || r.pos >= len(r.data) {
		return 0, false
	}

	return r.data[r.pos], true
}

// ReadByte consumes and returns the next byte. A nil Reader reports
// errs.ErrNilReader instead of the nil-pointer panic that would otherwise
// follow from dereferencing it.
func (r *Reader) ReadByte() (byte, error) {
	if r == nil {
		return 0, errs.ErrNilReader
	}
	if r.pos >= len(r.data) {
		return 0, errs.ErrShortBuffer
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// Advance moves the cursor forward by n bytes without returning them. It
// fails if fewer than n bytes remain, or if r is nil.
func (r *Reader) Advance(n int) error {
	if r == nil {
		return errs.ErrNilReader
	}
	if n < 0 || r.pos+n > len(r.data) {
		return errs.ErrShortBuffer
	}

	r.pos += n

	return nil
}

// SplitOff returns the next n bytes as a sub-slice of the reader's
// underlying data (zero-copy — it aliases the caller's original buffer)
// and advances the cursor past them. Used for byte blobs and strings.
func (r *Reader) SplitOff(n int) ([]byte, error) {
	if r == nil {
		return nil, errs.ErrNilReader
	}
	if n < 0 || r.pos+n > len(r.data) {
		return nil, errs.ErrShortBuffer
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// EnterNested increments the recursion depth and fails with
// errs.ErrDepthExceeded once the configured MaxDepth is exceeded. Every
// recursive decode (negate-marker, optional-some, list/map/tuple element,
// nested aggregate) must call EnterNested before recursing and
// ExitNested when it returns.
func (r *Reader) EnterNested() error {
	if r == nil {
		return errs.ErrNilReader
	}

	r.depth++
	if r.depth > r.limits.MaxDepth {
		return errs.ErrDepthExceeded
	}

	return nil
}

// ExitNested decrements the recursion depth. It must be paired with every
// successful EnterNested call, typically via defer.
func (r *Reader) ExitNested() {
	if r == nil {
		return
	}

	r.depth--
}

// CheckCount validates a declared element count (list length, map entry
// count, tuple arity) against MaxElements. A MaxElements of 0 means
// unlimited.
func (r *Reader) CheckCount(n int) error {
	if r == nil {
		return errs.ErrNilReader
	}
	if r.limits.MaxElements > 0 && n > r.limits.MaxElements {
		return errs.ErrCountExceeded
	}

	return nil
}
