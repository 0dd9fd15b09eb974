package tag

import (
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/wirebuf"
)

// MemberIDEscape is the byte 0xFF that introduces an 8-byte little-endian
// identifier for values >= MemberIDEscapeThreshold.
const MemberIDEscape byte = 0xFF

// MemberIDEscapeThreshold is the first identifier that requires the
// escaped 9-byte form; identifiers below it fit in the single byte equal
// to the identifier itself.
const MemberIDEscapeThreshold uint64 = 251

// WriteMemberID writes a member or variant identifier using the compact
// encoding: one byte for ids in [1, 250], else MemberIDEscape followed by
// the 8-byte little-endian id. id must not be zero; callers are
// responsible for checking that ahead of time (see errs.ErrIdentifierZero).
func WriteMemberID(w *wirebuf.Writer, id uint64) {
	if id < MemberIDEscapeThreshold {
		w.AppendByte(byte(id))
		return
	}

	w.AppendByte(MemberIDEscape)
	buf := w.Reserve(8)
	for i := range 8 {
		buf[i] = byte(id >> (8 * i))
	}
}

// ReadMemberID reads one member identifier, or reports done=true if the
// next byte is the MemberTerminator.
func ReadMemberID(r *wirebuf.Reader) (id uint64, done bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, false, err
	}

	if b == MemberTerminator {
		return 0, true, nil
	}

	if b != MemberIDEscape {
		return uint64(b), false, nil
	}

	buf, err := r.SplitOff(8)
	if err != nil {
		return 0, false, err
	}

	var id64 uint64
	for i := 7; i >= 0; i-- {
		id64 = id64<<8 | uint64(buf[i])
	}

	if id64 == 0 {
		return 0, false, errs.ErrIdentifierZero
	}

	return id64, false, nil
}
