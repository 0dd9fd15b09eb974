package aggregate

import (
	"github.com/arval-dev/tagwire/errs"
	"github.com/arval-dev/tagwire/prim"
	"github.com/arval-dev/tagwire/wirebuf"
)

// PackWriter frames a struct or enum value in the pack format: no
// per-member identifiers, no terminator, members positional and
// recovered only by agreement between writer and reader on the target
// type's declaration order.
type PackWriter struct {
	w *wirebuf.Writer
}

// NewPackWriter wraps w for pack-format aggregate framing.
func NewPackWriter(w *wirebuf.Writer) *PackWriter {
	return &PackWriter{w: w}
}

// WriteUnitStruct writes a unit struct: no bytes at all.
func (e *PackWriter) WriteUnitStruct() {}

// BeginNamedStruct writes the 64-bit little-endian structural
// fingerprint and returns a Packer for writing the members in
// declaration order. There is no terminator; the reader must know the
// member count from the same fingerprint-matched type.
func (e *PackWriter) BeginNamedStruct(fingerprint uint64) *Packer {
	writeFingerprint(e.w, fingerprint)
	return &Packer{w: e.w}
}

// BeginPositionalStruct writes the variable-length member count and
// returns a Packer for writing the n members.
func (e *PackWriter) BeginPositionalStruct(n int) *Packer {
	prim.EncodeUvarint(e.w, uint64(n))
	return &Packer{w: e.w}
}

// WriteUnitEnum writes a unit enum variant: its variable-length variant
// identifier alone.
func (e *PackWriter) WriteUnitEnum(variantID uint64) {
	prim.EncodeUvarint(e.w, variantID)
}

// BeginNamedEnum writes the variant identifier and structural
// fingerprint, then returns a Packer for the variant's members.
func (e *PackWriter) BeginNamedEnum(variantID, fingerprint uint64) *Packer {
	prim.EncodeUvarint(e.w, variantID)
	writeFingerprint(e.w, fingerprint)

	return &Packer{w: e.w}
}

// BeginPositionalEnum writes the variant identifier and member count,
// then returns a Packer for the variant's members.
func (e *PackWriter) BeginPositionalEnum(variantID uint64, n int) *Packer {
	prim.EncodeUvarint(e.w, variantID)
	prim.EncodeUvarint(e.w, uint64(n))

	return &Packer{w: e.w}
}

// Packer writes a fixed, positionally-agreed sequence of packed member
// values: no identifiers, no terminator.
type Packer struct {
	w *wirebuf.Writer
}

// WriteMember invokes encode to append one member's packed value.
func (p *Packer) WriteMember(encode func(*wirebuf.Writer)) {
	encode(p.w)
}

// PackReader reads pack-format struct/enum framing. The caller supplies
// the target type's expected fingerprint and member count; PackReader
// itself does not carry schema knowledge.
type PackReader struct {
	r *wirebuf.Reader
}

// NewPackReader wraps r for pack-format aggregate framing.
func NewPackReader(r *wirebuf.Reader) *PackReader {
	return &PackReader{r: r}
}

// ReadVariantID reads a variant identifier.
func (d *PackReader) ReadVariantID() (uint64, error) {
	return prim.DecodeUvarint(d.r)
}

// ReadPositionalCount reads a declared member count.
func (d *PackReader) ReadPositionalCount() (int, error) {
	n, err := prim.DecodeUvarint(d.r)
	if err != nil {
		return 0, err
	}
	if err := d.r.CheckCount(int(n)); err != nil {
		return 0, err
	}

	return int(n), nil
}

// ExpectFingerprint reads the 64-bit structural fingerprint and requires
// it to equal want, returning errs.ErrFingerprintMismatch otherwise.
func (d *PackReader) ExpectFingerprint(want uint64) error {
	got, err := readFingerprint(d.r)
	if err != nil {
		return err
	}
	if got != want {
		return errs.ErrFingerprintMismatch
	}

	return nil
}

func writeFingerprint(w *wirebuf.Writer, fp uint64) {
	buf := w.Reserve(8)
	for i := range 8 {
		buf[i] = byte(fp >> (8 * i))
	}
}

func readFingerprint(r *wirebuf.Reader) (uint64, error) {
	buf, err := r.SplitOff(8)
	if err != nil {
		return 0, err
	}

	var fp uint64
	for i := 7; i >= 0; i-- {
		fp = fp<<8 | uint64(buf[i])
	}

	return fp, nil
}
