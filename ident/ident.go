// Package ident derives the compact 64-bit identifiers used by aggregate
// framing: per-member/variant identifiers from declared names, and
// structural fingerprints for the pack format.
//
// The teacher repo (arloliu/mebo) hashes names with xxhash; this module
// hashes with the standard library's CRC-64 (ECMA polynomial) instead,
// because identifier derivation is part of the wire format here and must
// reproduce one fixed algorithm across implementations rather than an
// implementation's choice of fast hash (see DESIGN.md).
package ident

import "hash/crc64"

var table = crc64.MakeTable(crc64.ECMA)

// NameID computes the default member or variant identifier for name:
// CRC-64 (ECMA) of its UTF-8 bytes, reduced to a nonzero value by
// substituting 1 for a zero result. A user-supplied explicit identifier
// overrides this and never passes through NameID.
func NameID(name string) uint64 {
	sum := crc64.Checksum([]byte(name), table)
	if sum == 0 {
		return 1
	}

	return sum
}

// Kind distinguishes the two aggregate kinds a Fingerprint describes.
type Kind string

const (
	KindStruct Kind = "struct"
	KindEnum   Kind = "enum"
)

// Shape distinguishes the three member layouts of a struct or enum
// variant.
type Shape string

const (
	ShapeUnit       Shape = "unit"
	ShapeNamed      Shape = "named"
	ShapeUnnamed    Shape = "unnamed"
)

// Member describes one field contributing to a structural fingerprint.
type Member struct {
	Name     string
	TypeName string
}

// Fingerprint computes the pack-format structural fingerprint for an
// aggregate named typeName with the given kind, shape, and ordered
// members: CRC-64 (ECMA) over the canonical description string
// "type:<Name>|<struct|enum>|<named|unnamed|unit>|<member1-name>:<member1-type-name>|...".
func Fingerprint(typeName string, kind Kind, shape Shape, members []Member) uint64 {
	desc := "type:" + typeName + "|" + string(kind) + "|" + string(shape)
	for _, m := range members {
		desc += "|" + m.Name + ":" + m.TypeName
	}

	return crc64.Checksum([]byte(desc), table)
}
