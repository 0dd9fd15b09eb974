// Package tag defines the closed set of single-byte wire tags shared by
// every other tagwire package, plus the skip driver that consumes one
// arbitrary encoded value without knowing its schema.
//
// The numeric assignments below are part of the wire format and must never
// change; they are effectively data, not code.
package tag

// Tag is the leading byte of any encoded value, identifying its shape.
type Tag = byte

// Sentinels and small-integer direct range.
const (
	None  Tag = 1 // absent optional value
	Some  Tag = 2 // present optional value, followed by the inner value
	Zero  Tag = 3 // integer 0 / boolean false
	One   Tag = 4 // integer 1 / boolean true
	// SmallIntMax is the highest direct-encoded integer value (127),
	// reached at tag 130 = Zero + 127.
	SmallIntMax = 127
	// SmallIntBase is added to a direct value 0..=127 to form its tag.
	SmallIntBase = Zero
)

// Extended integer widths and the negate marker.
const (
	U8       Tag = 131 // followed by (value-128) as one byte
	U16      Tag = 132 // followed by little-endian 2 bytes
	U32      Tag = 133 // followed by little-endian 4 bytes
	U64      Tag = 134 // followed by little-endian 8 bytes
	U128     Tag = 135 // followed by little-endian 16 bytes
	Negate   Tag = 136 // followed by the unsigned encoding of the complement
	Float32  Tag = 137 // followed by 4 bytes IEEE-754
	Float64  Tag = 138 // followed by 8 bytes IEEE-754
)

// Strings.
const (
	// ShortStringBase is added to a length 0..=40 to form its tag.
	ShortStringBase Tag = 139
	// ShortStringMaxLen is the longest string representable in the short
	// range (tags 139..=179).
	ShortStringMaxLen = 40
	// LongString is followed by a varint length, then the UTF-8 bytes.
	LongString Tag = 180
)

// Binary blob.
const (
	// Binary is followed by a varint length, then raw bytes.
	Binary Tag = 181
)

// Struct flavors.
const (
	UnitStruct       Tag = 182
	NamedStruct      Tag = 183
	PositionalStruct Tag = 184
)

// Enum flavors.
const (
	UnitEnum       Tag = 185
	NamedEnum      Tag = 186
	PositionalEnum Tag = 187
)

// Lists, tuples, maps.
const (
	// ShortListBase is added to a count 0..=5 to form its tag.
	ShortListBase Tag = 188
	// ShortListMaxLen is the longest list representable in the short
	// range (tags 188..=193).
	ShortListMaxLen = 5
	// LongList is followed by a varint count, then the elements.
	LongList Tag = 194
	// Tuple is followed by a varint arity, then the elements.
	Tuple Tag = 195
	// Map is followed by a varint count, then count*(key,value) pairs.
	Map Tag = 196
)

// Domain types.
const (
	CalendarDateTime  Tag = 197
	CalendarDate      Tag = 198
	CalendarTime      Tag = 199
	Decimal           Tag = 200
	UUID              Tag = 201 // shared by uuid and ulid
	JSONNull          Tag = 202
	JSONBool          Tag = 203
	JSONNumber        Tag = 204
	JSONString        Tag = 205
	JSONArray         Tag = 206
	JSONObject        Tag = 207
	NaiveDateTime     Tag = 208
)

// MemberTerminator is the byte 0x00, reserved to mark the end of a named
// struct's or named enum variant's member list. It is never a valid member
// identifier.
const MemberTerminator byte = 0x00

// IsShortInt reports whether t is in the direct small-integer range
// (tags 3..=130, values 0..=127) and returns the decoded value.
func IsShortInt(t Tag) (value uint64, ok bool) {
	if t < Zero || t > Zero+SmallIntMax {
		return 0, false
	}

	return uint64(t - Zero), true
}

// IsShortString reports whether t is in the short-string range
// (tags 139..=179) and returns the decoded length.
func IsShortString(t Tag) (length int, ok bool) {
	if t < ShortStringBase || t > ShortStringBase+ShortStringMaxLen {
		return 0, false
	}

	return int(t - ShortStringBase), true
}

// IsShortList reports whether t is in the short-list range
// (tags 188..=193) and returns the decoded count.
func IsShortList(t Tag) (count int, ok bool) {
	if t < ShortListBase || t > ShortListBase+ShortListMaxLen {
		return 0, false
	}

	return int(t - ShortListBase), true
}
