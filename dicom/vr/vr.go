// Package vr defines DICOM Value Representations (VRs) and their properties.
//
// Value Representations specify the data type and format of DICOM element values.
// Each VR has specific encoding rules, padding requirements, and length constraints.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package vr

import (
	"fmt"
)

// Padding bytes used to extend values to even length.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
const (
	SpacePadding byte = 0x20
	NullPadding  byte = 0x00
)

// Separator is the backslash character which separates multiple values within
// a single character-string value field.
//
// See DICOM Part 5, Section 6.1.2.3:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1.2.3
const Separator byte = '\\'

// VR represents a DICOM Value Representation type.
// Each VR defines how element values are encoded and interpreted.
type VR uint8

// Standard DICOM Value Representations as defined in Part 5, Section 6.2.
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
const (
	// Invalid is a sentinel VR used when an Explicit VR stream contains a
	// two-letter code not defined by the standard. It behaves like Unknown
	// without the two reserved bytes following the VR field.
	Invalid VR = iota
	// ApplicationEntity (AE) - Application Entity title (string, max 16 chars, space-padded)
	ApplicationEntity
	// AgeString (AS) - Age in format nnnW, nnnM, nnnY (string, fixed 4 chars, space-padded)
	AgeString
	// AttributeTag (AT) - Tag (4 bytes, group-element pair)
	AttributeTag
	// CodeString (CS) - Code value (string, max 16 chars, space-padded, uppercase)
	CodeString
	// Date (DA) - Date in format YYYYMMDD (string, 8 chars, space-padded)
	Date
	// DecimalString (DS) - Decimal number as string (string, max 16 chars, space-padded)
	DecimalString
	// DateTime (DT) - Date and time (string, max 26 chars, space-padded)
	DateTime
	// FloatingPointDouble (FD) - 64-bit floating point (8 bytes)
	FloatingPointDouble
	// FloatingPointSingle (FL) - 32-bit floating point (4 bytes)
	FloatingPointSingle
	// IntegerString (IS) - Integer as string (string, max 12 chars, space-padded)
	IntegerString
	// LongString (LO) - Character string (string, max 64 chars, space-padded)
	LongString
	// LongText (LT) - Text (string, max 10240 chars, space-padded)
	LongText
	// OtherByte (OB) - Byte string (binary, variable length, null-padded)
	OtherByte
	// OtherDouble (OD) - 64-bit floating point array (binary, variable length)
	OtherDouble
	// OtherFloat (OF) - 32-bit floating point array (binary, variable length)
	OtherFloat
	// OtherLong (OL) - 32-bit integer array (binary, variable length)
	OtherLong
	// OtherVeryLong (OV) - 64-bit integer array (binary, variable length)
	OtherVeryLong
	// OtherWord (OW) - 16-bit integer array (binary, variable length)
	OtherWord
	// PersonName (PN) - Person's name in format Last^First^Middle^Prefix^Suffix
	PersonName
	// ShortString (SH) - Short character string (string, max 16 chars, space-padded)
	ShortString
	// SignedLong (SL) - Signed 32-bit integer (4 bytes)
	SignedLong
	// SequenceOfItems (SQ) - Sequence containing nested datasets (structured data)
	SequenceOfItems
	// SignedShort (SS) - Signed 16-bit integer (2 bytes)
	SignedShort
	// ShortText (ST) - Short text (string, max 1024 chars, space-padded)
	ShortText
	// SignedVeryLong (SV) - Signed 64-bit integer (8 bytes)
	SignedVeryLong
	// Time (TM) - Time in format HHMMSS.FFFFFF (string, max 14 chars, space-padded)
	Time
	// UnlimitedCharacters (UC) - Unlimited length character string
	UnlimitedCharacters
	// UniqueIdentifier (UI) - UID in dotted notation (string, max 64 chars, null-padded)
	UniqueIdentifier
	// UnsignedLong (UL) - Unsigned 32-bit integer (4 bytes)
	UnsignedLong
	// Unknown (UN) - Unknown value type (binary, variable length, null-padded)
	Unknown
	// UniversalResourceIdentifier (UR) - URI or URL (string, unlimited, space-padded)
	UniversalResourceIdentifier
	// UnsignedShort (US) - Unsigned 16-bit integer (2 bytes)
	UnsignedShort
	// UnlimitedText (UT) - Unlimited length text (string, unlimited, space-padded)
	UnlimitedText
	// UnsignedVeryLong (UV) - Unsigned 64-bit integer (8 bytes)
	UnsignedVeryLong
)

// descriptor carries the encoding rules for one VR.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
type descriptor struct {
	ident string
	name  string

	// The 16-bit code for the VR, the big-endian ASCII representation of the ident.
	code uint16

	// The byte used to pad values to an even length. Character strings pad with
	// space except UI which pads with a single trailing null, binary VRs pad
	// with null.
	padding byte

	// Whether, in Explicit VR encoding, the two-byte VR field is followed by
	// two reserved bytes and a 32-bit value length.
	//
	// Part 5, Section 7.1.2:
	// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
	explicitPad bool

	// Whether the value is interpreted as a character string instead of binary.
	characterString bool

	// Part 5, Section 6.1.2.3: SH, LO, UC, ST, LT, UT and PN honour the
	// dataset's Specific Character Set; other textual VRs always use the
	// default repertoire.
	replaceableCharset bool

	// Part 5, Section 6.1.2.3: backslash may appear within values only for
	// UT, ST and LT; for every other character-string VR it separates
	// multiple values.
	allowsBackslash bool

	// Whether the padding character may appear at the front / end of the value.
	padFront bool
	padEnd   bool
}

// descriptors is the static VR table. Indexed by the VR constant.
var descriptors = [...]descriptor{
	Invalid:                     {ident: "??", name: "Invalid", code: 0x0000, padding: NullPadding},
	ApplicationEntity:           {ident: "AE", name: "Application Entity", code: 0x4145, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	AgeString:                   {ident: "AS", name: "Age String", code: 0x4153, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	AttributeTag:                {ident: "AT", name: "Attribute Tag", code: 0x4154, padding: NullPadding},
	CodeString:                  {ident: "CS", name: "Code String", code: 0x4353, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	Date:                        {ident: "DA", name: "Date", code: 0x4441, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	DecimalString:               {ident: "DS", name: "Decimal String", code: 0x4453, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	DateTime:                    {ident: "DT", name: "Date Time", code: 0x4454, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	FloatingPointDouble:         {ident: "FD", name: "Floating Point Double", code: 0x4644, padding: NullPadding},
	FloatingPointSingle:         {ident: "FL", name: "Floating Point Single", code: 0x464C, padding: NullPadding},
	IntegerString:               {ident: "IS", name: "Integer String", code: 0x4953, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	LongString:                  {ident: "LO", name: "Long String", code: 0x4C4F, padding: SpacePadding, characterString: true, replaceableCharset: true, padFront: true, padEnd: true},
	LongText:                    {ident: "LT", name: "Long Text", code: 0x4C54, padding: SpacePadding, characterString: true, replaceableCharset: true, allowsBackslash: true, padEnd: true},
	OtherByte:                   {ident: "OB", name: "Other Byte", code: 0x4F42, padding: NullPadding, explicitPad: true, padEnd: true},
	OtherDouble:                 {ident: "OD", name: "Other Double", code: 0x4F44, padding: NullPadding, explicitPad: true},
	OtherFloat:                  {ident: "OF", name: "Other Float", code: 0x4F46, padding: NullPadding, explicitPad: true},
	OtherLong:                   {ident: "OL", name: "Other Long", code: 0x4F4C, padding: NullPadding, explicitPad: true},
	OtherVeryLong:               {ident: "OV", name: "Other Very Long", code: 0x4F56, padding: NullPadding, explicitPad: true},
	OtherWord:                   {ident: "OW", name: "Other Word", code: 0x4F57, padding: NullPadding, explicitPad: true},
	PersonName:                  {ident: "PN", name: "Person Name", code: 0x504E, padding: SpacePadding, characterString: true, replaceableCharset: true, padFront: true, padEnd: true},
	ShortString:                 {ident: "SH", name: "Short String", code: 0x5348, padding: SpacePadding, characterString: true, replaceableCharset: true, padFront: true, padEnd: true},
	SignedLong:                  {ident: "SL", name: "Signed Long", code: 0x534C, padding: NullPadding},
	SequenceOfItems:             {ident: "SQ", name: "Sequence of Items", code: 0x5351, padding: NullPadding, explicitPad: true},
	SignedShort:                 {ident: "SS", name: "Signed Short", code: 0x5353, padding: NullPadding},
	ShortText:                   {ident: "ST", name: "Short Text", code: 0x5354, padding: SpacePadding, characterString: true, replaceableCharset: true, allowsBackslash: true, padEnd: true},
	SignedVeryLong:              {ident: "SV", name: "Signed Very Long", code: 0x5356, padding: NullPadding, explicitPad: true},
	Time:                        {ident: "TM", name: "Time", code: 0x544D, padding: SpacePadding, characterString: true, padFront: true, padEnd: true},
	UnlimitedCharacters:         {ident: "UC", name: "Unlimited Characters", code: 0x5543, padding: SpacePadding, explicitPad: true, characterString: true, replaceableCharset: true, padEnd: true},
	UniqueIdentifier:            {ident: "UI", name: "Unique Identifier", code: 0x5549, padding: NullPadding, characterString: true, padEnd: true},
	UnsignedLong:                {ident: "UL", name: "Unsigned Long", code: 0x554C, padding: NullPadding},
	Unknown:                     {ident: "UN", name: "Unknown", code: 0x554E, padding: NullPadding, explicitPad: true},
	UniversalResourceIdentifier: {ident: "UR", name: "Universal Resource Identifier", code: 0x5552, padding: SpacePadding, explicitPad: true, characterString: true, padFront: true, padEnd: true},
	UnsignedShort:               {ident: "US", name: "Unsigned Short", code: 0x5553, padding: NullPadding},
	UnlimitedText:               {ident: "UT", name: "Unlimited Text", code: 0x5554, padding: SpacePadding, explicitPad: true, characterString: true, replaceableCharset: true, allowsBackslash: true, padEnd: true},
	UnsignedVeryLong:            {ident: "UV", name: "Unsigned Very Long", code: 0x5556, padding: NullPadding, explicitPad: true},
}

// byCode maps the 16-bit VR code back to its constant.
var byCode = func() map[uint16]VR {
	m := make(map[uint16]VR, len(descriptors))
	for v := ApplicationEntity; v <= UnsignedVeryLong; v++ {
		m[descriptors[v].code] = v
	}
	return m
}()

// byIdent maps the two-letter identifier back to its constant.
var byIdent = func() map[string]VR {
	m := make(map[string]VR, len(descriptors))
	for v := ApplicationEntity; v <= UnsignedVeryLong; v++ {
		m[descriptors[v].ident] = v
	}
	return m
}()

func (v VR) desc() *descriptor {
	if int(v) >= len(descriptors) {
		return &descriptors[Invalid]
	}
	return &descriptors[v]
}

// String returns the two-character identifier of the VR, or "??" for Invalid.
func (v VR) String() string {
	return v.desc().ident
}

// Name returns the display name of the VR, e.g. "Person Name" for PersonName.
func (v VR) Name() string {
	return v.desc().name
}

// Code returns the 16-bit code of the VR, the big-endian ASCII pair of its
// identifier.
func (v VR) Code() uint16 {
	return v.desc().code
}

// PaddingByte returns the byte used for padding odd-length values for this VR.
// Character string VRs use space (0x20) padding except UI; UI and binary VRs
// use null (0x00) padding.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func (v VR) PaddingByte() byte {
	return v.desc().padding
}

// HasExplicitPad returns true if, in Explicit VR encoding, the two-byte VR
// field is followed by two reserved bytes and the value length is a 32-bit
// integer. This holds for OB, OD, OF, OL, OV, OW, SQ, UN, SV, UC, UR, UV and UT.
//
// See DICOM Part 5, Section 7.1.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.2
func (v VR) HasExplicitPad() bool {
	return v.desc().explicitPad
}

// IsCharacterString returns true if this VR represents character string data.
func (v VR) IsCharacterString() bool {
	return v.desc().characterString
}

// UsesReplacementCharset returns true if values of this VR are decoded using
// the dataset's Specific Character Set rather than the default repertoire.
// This holds for SH, LO, UC, ST, LT, UT and PN.
//
// See DICOM Part 5, Section 6.1.2.3:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1.2.3
func (v VR) UsesReplacementCharset() bool {
	return v.desc().replaceableCharset
}

// AllowsBackslash returns true if the backslash character may appear within
// values of this VR (UT, ST and LT). For all other character-string VRs the
// backslash separates multiple values.
//
// See DICOM Part 5, Section 6.1.2.3:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1.2.3
func (v VR) AllowsBackslash() bool {
	return v.desc().allowsBackslash
}

// CanPadFront returns true if the padding character may appear at the front
// of the value.
func (v VR) CanPadFront() bool {
	return v.desc().padFront
}

// CanPadEnd returns true if the padding character may appear at the end of
// the value.
func (v VR) CanPadEnd() bool {
	return v.desc().padEnd
}

// FromCode looks up a VR by its 16-bit code. Returns false if the code does
// not correspond to a known VR; the parser substitutes Invalid in that case.
func FromCode(code uint16) (VR, bool) {
	v, ok := byCode[code]
	return v, ok
}

// Parse parses a two-character VR string and returns the corresponding VR constant.
func Parse(s string) (VR, error) {
	if v, ok := byIdent[s]; ok {
		return v, nil
	}
	return Invalid, fmt.Errorf("invalid VR: %q", s)
}

// IsValid returns true if the given string is a valid VR identifier.
func IsValid(s string) bool {
	_, ok := byIdent[s]
	return ok
}
