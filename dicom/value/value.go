// Package value defines the native value types a DICOM element decodes into.
//
// The Value sum is closed: every variant corresponds to decoder and encoder
// branches in the element package, and new variants must be added alongside
// matching branches there.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/neandrake/medicom-go/dicom/tag"
)

// Value represents a DICOM element value parsed into a native type.
type Value interface {
	// String returns a human-readable representation. Multiple values are
	// separated by backslash.
	String() string

	// Equals returns true if this value equals another value.
	Equals(other Value) bool

	// IsEmpty returns true when the value holds no entries.
	IsEmpty() bool
}

// Attributes holds decoded AT values, one tag per four bytes of the value field.
type Attributes []tag.Tag

// UID holds a decoded unique identifier (VR UI) with trailing NUL stripped.
type UID string

// Strings holds decoded character-string values, split on backslash unless
// the VR permits backslash within values.
type Strings []string

// Doubles holds decoded floating point values (FD, FL, OD, OF, and numeric DS).
type Doubles []float64

// Shorts holds decoded signed 16-bit values (SS).
type Shorts []int16

// Integers holds decoded signed 32-bit values (SL, and numeric IS).
type Integers []int32

// UnsignedIntegers holds decoded unsigned values widened to 32 bits
// (UL, OL, OW, US).
type UnsignedIntegers []uint32

// Longs holds decoded signed 64-bit values (SV).
type Longs []int64

// UnsignedLongs holds decoded unsigned 64-bit values (UV, OV).
type UnsignedLongs []uint64

// Bytes holds the raw value field for VRs with no native decoding.
type Bytes []byte

func (v Attributes) String() string {
	parts := make([]string, len(v))
	for i, t := range v {
		parts[i] = t.String()
	}
	return strings.Join(parts, "\\")
}

func (v UID) String() string {
	return string(v)
}

func (v Strings) String() string {
	return strings.Join(v, "\\")
}

func (v Doubles) String() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, "\\")
}

func (v Shorts) String() string           { return joinInts(v) }
func (v Integers) String() string         { return joinInts(v) }
func (v UnsignedIntegers) String() string { return joinInts(v) }
func (v Longs) String() string            { return joinInts(v) }
func (v UnsignedLongs) String() string    { return joinInts(v) }

// String renders the bytes as hex, truncated past 16 bytes.
func (v Bytes) String() string {
	const maxDisplayBytes = 16

	if len(v) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[")
	display := len(v)
	if display > maxDisplayBytes {
		display = maxDisplayBytes
	}
	for i := 0; i < display; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%02X", v[i])
	}
	if display < len(v) {
		fmt.Fprintf(&sb, " ... (%d bytes)", len(v))
	}
	sb.WriteString("]")
	return sb.String()
}

func joinInts[T int16 | int32 | int64 | uint32 | uint64](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "\\")
}

func (v Attributes) IsEmpty() bool       { return len(v) == 0 }
func (v UID) IsEmpty() bool              { return v == "" }
func (v Strings) IsEmpty() bool          { return len(v) == 0 }
func (v Doubles) IsEmpty() bool          { return len(v) == 0 }
func (v Shorts) IsEmpty() bool           { return len(v) == 0 }
func (v Integers) IsEmpty() bool         { return len(v) == 0 }
func (v UnsignedIntegers) IsEmpty() bool { return len(v) == 0 }
func (v Longs) IsEmpty() bool            { return len(v) == 0 }
func (v UnsignedLongs) IsEmpty() bool    { return len(v) == 0 }
func (v Bytes) IsEmpty() bool            { return len(v) == 0 }

func (v Attributes) Equals(other Value) bool {
	o, ok := other.(Attributes)
	return ok && equalSlices(v, o)
}

func (v UID) Equals(other Value) bool {
	o, ok := other.(UID)
	return ok && v == o
}

func (v Strings) Equals(other Value) bool {
	o, ok := other.(Strings)
	return ok && equalSlices(v, o)
}

func (v Doubles) Equals(other Value) bool {
	o, ok := other.(Doubles)
	return ok && equalSlices(v, o)
}

func (v Shorts) Equals(other Value) bool {
	o, ok := other.(Shorts)
	return ok && equalSlices(v, o)
}

func (v Integers) Equals(other Value) bool {
	o, ok := other.(Integers)
	return ok && equalSlices(v, o)
}

func (v UnsignedIntegers) Equals(other Value) bool {
	o, ok := other.(UnsignedIntegers)
	return ok && equalSlices(v, o)
}

func (v Longs) Equals(other Value) bool {
	o, ok := other.(Longs)
	return ok && equalSlices(v, o)
}

func (v UnsignedLongs) Equals(other Value) bool {
	o, ok := other.(UnsignedLongs)
	return ok && equalSlices(v, o)
}

func (v Bytes) Equals(other Value) bool {
	o, ok := other.(Bytes)
	return ok && equalSlices(v, o)
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compile-time interface checks.
var (
	_ Value = (Attributes)(nil)
	_ Value = (UID)("")
	_ Value = (Strings)(nil)
	_ Value = (Doubles)(nil)
	_ Value = (Shorts)(nil)
	_ Value = (Integers)(nil)
	_ Value = (UnsignedIntegers)(nil)
	_ Value = (Longs)(nil)
	_ Value = (UnsignedLongs)(nil)
	_ Value = (Bytes)(nil)
)

// AsString returns the first string of a Strings or UID value.
func AsString(v Value) (string, bool) {
	switch val := v.(type) {
	case UID:
		return string(val), true
	case Strings:
		if len(val) > 0 {
			return val[0], true
		}
	}
	return "", false
}

// AsStrings returns the string list of a Strings value.
func AsStrings(v Value) ([]string, bool) {
	if val, ok := v.(Strings); ok {
		return val, true
	}
	return nil, false
}

// AsUint16 returns the first entry of any integer-kind value narrowed to
// uint16. Used by consumers of the image-pixel module attributes (US VRs),
// which may decode differently under a dictionary-less parse.
func AsUint16(v Value) (uint16, bool) {
	u, ok := AsUint32(v)
	if !ok {
		return 0, false
	}
	return uint16(u), true
}

// AsUint32 returns the first entry of any integer-kind value widened to uint32.
func AsUint32(v Value) (uint32, bool) {
	switch val := v.(type) {
	case UnsignedIntegers:
		if len(val) > 0 {
			return val[0], true
		}
	case Shorts:
		if len(val) > 0 {
			return uint32(val[0]), true
		}
	case Integers:
		if len(val) > 0 {
			return uint32(val[0]), true
		}
	case Longs:
		if len(val) > 0 {
			return uint32(val[0]), true
		}
	case UnsignedLongs:
		if len(val) > 0 {
			return uint32(val[0]), true
		}
	}
	return 0, false
}

// AsDouble returns the first entry of a floating-point or integer-kind value
// as a float64.
func AsDouble(v Value) (float64, bool) {
	switch val := v.(type) {
	case Doubles:
		if len(val) > 0 {
			return val[0], true
		}
	case Shorts:
		if len(val) > 0 {
			return float64(val[0]), true
		}
	case Integers:
		if len(val) > 0 {
			return float64(val[0]), true
		}
	case UnsignedIntegers:
		if len(val) > 0 {
			return float64(val[0]), true
		}
	}
	return 0, false
}

// AsDoubles returns the float64 list of a Doubles value.
func AsDoubles(v Value) ([]float64, bool) {
	if val, ok := v.(Doubles); ok {
		return val, true
	}
	return nil, false
}
