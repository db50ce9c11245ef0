package element_test

import (
	"testing"

	"github.com/neandrake/medicom-go/dicom/charset"
	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/uid"
	"github.com/neandrake/medicom-go/dicom/value"
	"github.com/neandrake/medicom-go/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_PersonName_TrailingNull(t *testing.T) {
	// Odd-length string padded to even length by the encoder; decoding
	// yields exactly the original with trailing NUL stripped.
	e := newElement(tag.New(0x0010, 0x0010), vr.PersonName, uid.ExplicitVRLittleEndian, []byte("Doe^John\x00"))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{"Doe^John"}, v)
}

func TestParseValue_TrailingSpacePadding(t *testing.T) {
	e := newElement(tag.New(0x0008, 0x0100), vr.ShortString, uid.ExplicitVRLittleEndian, []byte("CODE01  "))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{"CODE01"}, v)
}

func TestParseValue_LeadingSpacePadding(t *testing.T) {
	e := newElement(tag.New(0x0008, 0x0060), vr.CodeString, uid.ExplicitVRLittleEndian, []byte("  CT"))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{"CT"}, v)
}

func TestParseValue_SingleNullByte(t *testing.T) {
	// A character string trimmed down to a lone null byte decodes as empty.
	e := newElement(tag.New(0x0008, 0x0060), vr.CodeString, uid.ExplicitVRLittleEndian, []byte{0x00})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{""}, v)
}

func TestParseValue_UID(t *testing.T) {
	e := newElement(tag.TransferSyntaxUID, vr.UniqueIdentifier, uid.ExplicitVRLittleEndian,
		[]byte("1.2.840.10008.1.2.1\x00"))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.UID("1.2.840.10008.1.2.1"), v)
}

func TestParseValue_MultiValuedStrings(t *testing.T) {
	e := newElement(tag.New(0x0008, 0x0008), vr.CodeString, uid.ExplicitVRLittleEndian,
		[]byte("ORIGINAL\\PRIMARY "))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{"ORIGINAL", "PRIMARY"}, v)
}

func TestParseValue_BackslashInTextVR(t *testing.T) {
	// LT permits backslash within values, so no splitting occurs.
	e := newElement(tag.New(0x0010, 0x4000), vr.LongText, uid.ExplicitVRLittleEndian,
		[]byte("line one\\line two"))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{"line one\\line two"}, v)
}

func TestParseValue_DecimalString(t *testing.T) {
	e := newElement(tag.New(0x0028, 0x1053), vr.DecimalString, uid.ExplicitVRLittleEndian, []byte("1.5\\-3 "))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Doubles{1.5, -3}, v)
}

func TestParseValue_DecimalString_Fallback(t *testing.T) {
	// Non-numeric DS values fall back to the raw strings.
	e := newElement(tag.New(0x0028, 0x1053), vr.DecimalString, uid.ExplicitVRLittleEndian, []byte("1.5\\abc"))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{"1.5", "abc"}, v)
}

func TestParseValue_IntegerString(t *testing.T) {
	e := newElement(tag.New(0x0020, 0x0013), vr.IntegerString, uid.ExplicitVRLittleEndian, []byte("42\\-7 "))

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Integers{42, -7}, v)
}

func TestParseValue_AttributeTag(t *testing.T) {
	e := newElement(tag.New(0x0028, 0x0009), vr.AttributeTag, uid.ExplicitVRLittleEndian,
		[]byte{0x63, 0x00, 0x18, 0x10, 0x10, 0x00, 0x20, 0x00})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Attributes{tag.New(0x0063, 0x1018), tag.New(0x0010, 0x0020)}, v)
}

func TestParseValue_AttributeTag_BigEndian(t *testing.T) {
	e := newElement(tag.New(0x0028, 0x0009), vr.AttributeTag, uid.ExplicitVRBigEndian,
		[]byte{0x00, 0x63, 0x10, 0x18})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Attributes{tag.New(0x0063, 0x1018)}, v)
}

func TestParseValue_AttributeTag_WrongSize(t *testing.T) {
	e := newElement(tag.New(0x0028, 0x0009), vr.AttributeTag, uid.ExplicitVRLittleEndian, []byte{0x63, 0x00})

	_, err := e.ParseValue()
	require.Error(t, err)
	assert.ErrorIs(t, err, element.ErrDecodeValue)
}

func TestParseValue_UnsignedShort(t *testing.T) {
	e := newElement(tag.New(0x0028, 0x0010), vr.UnsignedShort, uid.ExplicitVRLittleEndian, []byte{0x00, 0x02})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.UnsignedIntegers{512}, v)
}

func TestParseValue_SignedShort_SingleBytePromotion(t *testing.T) {
	e := newElement(tag.New(0x0018, 0x0088), vr.SignedShort, uid.ExplicitVRLittleEndian, []byte{0x05})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Shorts{5}, v)
}

func TestParseValue_SignedLong_HalfWidthFallback(t *testing.T) {
	// SL with a byte count only divisible by two decodes as 16-bit groupings.
	e := newElement(tag.New(0x0018, 0x6020), vr.SignedLong, uid.ExplicitVRLittleEndian, []byte{0xFE, 0xFF})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Integers{-2}, v)
}

func TestParseValue_FloatDouble(t *testing.T) {
	// 1.0 as IEEE 754 binary64, little endian.
	e := newElement(tag.New(0x0018, 0x9087), vr.FloatingPointDouble, uid.ExplicitVRLittleEndian,
		[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Doubles{1.0}, v)
}

func TestParseValue_FloatSingle(t *testing.T) {
	// -2.5 as IEEE 754 binary32, little endian.
	e := newElement(tag.New(0x0018, 0x1318), vr.FloatingPointSingle, uid.ExplicitVRLittleEndian,
		[]byte{0x00, 0x00, 0x20, 0xC0})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Doubles{-2.5}, v)
}

func TestParseValue_UnknownVR_RawBytes(t *testing.T) {
	e := newElement(tag.New(0x0011, 0x1001), vr.Unknown, uid.ExplicitVRLittleEndian, []byte{0xDE, 0xAD})

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Bytes{0xDE, 0xAD}, v)
}

func TestParseValue_CharsetDecoding(t *testing.T) {
	cs, ok := charset.Lookup("ISO_IR 100")
	require.True(t, ok)

	// 0xFC is ü in ISO-8859-1 / windows-1252.
	e := element.New(tag.New(0x0010, 0x0010), vr.PersonName, element.ValueLength(6),
		uid.ExplicitVRLittleEndian, cs, []byte{'D', 0xFC, 'r', 'e', 'r', ' '}, nil)

	v, err := e.ParseValue()
	require.NoError(t, err)
	assert.Equal(t, value.Strings{"Dürer"}, v)
}

func TestParseValue_NonReplaceableVRIgnoresCharset(t *testing.T) {
	cs, ok := charset.Lookup("ISO_IR 192")
	require.True(t, ok)

	// CS is not subject to Specific Character Set replacement; the element
	// narrows to the default repertoire at construction.
	e := element.New(tag.New(0x0008, 0x0060), vr.CodeString, element.ValueLength(2),
		uid.ExplicitVRLittleEndian, cs, []byte("CT"), nil)
	assert.Same(t, charset.Default, e.Charset())
}

func TestEndianSymmetry(t *testing.T) {
	// Property: decode(encode(v, little)) == v == decode(encode(v, big))
	// for every numeric VR.
	type numericCase struct {
		name string
		vr   vr.VR
		val  value.Value
	}
	cases := []numericCase{
		{"US", vr.UnsignedShort, value.UnsignedIntegers{0, 1, 0x7FFF, 0xFFFF}},
		{"UL", vr.UnsignedLong, value.UnsignedIntegers{0, 1, 0xFFFF_FFFF}},
		{"OW", vr.OtherWord, value.UnsignedIntegers{0x1234, 0xFEDC}},
		{"OL", vr.OtherLong, value.UnsignedIntegers{0x1234_5678}},
		{"SS", vr.SignedShort, value.Shorts{-32768, -1, 0, 32767}},
		{"SL", vr.SignedLong, value.Integers{-2147483648, -1, 0, 2147483647}},
		{"SV", vr.SignedVeryLong, value.Longs{-9223372036854775808, 42}},
		{"UV", vr.UnsignedVeryLong, value.UnsignedLongs{0, 18446744073709551615}},
		{"FL", vr.FloatingPointSingle, value.Doubles{-2.5, 0, 1.25}},
		{"FD", vr.FloatingPointDouble, value.Doubles{-2.5, 0, 3.141592653589793}},
		{"AT", vr.AttributeTag, value.Attributes{tag.New(0x0010, 0x0020), tag.Item}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, ts := range []*uid.TransferSyntax{uid.ExplicitVRLittleEndian, uid.ExplicitVRBigEndian} {
				encoded, err := element.EncodeValue(tc.val, tc.vr, ts.BigEndian, nil)
				require.NoError(t, err)

				e := newElement(tag.New(0x0008, 0x0000), tc.vr, ts, encoded)
				decoded, err := e.ParseValue()
				require.NoError(t, err)
				assert.True(t, tc.val.Equals(decoded),
					"%s over %s: got %v, expected %v", tc.name, ts.Ident, decoded, tc.val)
			}
		})
	}
}

func TestEncodeValue_PaddingInvariants(t *testing.T) {
	// Property: re-encoding a decoded text value reconstitutes even length.
	tests := []struct {
		name     string
		vr       vr.VR
		original []byte
	}{
		{"PN odd with NUL pad", vr.PersonName, []byte("Doe^John\x00")},
		{"SH even with space pad", vr.ShortString, []byte("CODE01  ")},
		{"UI odd with single NUL", vr.UniqueIdentifier, []byte("1.2.840.10008.1.2\x00")},
		{"UI even unpadded", vr.UniqueIdentifier, []byte("1.2.840.10008.12")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newElement(tag.New(0x0008, 0x0018), tc.vr, uid.ExplicitVRLittleEndian, tc.original)
			decoded, err := e.ParseValue()
			require.NoError(t, err)

			encoded, err := element.EncodeValue(decoded, tc.vr, false, nil)
			require.NoError(t, err)
			assert.Zero(t, len(encoded)%2, "encoded length must be even")
		})
	}
}

func TestEncodeValue_UITrailingNull(t *testing.T) {
	// A single trailing NUL is added iff the pre-pad length is odd.
	odd, err := element.EncodeValue(value.UID("1.2.840.10008.1.2"), vr.UniqueIdentifier, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("1.2.840.10008.1.2\x00"), odd)

	even, err := element.EncodeValue(value.UID("1.2.840.10008.12"), vr.UniqueIdentifier, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("1.2.840.10008.12"), even)
}

func TestEncodeValue_StringSpacePad(t *testing.T) {
	encoded, err := element.EncodeValue(value.Strings{"CT "}, vr.CodeString, false, nil)
	require.NoError(t, err)
	assert.Zero(t, len(encoded)%2)
	assert.Equal(t, byte(' '), encoded[len(encoded)-1])
}
