package vr_test

import (
	"testing"

	"github.com/neandrake/medicom-go/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVR_String(t *testing.T) {
	tests := []struct {
		name     string
		vr       vr.VR
		expected string
	}{
		{"Application Entity", vr.ApplicationEntity, "AE"},
		{"Age String", vr.AgeString, "AS"},
		{"Code String", vr.CodeString, "CS"},
		{"Person Name", vr.PersonName, "PN"},
		{"Unique Identifier", vr.UniqueIdentifier, "UI"},
		{"Other Byte", vr.OtherByte, "OB"},
		{"Sequence", vr.SequenceOfItems, "SQ"},
		{"Invalid", vr.Invalid, "??"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.vr.String())
		})
	}
}

func TestVR_ParseRoundTrip(t *testing.T) {
	idents := []string{
		"AE", "AS", "AT", "CS", "DA", "DS", "DT", "FD", "FL", "IS", "LO",
		"LT", "OB", "OD", "OF", "OL", "OV", "OW", "PN", "SH", "SL", "SQ",
		"SS", "ST", "SV", "TM", "UC", "UI", "UL", "UN", "UR", "US", "UT", "UV",
	}

	for _, ident := range idents {
		t.Run(ident, func(t *testing.T) {
			v, err := vr.Parse(ident)
			require.NoError(t, err)
			assert.Equal(t, ident, v.String())

			// The code is the big-endian ASCII pair of the ident.
			code := uint16(ident[0])<<8 | uint16(ident[1])
			assert.Equal(t, code, v.Code())

			fromCode, ok := vr.FromCode(code)
			require.True(t, ok)
			assert.Equal(t, v, fromCode)
		})
	}
}

func TestVR_Parse_Invalid(t *testing.T) {
	_, err := vr.Parse("ZZ")
	assert.Error(t, err)

	_, ok := vr.FromCode(0x5A5A)
	assert.False(t, ok)

	assert.False(t, vr.IsValid("ZZ"))
	assert.True(t, vr.IsValid("PN"))
}

func TestVR_HasExplicitPad(t *testing.T) {
	padded := []vr.VR{
		vr.OtherByte, vr.OtherDouble, vr.OtherFloat, vr.OtherLong,
		vr.OtherVeryLong, vr.OtherWord, vr.SequenceOfItems, vr.Unknown,
		vr.SignedVeryLong, vr.UnlimitedCharacters, vr.UniversalResourceIdentifier,
		vr.UnsignedVeryLong, vr.UnlimitedText,
	}
	for _, v := range padded {
		assert.True(t, v.HasExplicitPad(), "expected %s to carry the 2-byte pad", v)
	}

	unpadded := []vr.VR{
		vr.ApplicationEntity, vr.CodeString, vr.DecimalString, vr.PersonName,
		vr.SignedShort, vr.UnsignedLong, vr.UniqueIdentifier, vr.Invalid,
	}
	for _, v := range unpadded {
		assert.False(t, v.HasExplicitPad(), "expected %s to not carry the 2-byte pad", v)
	}
}

func TestVR_PaddingByte(t *testing.T) {
	assert.Equal(t, vr.SpacePadding, vr.PersonName.PaddingByte())
	assert.Equal(t, vr.SpacePadding, vr.CodeString.PaddingByte())
	assert.Equal(t, vr.NullPadding, vr.UniqueIdentifier.PaddingByte())
	assert.Equal(t, vr.NullPadding, vr.OtherByte.PaddingByte())
	assert.Equal(t, vr.NullPadding, vr.Unknown.PaddingByte())
}

func TestVR_UsesReplacementCharset(t *testing.T) {
	replaced := []vr.VR{
		vr.ShortString, vr.LongString, vr.UnlimitedCharacters,
		vr.ShortText, vr.LongText, vr.UnlimitedText, vr.PersonName,
	}
	for _, v := range replaced {
		assert.True(t, v.UsesReplacementCharset(), "expected %s to honour Specific Character Set", v)
	}

	// AE and CS are textual but always use the default repertoire.
	assert.False(t, vr.ApplicationEntity.UsesReplacementCharset())
	assert.False(t, vr.CodeString.UsesReplacementCharset())
	assert.False(t, vr.UniqueIdentifier.UsesReplacementCharset())
}

func TestVR_AllowsBackslash(t *testing.T) {
	for _, v := range []vr.VR{vr.LongText, vr.ShortText, vr.UnlimitedText} {
		assert.True(t, v.AllowsBackslash(), "expected %s to allow backslash in value", v)
	}
	for _, v := range []vr.VR{vr.PersonName, vr.CodeString, vr.LongString} {
		assert.False(t, v.AllowsBackslash(), "expected %s to treat backslash as separator", v)
	}
}

func TestVR_PaddingRules(t *testing.T) {
	// Character strings with space padding may pad both ends.
	assert.True(t, vr.CodeString.CanPadFront())
	assert.True(t, vr.CodeString.CanPadEnd())

	// Text VRs only pad at the end.
	assert.False(t, vr.LongText.CanPadFront())
	assert.True(t, vr.LongText.CanPadEnd())

	// UI pads a single trailing null.
	assert.False(t, vr.UniqueIdentifier.CanPadFront())
	assert.True(t, vr.UniqueIdentifier.CanPadEnd())

	// Binary numeric VRs are never padded.
	assert.False(t, vr.UnsignedShort.CanPadFront())
	assert.False(t, vr.UnsignedShort.CanPadEnd())
}
