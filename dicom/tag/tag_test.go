package tag_test

import (
	"testing"

	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_New(t *testing.T) {
	tg := tag.New(0x0010, 0x0020)
	assert.Equal(t, uint16(0x0010), tg.Group)
	assert.Equal(t, uint16(0x0020), tg.Element)
}

func TestTag_Uint32_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		tag      tag.Tag
		expected uint32
	}{
		{"PatientID", tag.New(0x0010, 0x0020), 0x0010_0020},
		{"Item", tag.Item, 0xFFFE_E000},
		{"GroupLength", tag.New(0x0002, 0x0000), 0x0002_0000},
		{"PixelData", tag.PixelData, 0x7FE0_0010},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.tag.Uint32())
			assert.Equal(t, tc.tag, tag.FromUint32(tc.expected))
		})
	}
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "(0010,0020)", tag.New(0x0010, 0x0020).String())
	assert.Equal(t, "(FFFE,E000)", tag.Item.String())
}

func TestTag_Compare(t *testing.T) {
	a := tag.New(0x0008, 0x0005)
	b := tag.New(0x0008, 0x0018)
	c := tag.New(0x0010, 0x0010)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
}

func TestTag_IsPrivate(t *testing.T) {
	tests := []struct {
		name     string
		tag      tag.Tag
		expected bool
	}{
		{"private group", tag.New(0x0009, 0x0001), true},
		{"private vendor group", tag.New(0x0011, 0x1001), true},
		{"standard group", tag.New(0x0010, 0x0010), false},
		{"reserved low odd group", tag.New(0x0007, 0x0001), false},
		{"group FFFF", tag.New(0xFFFF, 0x0001), false},
		{"sequence delimiter", tag.SequenceDelimitationItem, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.tag.IsPrivate())
		})
	}
}

func TestTag_IsPrivateCreator(t *testing.T) {
	assert.True(t, tag.New(0x0009, 0x0010).IsPrivateCreator())
	assert.True(t, tag.New(0x0011, 0x00FF).IsPrivateCreator())
	assert.False(t, tag.New(0x0011, 0x1001).IsPrivateCreator())
	assert.False(t, tag.New(0x0010, 0x0010).IsPrivateCreator())
}

func TestTag_IsGroupLength(t *testing.T) {
	assert.True(t, tag.New(0x0002, 0x0000).IsGroupLength())
	assert.True(t, tag.New(0x0008, 0x0000).IsGroupLength())
	assert.False(t, tag.New(0x0008, 0x0005).IsGroupLength())

	assert.True(t, tag.New(0x0009, 0x0000).IsPrivateGroupLength())
	assert.False(t, tag.New(0x0008, 0x0000).IsPrivateGroupLength())
}

func TestTag_IsMetaElement(t *testing.T) {
	assert.True(t, tag.FileMetaInformationGroupLength.IsMetaElement())
	assert.True(t, tag.TransferSyntaxUID.IsMetaElement())
	assert.False(t, tag.SpecificCharacterSet.IsMetaElement())
}

func TestTag_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected tag.Tag
	}{
		{"with parens", "(0010,0020)", tag.New(0x0010, 0x0020)},
		{"without parens", "0010,0020", tag.New(0x0010, 0x0020)},
		{"with spaces", " ( 0008 , 0005 ) ", tag.New(0x0008, 0x0005)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := tag.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}

	_, err := tag.Parse("not-a-tag")
	assert.Error(t, err)
}

func TestDictionary_Find(t *testing.T) {
	info, err := tag.Standard.Find(tag.New(0x0010, 0x0010))
	require.NoError(t, err)
	assert.Equal(t, "PatientName", info.Keyword)
	assert.Equal(t, vr.PersonName, info.VRs[0])

	// Generic group length fallback for even groups.
	info, err = tag.Standard.Find(tag.New(0x0008, 0x0000))
	require.NoError(t, err)
	assert.Equal(t, "GenericGroupLength", info.Keyword)
	assert.Equal(t, vr.UnsignedLong, info.VRs[0])

	_, err = tag.Standard.Find(tag.New(0x0009, 0x0001))
	assert.Error(t, err)
}

func TestDictionary_FindByKeyword(t *testing.T) {
	info, err := tag.Standard.FindByKeyword("PatientID")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0010, 0x0020), info.Tag)

	// Case-insensitive, and display names also resolve.
	info, err = tag.Standard.FindByKeyword("patientid")
	require.NoError(t, err)
	assert.Equal(t, tag.New(0x0010, 0x0020), info.Tag)

	info, err = tag.Standard.FindByKeyword("Specific Character Set")
	require.NoError(t, err)
	assert.Equal(t, tag.SpecificCharacterSet, info.Tag)

	_, err = tag.Standard.FindByKeyword("NoSuchKeyword")
	assert.Error(t, err)

	_, err = tag.Standard.FindByKeyword("")
	assert.Error(t, err)
}

func TestDictionary_ImplicitVR(t *testing.T) {
	v, ok := tag.Standard.ImplicitVR(tag.PixelData)
	require.True(t, ok)
	assert.Equal(t, vr.OtherWord, v)

	v, ok = tag.Minimal.ImplicitVR(tag.New(0x0010, 0x0010))
	assert.False(t, ok)
	assert.Equal(t, vr.Unknown, v)
}

func TestDictionary_Minimal(t *testing.T) {
	// The minimal dictionary covers exactly what the state machine needs.
	for _, tg := range []tag.Tag{
		tag.FileMetaInformationGroupLength,
		tag.TransferSyntaxUID,
		tag.SpecificCharacterSet,
		tag.PixelData,
		tag.Item,
		tag.ItemDelimitationItem,
		tag.SequenceDelimitationItem,
	} {
		_, err := tag.Minimal.Find(tg)
		assert.NoError(t, err, "expected %s in minimal dictionary", tg)
	}
}
