package dicom

import (
	"bytes"
	"testing"

	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/uid"
	"github.com/neandrake/medicom-go/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatAll(t *testing.T, data []byte) []string {
	t.Helper()
	p := NewParserBuilder().Dictionary(tag.Standard).InitialState(StateElement).Build(bytes.NewReader(data))
	var lines []string
	for _, elem := range collect(t, p) {
		f := NewFormattedElement(elem)
		f.Dictionary = tag.Standard
		if !f.ShouldOmit() {
			lines = append(lines, f.String())
		}
	}
	return lines
}

func TestFormattedElement_Simple(t *testing.T) {
	var b dsBuilder
	b.explicitShort(tag.New(0x0010, 0x0020), "LO", []byte("ID42"))

	lines := formatAll(t, b.bytes())
	require.Len(t, lines, 1)
	assert.Equal(t, "(0010,0020) LO PatientID [4] | ID42", lines[0])
}

func TestFormattedElement_SequenceIndentation(t *testing.T) {
	var child dsBuilder
	child.explicitShort(tag.New(0x0008, 0x0100), "SH", []byte("CODE01  "))

	var b dsBuilder
	b.explicitLong(tag.New(0x0040, 0x0275), "SQ", uint32(8+child.buf.Len()), nil)
	b.item(uint32(child.buf.Len()))
	b.raw(child.bytes()...)

	lines := formatAll(t, b.bytes())
	require.Len(t, lines, 3)

	// The sequence renders with no value.
	assert.Equal(t, "(0040,0275) SQ RequestAttributesSequence [24]", lines[0])

	// The item is nested two columns under the sequence and shows its ordinal.
	assert.Equal(t, "  Item #1 UN [16]", lines[1])

	// The child is nested under both the sequence and the item.
	assert.Equal(t, "   (0008,0100) SH CodeValue [8] | CODE01", lines[2])
}

func TestFormattedElement_MaxItemsTruncation(t *testing.T) {
	data := make([]byte, 8)
	for i := range data {
		data[i] = byte(i)
	}
	var b dsBuilder
	b.tag(tag.New(0x0028, 0x1050)).raw('U', 'S').u16(8).raw(data...)

	p := NewParserBuilder().InitialState(StateElement).Build(bytes.NewReader(b.bytes()))
	elems := collect(t, p)
	require.Len(t, elems, 1)

	f := NewFormattedElement(elems[0])
	f.MaxItems = 2
	rendered := f.String()
	assert.Contains(t, rendered, "..")
}

func TestFormattedElement_HideFlags(t *testing.T) {
	groupLength := element.New(tag.New(0x0008, 0x0000), vr.UnsignedLong, 4,
		uid.ExplicitVRLittleEndian, nil, []byte{0, 0, 0, 0}, nil)
	delim := element.New(tag.SequenceDelimitationItem, vr.Unknown, 0,
		uid.ImplicitVRLittleEndian, nil, nil, nil)

	f := NewFormattedElement(groupLength)
	assert.False(t, f.ShouldOmit())
	f.HideGroupLengths = true
	assert.True(t, f.ShouldOmit())

	f = NewFormattedElement(delim)
	assert.False(t, f.ShouldOmit())
	f.HideDelims = true
	assert.True(t, f.ShouldOmit())
}

func TestFormattedElement_SkipsSpuriousZeroElement(t *testing.T) {
	spurious := element.New(tag.New(0, 0), vr.Invalid, 0,
		uid.ExplicitVRLittleEndian, nil, nil, nil)
	f := NewFormattedElement(spurious)
	assert.True(t, f.ShouldOmit())

	implicitSpurious := element.New(tag.New(0, 0), vr.Unknown, 0,
		uid.ImplicitVRLittleEndian, nil, nil, nil)
	f = NewFormattedElement(implicitSpurious)
	assert.True(t, f.ShouldOmit())
}

func TestFormattedElement_PrivateTags(t *testing.T) {
	creator := element.New(tag.New(0x0009, 0x0010), vr.LongString, 4,
		uid.ExplicitVRLittleEndian, nil, []byte("ACME"), nil)
	assert.Contains(t, NewFormattedElement(creator).String(), "<PrivateCreator>")

	private := element.New(tag.New(0x0009, 0x1001), vr.Unknown, 2,
		uid.ExplicitVRLittleEndian, nil, []byte{1, 2}, nil)
	assert.Contains(t, NewFormattedElement(private).String(), "<PrivateTag>")
}

func TestFormattedElement_UIDName(t *testing.T) {
	var b dsBuilder
	b.explicitShort(tag.New(0x0008, 0x0016), "UI", []byte("1.2.840.10008.5.1.4.1.1.2\x00"))

	lines := formatAll(t, b.bytes())
	require.Len(t, lines, 1)
	assert.Equal(t, "(0008,0016) UI SOPClassUID [26] | 1.2.840.10008.5.1.4.1.1.2 => CT Image Storage", lines[0])
}

func TestFormattedElement_UndefinedLength(t *testing.T) {
	seq := element.New(tag.New(0x0040, 0x0275), vr.SequenceOfItems, element.UndefinedLength,
		uid.ExplicitVRLittleEndian, nil, nil, nil)
	f := NewFormattedElement(seq)
	f.Dictionary = tag.Standard
	assert.Contains(t, f.String(), "[u/l]")
}

func TestFormattedElement_DelimiterOutdent(t *testing.T) {
	var b dsBuilder
	b.explicitLong(tag.New(0x0040, 0x0275), "SQ", undefinedLen, nil)
	b.item(undefinedLen)
	b.explicitShort(tag.New(0x0008, 0x0100), "SH", evenPadded("X"))
	b.itemDelim()
	b.seqDelim()

	lines := formatAll(t, b.bytes())
	require.Len(t, lines, 5)

	// Item delim sits one level out from the item contents; sequence delim
	// two levels out.
	assert.Equal(t, "  (FFFE,E00D) UN ItemDelimitationItem [0]", lines[3])
	assert.Equal(t, "(FFFE,E0DD) UN SequenceDelimitationItem [0]", lines[4])
}
