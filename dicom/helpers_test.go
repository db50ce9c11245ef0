package dicom

import (
	"bytes"
	"encoding/binary"

	"github.com/neandrake/medicom-go/dicom/tag"
)

// dsBuilder assembles synthetic dataset bytes for parser tests.
// Little endian unless the *BE methods are used.
type dsBuilder struct {
	buf bytes.Buffer
}

func (b *dsBuilder) bytes() []byte {
	return b.buf.Bytes()
}

func (b *dsBuilder) raw(data ...byte) *dsBuilder {
	b.buf.Write(data)
	return b
}

func (b *dsBuilder) u16(v uint16) *dsBuilder {
	var scratch [2]byte
	binary.LittleEndian.PutUint16(scratch[:], v)
	b.buf.Write(scratch[:])
	return b
}

func (b *dsBuilder) u32(v uint32) *dsBuilder {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], v)
	b.buf.Write(scratch[:])
	return b
}

func (b *dsBuilder) u16be(v uint16) *dsBuilder {
	var scratch [2]byte
	binary.BigEndian.PutUint16(scratch[:], v)
	b.buf.Write(scratch[:])
	return b
}

func (b *dsBuilder) u32be(v uint32) *dsBuilder {
	var scratch [4]byte
	binary.BigEndian.PutUint32(scratch[:], v)
	b.buf.Write(scratch[:])
	return b
}

func (b *dsBuilder) tag(t tag.Tag) *dsBuilder {
	return b.u16(t.Group).u16(t.Element)
}

func (b *dsBuilder) tagBE(t tag.Tag) *dsBuilder {
	return b.u16be(t.Group).u16be(t.Element)
}

// preambleAndPrefix writes 128 zero bytes followed by "DICM".
func (b *dsBuilder) preambleAndPrefix() *dsBuilder {
	b.buf.Write(make([]byte, FilePreambleLength))
	b.buf.WriteString("DICM")
	return b
}

// explicitShort writes an Explicit VR element with a 16-bit value length.
func (b *dsBuilder) explicitShort(t tag.Tag, vrIdent string, data []byte) *dsBuilder {
	b.tag(t)
	b.buf.WriteString(vrIdent)
	b.u16(uint16(len(data)))
	b.buf.Write(data)
	return b
}

// explicitLong writes an Explicit VR element with reserved bytes and a
// 32-bit value length; data may be nil for sequences.
func (b *dsBuilder) explicitLong(t tag.Tag, vrIdent string, vl uint32, data []byte) *dsBuilder {
	b.tag(t)
	b.buf.WriteString(vrIdent)
	b.u16(0x0000)
	b.u32(vl)
	b.buf.Write(data)
	return b
}

// implicit writes an Implicit VR element: tag, 32-bit length, value.
func (b *dsBuilder) implicit(t tag.Tag, vl uint32, data []byte) *dsBuilder {
	b.tag(t)
	b.u32(vl)
	b.buf.Write(data)
	return b
}

// item writes an Item header with the given length.
func (b *dsBuilder) item(vl uint32) *dsBuilder {
	return b.tag(tag.Item).u32(vl)
}

func (b *dsBuilder) itemDelim() *dsBuilder {
	return b.tag(tag.ItemDelimitationItem).u32(0)
}

func (b *dsBuilder) seqDelim() *dsBuilder {
	return b.tag(tag.SequenceDelimitationItem).u32(0)
}

const undefinedLen = 0xFFFFFFFF

// fileMeta writes a File Meta group declaring the given transfer syntax:
// the group length element followed by TransferSyntaxUID.
func (b *dsBuilder) fileMeta(tsUID string) *dsBuilder {
	var meta dsBuilder
	uidBytes := []byte(tsUID)
	if len(uidBytes)%2 != 0 {
		uidBytes = append(uidBytes, 0x00)
	}
	meta.explicitShort(tag.TransferSyntaxUID, "UI", uidBytes)

	var length dsBuilder
	length.u32(uint32(meta.buf.Len()))
	b.explicitShort(tag.FileMetaInformationGroupLength, "UL", length.bytes())
	b.buf.Write(meta.bytes())
	return b
}

// evenPadded space-pads a string to even length.
func evenPadded(s string) []byte {
	data := []byte(s)
	if len(data)%2 != 0 {
		data = append(data, ' ')
	}
	return data
}
