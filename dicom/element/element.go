// Package element provides the DICOM data element model and value decoding.
//
// A Data Element is composed of a tag, VR (Value Representation), value
// length, and the raw value field bytes, together with the context it was
// read under: transfer syntax, character set, and the stack of enclosing
// sequences.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
package element

import (
	"encoding/binary"
	"strconv"

	"github.com/neandrake/medicom-go/dicom/charset"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/uid"
	"github.com/neandrake/medicom-go/dicom/vr"
)

// ValueLength is the encoded length of an element's value field: either an
// explicit byte count or the undefined-length sentinel 0xFFFFFFFF. An
// explicit zero is distinct from undefined.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1.1
type ValueLength uint32

// UndefinedLength marks elements whose value field extends until a matching
// delimitation item.
const UndefinedLength ValueLength = 0xFFFF_FFFF

// IsUndefined returns true for the undefined-length sentinel.
func (vl ValueLength) IsUndefined() bool {
	return vl == UndefinedLength
}

// String renders the length as its decimal byte count, or "undefined".
func (vl ValueLength) String() string {
	if vl.IsUndefined() {
		return "undefined"
	}
	return strconv.FormatUint(uint64(vl), 10)
}

// SequenceElement is one frame of the sequence path: the sequence (or item)
// tag, the byte position at which a defined-length sequence ends, the VR and
// VL it was read with, and the character set scoped to the frame.
//
// Items present in an SQ element are an ordered set where each item is
// implicitly assigned an ordinal position starting with 1. The frame's item
// number is initialized/incremented whenever an Item tag is parsed.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type SequenceElement struct {
	node tag.Node

	// endPos is the byte position where the sequence ends, computed as
	// bytes-read plus the value length during parsing. Negative when the
	// sequence has undefined length and ends on a delimitation item.
	endPos int64

	vr vr.VR
	vl ValueLength

	// Part 5, Section 7.5.3: a Specific Character Set inside an encapsulated
	// dataset applies only to that dataset; otherwise the enclosing dataset's
	// character set applies.
	cs *charset.Charset

	// ts overrides the transfer syntax for the frame's contents. Private
	// sequences forced to parse as Implicit VR attach the override here;
	// nil inherits the dataset transfer syntax.
	ts *uid.TransferSyntax
}

// NewSequenceElement creates a sequence frame. Pass a negative endPos for
// undefined-length sequences.
func NewSequenceElement(seqTag tag.Tag, endPos int64, v vr.VR, vl ValueLength, cs *charset.Charset) SequenceElement {
	if cs == nil {
		cs = charset.Default
	}
	return SequenceElement{
		node:   tag.NewNode(seqTag),
		endPos: endPos,
		vr:     v,
		vl:     vl,
		cs:     cs,
	}
}

// Node returns the tag node for this frame, including the current item number.
func (s *SequenceElement) Node() tag.Node {
	return s.node
}

// Tag returns the sequence (or item) tag of this frame.
func (s *SequenceElement) Tag() tag.Tag {
	return s.node.Tag
}

// Item returns the current 1-based item number, zero before any item was read.
func (s *SequenceElement) Item() int {
	return s.node.Item
}

// EndPos returns the byte position at which this frame's sequence ends.
// Returns false for undefined-length sequences.
func (s *SequenceElement) EndPos() (uint64, bool) {
	if s.endPos < 0 {
		return 0, false
	}
	return uint64(s.endPos), true
}

// VR returns the VR the sequence element was read with.
func (s *SequenceElement) VR() vr.VR {
	return s.vr
}

// VL returns the value length the sequence element was read with.
func (s *SequenceElement) VL() ValueLength {
	return s.vl
}

// Charset returns the character set scoped to this frame.
func (s *SequenceElement) Charset() *charset.Charset {
	return s.cs
}

// SetCharset scopes a character set to this frame. Used when a Specific
// Character Set element occurs inside a sequence.
func (s *SequenceElement) SetCharset(cs *charset.Charset) {
	s.cs = cs
}

// TransferSyntax returns the transfer syntax override governing the frame's
// contents, nil when the frame inherits the dataset transfer syntax.
func (s *SequenceElement) TransferSyntax() *uid.TransferSyntax {
	return s.ts
}

// SetTransferSyntax attaches a transfer syntax override to this frame.
func (s *SequenceElement) SetTransferSyntax(ts *uid.TransferSyntax) {
	s.ts = ts
}

// IncrementItem advances the frame's item number, initializing to 1 for the
// first item of the sequence.
func (s *SequenceElement) IncrementItem() {
	s.node.Item++
}

// IsNonStandardSeq reports whether the element is a non-standard parent-able
// element: a non-Item element with a VR of UN, OB, OF or OW and undefined
// value length. Such elements are treated as private-tag sequences whose
// contents are encoded as Implicit VR.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2.2
func IsNonStandardSeq(t tag.Tag, v vr.VR, vl ValueLength) bool {
	return t != tag.Item &&
		(v == vr.Unknown || v == vr.OtherByte || v == vr.OtherFloat || v == vr.OtherWord) &&
		vl.IsUndefined()
}

// DataElement is a single DICOM element read from a dataset: its tag, VR,
// value length, raw value field, and a snapshot of the sequence path taken
// at the moment of reading.
//
// For sequence-like elements the value field is empty and the contents
// follow as subsequent elements carrying this tag on their ancestors.
type DataElement struct {
	t  tag.Tag
	vr vr.VR
	vl ValueLength

	data      []byte
	ancestors []SequenceElement

	ts *uid.TransferSyntax
	cs *charset.Charset
}

// New creates a DataElement. The character set is narrowed to the default
// repertoire for VRs not subject to Specific Character Set replacement.
func New(t tag.Tag, v vr.VR, vl ValueLength, ts *uid.TransferSyntax, cs *charset.Charset, data []byte, ancestors []SequenceElement) *DataElement {
	if ts == nil {
		ts = uid.ExplicitVRLittleEndian
	}
	if cs == nil || !v.UsesReplacementCharset() {
		cs = charset.Default
	}
	return &DataElement{
		t:         t,
		vr:        v,
		vl:        vl,
		data:      data,
		ancestors: ancestors,
		ts:        ts,
		cs:        cs,
	}
}

// Tag returns the DICOM tag of this element.
func (e *DataElement) Tag() tag.Tag {
	return e.t
}

// VR returns the Value Representation of this element.
func (e *DataElement) VR() vr.VR {
	return e.vr
}

// VL returns the encoded value length of this element.
func (e *DataElement) VL() ValueLength {
	return e.vl
}

// TransferSyntax returns the transfer syntax this element was read with.
func (e *DataElement) TransferSyntax() *uid.TransferSyntax {
	return e.ts
}

// Charset returns the character set used to decode this element's text values.
func (e *DataElement) Charset() *charset.Charset {
	return e.cs
}

// Data returns the raw value field bytes.
func (e *DataElement) Data() []byte {
	return e.data
}

// MoveData transfers ownership of the value field to the caller, leaving the
// element with an empty value. The pixel-assembly stage uses this to avoid
// duplicating large frames.
func (e *DataElement) MoveData() []byte {
	data := e.data
	e.data = nil
	return data
}

// Ancestors returns the snapshot of the sequence path taken when the element
// was read.
func (e *DataElement) Ancestors() []SequenceElement {
	return e.ancestors
}

// IsEmpty returns whether the size of the value field is zero.
func (e *DataElement) IsEmpty() bool {
	return len(e.data) == 0
}

// IsSeqLike returns true if this element is an SQ or should be parsed as
// though it were a sequence.
func (e *DataElement) IsSeqLike() bool {
	return e.vr == vr.SequenceOfItems || IsNonStandardSeq(e.t, e.vr, e.vl)
}

// IsPixelData returns true for the Pixel Data element and its float/double
// variants.
func (e *DataElement) IsPixelData() bool {
	return e.t == tag.PixelData || e.t == tag.FloatPixelData || e.t == tag.DoublePixelData
}

// IsWithinPixelData returns true when the element is nested beneath a pixel
// data carrier, i.e. it is an encapsulated fragment.
func (e *DataElement) IsWithinPixelData() bool {
	for i := len(e.ancestors) - 1; i >= 0; i-- {
		t := e.ancestors[i].Tag()
		if t == tag.PixelData || t == tag.FloatPixelData || t == tag.DoublePixelData {
			return true
		}
		if t != tag.Item {
			break
		}
	}
	return false
}

// TagPath creates a path addressing this element. Item frames are omitted;
// their ordinal is carried by the enclosing sequence node.
func (e *DataElement) TagPath() tag.Path {
	nodes := make([]tag.Node, 0, len(e.ancestors)+1)
	for i := range e.ancestors {
		if e.ancestors[i].Tag() == tag.Item {
			continue
		}
		nodes = append(nodes, e.ancestors[i].Node())
	}
	nodes = append(nodes, tag.NewNode(e.t))
	return tag.NewPath(nodes...)
}

// byteOrder returns the binary byte order of the element's transfer syntax.
func (e *DataElement) byteOrder() binary.ByteOrder {
	if e.ts.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
