package dicom

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/uid"
	"github.com/neandrake/medicom-go/dicom/vr"
)

// iterateElement performs the StateElement iteration.
func (p *Parser) iterateElement() (*element.DataElement, error) {
	// Use the transfer syntax declared by the dataset, or the detected one
	// if none has been seen. A sequence frame carrying its own transfer
	// syntax (a private sequence forced to Implicit VR) overrides both.
	ts := p.TransferSyntax()
	if ts.Deflated {
		p.reader.SetDeflate()
	}
	if len(p.currentPath) > 0 {
		if frameTS := p.currentPath[len(p.currentPath)-1].TransferSyntax(); frameTS != nil {
			ts = frameTS
		}
	}

	t, err := p.readTag(ts)
	if err != nil {
		return nil, err
	}
	if p.isAtStop() {
		return nil, nil
	}

	// Some items have zero length and are followed by another item; without
	// popping here an item-in-item structure would be created. A sequence
	// delimiter may also end an item which had no item delimiter, in which
	// case the delimiter would not be parented properly.
	if t == tag.SequenceDelimitationItem && len(p.currentPath) > 0 {
		if p.currentPath[len(p.currentPath)-1].Tag() == tag.Item {
			p.currentPath = p.currentPath[:len(p.currentPath)-1]
		}
	}
	p.popSequenceItemsByBytePos()

	// Reading an element clones the current path, so update the item number
	// prior to reading.
	if t == tag.Item && len(p.currentPath) > 0 {
		p.currentPath[len(p.currentPath)-1].IncrementItem()
	}

	elem, childTS, err := p.readElementBody(t, ts)
	if err != nil {
		return nil, err
	}

	// If the file-meta state was skipped during detection the transfer
	// syntax may still need switching; only for root-level elements.
	if t == tag.TransferSyntaxUID && len(elem.Ancestors()) == 0 {
		datasetTS, err := p.parseTransferSyntaxElement(elem)
		if err != nil {
			return nil, err
		}
		if datasetTS == nil {
			datasetTS = uid.ImplicitVRLittleEndian
		}
		p.datasetTS = datasetTS
	} else if t == tag.SpecificCharacterSet {
		cs, err := p.parseSpecificCharacterSetElement(elem)
		if err != nil {
			return nil, err
		}
		if len(elem.Ancestors()) == 0 {
			p.cs = cs
		} else if len(p.currentPath) > 0 {
			p.currentPath[len(p.currentPath)-1].SetCharset(cs)
		}
	}

	p.hasPartialTag = false

	// Exit sequences based on delimiters, before checking byte positions.
	if t == tag.SequenceDelimitationItem || t == tag.ItemDelimitationItem {
		if len(p.currentPath) > 0 && p.currentPath[len(p.currentPath)-1].Tag() == tag.Item {
			p.currentPath = p.currentPath[:len(p.currentPath)-1]
		}
		if t == tag.SequenceDelimitationItem && len(p.currentPath) > 0 {
			p.currentPath = p.currentPath[:len(p.currentPath)-1]
		}
	}

	p.popSequenceItemsByBytePos()

	if elem.IsSeqLike() || t == tag.Item {
		endPos := int64(-1)
		if !elem.VL().IsUndefined() {
			endPos = int64(p.bytesRead) + int64(elem.VL())
			if !elem.IsEmpty() {
				// The value field was consumed (an encapsulated fragment);
				// the frame ends at the current position.
				endPos = int64(p.bytesRead)
			}
		}

		sqCS := p.cs
		sqTS := childTS
		if len(p.currentPath) > 0 {
			parent := &p.currentPath[len(p.currentPath)-1]
			sqCS = parent.Charset()
			if sqTS == nil {
				// Items and nested sequences inherit an enclosing override.
				sqTS = parent.TransferSyntax()
			}
		}

		frame := element.NewSequenceElement(t, endPos, elem.VR(), elem.VL(), sqCS)
		frame.SetTransferSyntax(sqTS)
		p.currentPath = append(p.currentPath, frame)
	}

	return elem, nil
}

// readTag reads a tag from the dataset, unless one was already read ahead.
func (p *Parser) readTag(ts *uid.TransferSyntax) (tag.Tag, error) {
	if p.hasPartialTag {
		p.tagLastRead = p.partialTag
		return p.partialTag, nil
	}

	p.reader.SetByteOrder(byteOrderOf(ts))
	group, err := p.reader.ReadUint16()
	if err != nil {
		return tag.Tag{}, err
	}
	elem, err := p.reader.ReadUint16()
	if err != nil {
		// The stream ending in the middle of a tag is an I/O failure, not
		// an element boundary.
		return tag.Tag{}, midElementErr(err)
	}

	t := tag.New(group, elem)
	p.bytesRead += 4
	p.partialTag = t
	p.hasPartialTag = true
	p.tagLastRead = t
	return t, nil
}

// readElementBody reads the remainder of an element from the dataset. This
// assumes readTag was called just prior with its result passed as t. The
// second return value is the transfer syntax override for the element's
// contents, non-nil only for non-standard private sequences whose children
// must be parsed as Implicit VR.
func (p *Parser) readElementBody(t tag.Tag, elemTS *uid.TransferSyntax) (*element.DataElement, *uid.TransferSyntax, error) {
	// Part 5, Section 7.5: the Item, Item Delimitation Item, and Sequence
	// Delimitation Item elements are not ruled by the VR encoding of the
	// transfer syntax; they are always encoded as Implicit VR.
	isDelim := t == tag.SequenceDelimitationItem || t == tag.ItemDelimitationItem || t == tag.Item

	ts := elemTS
	if isDelim {
		ts = implicitOf(elemTS)
	}

	var v vr.VR
	if ts.ExplicitVR {
		read, err := p.readVR()
		if err != nil {
			var unknownVR *UnknownVRError
			if !errors.As(err, &unknownVR) {
				return nil, nil, err
			}
			read = vr.Invalid
		}
		v = read
	} else {
		resolved, known := p.dictionary.ImplicitVR(t)
		if !known {
			resolved = vr.Unknown
		}
		v = resolved
	}
	p.vrLast = v
	p.vrLastKnown = true

	vl, err := p.readValueLength(ts, v)
	if err != nil {
		return nil, nil, err
	}
	p.vlLast = vl
	p.vlLastKnown = true

	// Non-standard private sequence: force SQ; its contents parse as
	// Implicit VR preserving the outer endianness.
	var childTS *uid.TransferSyntax
	parseAsSeq := element.IsNonStandardSeq(t, v, vl)
	if parseAsSeq {
		ts = implicitOf(ts)
		childTS = ts
	}
	p.tsLast = ts

	// Sequence and item elements let the iterator parse their contents
	// rather than associating bytes with the element's value. The exception
	// is items within pixel data which encapsulate codec frames.
	inPixelData := p.isInPixelData()
	skipBytes := v == vr.SequenceOfItems || (t == tag.Item && !inPixelData) || parseAsSeq

	var data []byte
	if !skipBytes {
		read, err := p.readValueField(t, vl)
		if err != nil {
			return nil, nil, err
		}
		data = read
	}
	if parseAsSeq {
		v = vr.SequenceOfItems
	}

	ancestors := append([]element.SequenceElement(nil), p.currentPath...)

	cs := p.cs
	if len(ancestors) > 0 {
		cs = ancestors[len(ancestors)-1].Charset()
	}

	return element.New(t, v, vl, ts, cs, data, ancestors), childTS, nil
}

// readVR reads a VR from the dataset. This should only be done for Explicit
// VR transfer syntaxes. If the VR carries the two reserved bytes those are
// also read and discarded. Unknown codes yield an UnknownVRError which the
// caller recovers from by substituting the Invalid VR.
func (p *Parser) readVR() (vr.VR, error) {
	var buf [2]byte
	if err := p.reader.ReadExact(buf[:]); err != nil {
		return vr.Invalid, midElementErr(err)
	}
	p.bytesRead += 2

	code := uint16(buf[0])<<8 | uint16(buf[1])
	v, ok := vr.FromCode(code)
	if !ok {
		return vr.Invalid, &UnknownVRError{Code: code}
	}

	if v.HasExplicitPad() {
		if err := p.reader.ReadExact(buf[:]); err != nil {
			return vr.Invalid, midElementErr(err)
		}
		p.bytesRead += 2
	}
	return v, nil
}

// readValueLength reads a value length from the dataset. For Implicit VR or
// an Explicit VR with the 2-byte pad the length is a 32-bit integer,
// otherwise a zero-extended 16-bit integer.
func (p *Parser) readValueLength(ts *uid.TransferSyntax, v vr.VR) (element.ValueLength, error) {
	p.reader.SetByteOrder(byteOrderOf(ts))

	if !ts.ExplicitVR || v.HasExplicitPad() {
		length, err := p.reader.ReadUint32()
		if err != nil {
			return 0, midElementErr(err)
		}
		p.bytesRead += 4
		return element.ValueLength(length), nil
	}

	length, err := p.reader.ReadUint16()
	if err != nil {
		return 0, midElementErr(err)
	}
	p.bytesRead += 2
	return element.ValueLength(length), nil
}

// readValueField reads the value field of an element into a byte buffer. An
// undefined length returns an empty buffer, as such elements have their
// contents parsed as further elements. An odd explicit length reads exactly
// that many bytes into a buffer padded with one trailing zero.
func (p *Parser) readValueField(t tag.Tag, vl element.ValueLength) ([]byte, error) {
	if vl == 0 || vl.IsUndefined() {
		return nil, nil
	}

	valueLength := int(vl)
	bufferSize := valueLength
	if valueLength%2 != 0 {
		bufferSize = valueLength + 1
	}
	buffer := make([]byte, bufferSize)

	if err := p.reader.ReadExact(buffer[:valueLength]); err != nil {
		// Datasets may end with DataSetTrailingPadding (or just zeroes)
		// whose declared length exceeds the remaining stream. The standard
		// says the contents hold no significance; treat the short read as
		// end of stream. See Part 10, Section 7.2.
		if (t == tag.New(0, 0) || t == tag.DatasetTrailingPadding) &&
			(errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, ErrExpectedEOF)) {
			p.bytesRead += uint64(valueLength)
			return nil, ErrExpectedEOF
		}
		return nil, midElementErr(err)
	}

	p.bytesRead += uint64(valueLength)
	return buffer, nil
}

// midElementErr reclassifies a boundary EOF as an I/O failure, for reads
// which occur in the middle of an element.
func midElementErr(err error) error {
	if errors.Is(err, ErrExpectedEOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// byteOrderOf returns the binary byte order of a transfer syntax.
func byteOrderOf(ts *uid.TransferSyntax) binary.ByteOrder {
	if ts.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// implicitOf returns the Implicit VR transfer syntax preserving the
// endianness of the given one.
func implicitOf(ts *uid.TransferSyntax) *uid.TransferSyntax {
	if ts.BigEndian {
		return uid.ImplicitVRBigEndian
	}
	return uid.ImplicitVRLittleEndian
}
