package dicom

import (
	"encoding/binary"
	"fmt"

	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/uid"
	"github.com/neandrake/medicom-go/dicom/value"
)

// iterateDetect performs the StateDetectTransferSyntax iteration.
//
// Four bytes are read and interpreted as a tag in Implicit VR Little Endian.
// An all-zero tag means the bytes start a file preamble. The File Meta
// Information Group Length tag continues at StateGroupLength. A tag the
// dictionary knows (or any group length tag) begins an Implicit VR dataset
// with no preamble; anything else is assumed to be a non-DICOM prefix and
// the bytes are preserved as the start of the preamble.
func (p *Parser) iterateDetect() error {
	var buf [4]byte
	if err := p.reader.ReadExact(buf[:]); err != nil {
		return err
	}

	t := tag.New(binary.LittleEndian.Uint16(buf[0:2]), binary.LittleEndian.Uint16(buf[2:4]))

	// quick check for the common case of zeroed-out preamble
	if t == tag.New(0, 0) {
		return p.finalizePreamble(buf)
	}

	// quick check if we're reading the beginning of file meta
	if t == tag.FileMetaInformationGroupLength {
		p.bytesRead += 4
		p.partialTag = t
		p.hasPartialTag = true
		p.state = StateGroupLength
		return nil
	}

	// An unknown tag that is not a group length tag means the stream is
	// unlikely to start with DICOM-encoded elements.
	if _, known := p.dictionary.ImplicitVR(t); !known && !t.IsGroupLength() {
		return p.finalizePreamble(buf)
	}

	// A known tag not in file meta: parse as Implicit VR Little Endian.
	p.bytesRead += 4
	p.partialTag = t
	p.hasPartialTag = true
	p.detectedTS = uid.ImplicitVRLittleEndian
	p.state = StateElement
	return nil
}

// finalizePreamble treats the four peeked bytes as the start of the 128-byte
// file preamble, consuming the remainder.
func (p *Parser) finalizePreamble(start [4]byte) error {
	preamble := make([]byte, FilePreambleLength)
	copy(preamble, start[:])
	if err := p.reader.ReadExact(preamble[4:]); err != nil {
		return err
	}
	p.bytesRead += FilePreambleLength
	p.filePreamble = preamble
	p.state = StatePrefix
	return nil
}

// iteratePreamble performs the StatePreamble iteration, used when the
// parser is started at this state directly.
func (p *Parser) iteratePreamble() error {
	preamble := make([]byte, FilePreambleLength)
	if err := p.reader.ReadExact(preamble); err != nil {
		return err
	}
	p.bytesRead += FilePreambleLength
	p.filePreamble = preamble
	p.state = StatePrefix
	return nil
}

// iteratePrefix performs the StatePrefix iteration, requiring the four
// ASCII bytes "DICM".
func (p *Parser) iteratePrefix() error {
	prefix := make([]byte, PrefixLength)
	if err := p.reader.ReadExact(prefix); err != nil {
		return err
	}
	p.bytesRead += PrefixLength

	for i, b := range Prefix {
		if prefix[i] != b {
			return fmt.Errorf("%w: %q", ErrBadPrefix, prefix)
		}
	}

	p.dicomPrefix = prefix
	p.state = StateGroupLength
	return nil
}

// iterateGroupLength performs the StateGroupLength iteration. File Meta is
// always Explicit VR Little Endian per the standard; the detected transfer
// syntax is used to tolerate non-conformant datasets identified during
// detection.
func (p *Parser) iterateGroupLength() (*element.DataElement, error) {
	ts := p.detectedTS
	t, err := p.readTag(ts)
	if err != nil {
		return nil, err
	}
	if p.isAtStop() {
		return nil, nil
	}

	if t != tag.FileMetaInformationGroupLength {
		if t.Uint32() > tag.FileMetaInformationGroupLength.Uint32() &&
			t.Uint32() < tag.FileMetaGroupEnd.Uint32() {
			p.state = StateFileMeta
		} else {
			p.state = StateElement
		}
		return nil, nil
	}

	groupLength, _, err := p.readElementBody(t, ts)
	if err != nil {
		return nil, err
	}

	parsed, err := groupLength.ParseValue()
	if err != nil {
		return nil, err
	}
	length, ok := value.AsUint32(parsed)
	if !ok {
		return nil, fmt.Errorf("file meta group length has no value")
	}

	p.fmiGroupLength = length
	p.fmiStart = p.bytesRead
	p.sawGroupLength = true
	p.state = StateFileMeta
	p.hasPartialTag = false

	return groupLength, nil
}

// iterateFileMeta performs the StateFileMeta iteration.
func (p *Parser) iterateFileMeta() (*element.DataElement, error) {
	// Check if we're about to read an element outside the file meta
	// section; if so, change states without reading.
	if p.sawGroupLength && p.bytesRead >= p.fmiStart+uint64(p.fmiGroupLength) {
		// If no transfer syntax was seen in file meta, jump back to
		// detecting the transfer syntax of the main dataset.
		if p.datasetTS != nil {
			p.state = StateElement
		} else {
			p.state = StateDetectTransferSyntax
		}
		return nil, nil
	}

	ts := p.detectedTS
	t, err := p.readTag(ts)
	if err != nil {
		return nil, err
	}
	if p.isAtStop() {
		return nil, nil
	}

	elem, _, err := p.readElementBody(t, ts)
	if err != nil {
		return nil, err
	}

	if t == tag.TransferSyntaxUID {
		datasetTS, err := p.parseTransferSyntaxElement(elem)
		if err != nil {
			return nil, err
		}
		if datasetTS != nil {
			p.datasetTS = datasetTS
		}
	}

	// If group length was read, use the byte position to determine the end
	// of file meta; also switch on any tag beyond the file meta group.
	if (p.sawGroupLength && p.bytesRead >= p.fmiStart+uint64(p.fmiGroupLength)) ||
		t.Uint32() > tag.FileMetaGroupEnd.Uint32() {
		if p.datasetTS != nil {
			p.state = StateElement
		} else {
			p.state = StateDetectTransferSyntax
		}
	}

	p.hasPartialTag = false

	return elem, nil
}
