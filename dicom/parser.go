// Package dicom provides DICOM file parsing implementation.
package dicom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/neandrake/medicom-go/dicom/charset"
	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/uid"
	"github.com/neandrake/medicom-go/dicom/value"
	"github.com/neandrake/medicom-go/dicom/vr"
)

const (
	// FilePreambleLength is the size of the optional file preamble.
	FilePreambleLength = 128

	// PrefixLength is the size of the "DICM" prefix following the preamble.
	PrefixLength = 4
)

// Prefix is the four ASCII bytes which follow the file preamble.
var Prefix = [PrefixLength]byte{'D', 'I', 'C', 'M'}

// ParserState is the current stage of the parser state machine.
type ParserState int

const (
	// StateDetectTransferSyntax is the initial state in which the parser
	// peeks at the stream to determine whether a preamble is present and
	// which transfer syntax the first elements are encoded in.
	StateDetectTransferSyntax ParserState = iota

	// StatePreamble reads the 128-byte file preamble. Not required for all
	// DICOM datasets but commonly present in file media.
	StatePreamble

	// StatePrefix reads the "DICM" prefix. Only present if the preamble is.
	StatePrefix

	// StateGroupLength reads the File Meta Information Group Length element,
	// always encoded as Explicit VR Little Endian. Its value is the number
	// of remaining bytes in the File Meta group.
	StateGroupLength

	// StateFileMeta reads the File Meta elements which describe how the rest
	// of the dataset is encoded. Always Explicit VR Little Endian.
	StateFileMeta

	// StateElement reads the primary content of the dataset using the
	// transfer syntax declared in File Meta.
	StateElement
)

func (s ParserState) String() string {
	switch s {
	case StateDetectTransferSyntax:
		return "DetectTransferSyntax"
	case StatePreamble:
		return "Preamble"
	case StatePrefix:
		return "Prefix"
	case StateGroupLength:
		return "GroupLength"
	case StateFileMeta:
		return "FileMeta"
	case StateElement:
		return "Element"
	default:
		return fmt.Sprintf("ParserState(%d)", int(s))
	}
}

// Parser is a streaming iterator over the data elements of a DICOM dataset.
//
// Each call to Next either advances internal state or produces exactly one
// element. The parser owns its reader, byte counter, state, and sequence
// stack; independent parsers may run on different goroutines over
// independent sources with no synchronization.
type Parser struct {
	reader *Reader
	state  ParserState
	stop   Stop

	// The dictionary used to resolve implicit VRs and transfer syntaxes.
	// The VR is not strictly necessary for parsing elements, however private
	// sequences may not have their sub-elements parsed properly without it.
	dictionary *tag.Dictionary

	// Tracks the number of bytes read from the dataset. The dataset is not
	// required to support seeking, so bytes are counted to track relative
	// positioning for file-meta boundaries and defined-length sequence ends.
	bytesRead uint64

	// The file preamble and prefix, when the dataset has them.
	filePreamble []byte
	dicomPrefix  []byte

	// Number of bytes read just after the FileMetaInformationGroupLength
	// element, and its value. bytesRead >= fmiStart+fmiGroupLength marks the
	// end of file meta.
	fmiStart       uint64
	fmiGroupLength uint32
	sawGroupLength bool

	// The last tag successfully read, regardless of whether its element
	// finished parsing, plus the VR/VL/TS used for it.
	tagLastRead tag.Tag
	vrLast      vr.VR
	vrLastKnown bool
	vlLast      element.ValueLength
	vlLastKnown bool
	tsLast      *uid.TransferSyntax

	// A tag read ahead of element parsing, either for evaluating the stop
	// condition or during transfer syntax detection.
	partialTag    tag.Tag
	hasPartialTag bool

	// detectedTS starts as Explicit VR Little Endian, the standard encoding
	// for file meta, and may change during detection. datasetTS is only
	// populated once the dataset declares its transfer syntax; until then
	// detectedTS governs reads.
	detectedTS *uid.TransferSyntax
	datasetTS  *uid.TransferSyntax

	// The character set for decoding text values, defaulting to the DICOM
	// default repertoire until a Specific Character Set element is parsed.
	cs *charset.Charset

	// The current sequence stack. Every element parsed clones this as its
	// ancestors snapshot.
	currentPath []element.SequenceElement

	// Once Next returns an error or the natural end, the iterator yields no
	// more items.
	iteratorEnded bool
}

// ParserBuilder constructs a Parser with common defaults: start state
// DetectTransferSyntax, stop at end of dataset, minimal dictionary, and an
// 8 KiB read buffer.
type ParserBuilder struct {
	state      ParserState
	stop       Stop
	dictionary *tag.Dictionary
	bufferSize int
}

// NewParserBuilder creates a builder with default configuration.
func NewParserBuilder() *ParserBuilder {
	return &ParserBuilder{
		state:      StateDetectTransferSyntax,
		stop:       StopEndOfDataset{},
		dictionary: tag.Minimal,
		bufferSize: DefaultBufferSize,
	}
}

// Stop sets the condition for when to stop parsing the dataset.
func (b *ParserBuilder) Stop(stop Stop) *ParserBuilder {
	b.stop = stop
	return b
}

// Dictionary sets the data dictionary used during parsing. The parser
// resolves transfer syntaxes itself; the dictionary supplies implicit VRs
// and display names. Parsing functions with the Minimal default.
func (b *ParserBuilder) Dictionary(dict *tag.Dictionary) *ParserBuilder {
	b.dictionary = dict
	return b
}

// BufferSize sets the dataset reader's internal buffer size.
func (b *ParserBuilder) BufferSize(size int) *ParserBuilder {
	b.bufferSize = size
	return b
}

// InitialState overrides the starting state, for datasets known to lack a
// preamble and prefix.
func (b *ParserBuilder) InitialState(state ParserState) *ParserBuilder {
	b.state = state
	return b
}

// Build constructs the parser over the given byte source.
func (b *ParserBuilder) Build(r io.Reader) *Parser {
	dict := b.dictionary
	if dict == nil {
		dict = tag.Minimal
	}
	stop := b.stop
	if stop == nil {
		stop = StopEndOfDataset{}
	}
	return &Parser{
		reader:     NewReader(r, b.bufferSize),
		state:      b.state,
		stop:       stop,
		dictionary: dict,
		detectedTS: uid.ExplicitVRLittleEndian,
		cs:         charset.Default,
	}
}

// BytesRead returns the number of bytes read from the dataset.
func (p *Parser) BytesRead() uint64 {
	return p.bytesRead
}

// TagLastRead returns the last tag read from the dataset. The element for
// this tag may not have successfully parsed.
func (p *Parser) TagLastRead() tag.Tag {
	return p.tagLastRead
}

// State returns the current state of the parser.
func (p *Parser) State() ParserState {
	return p.state
}

// TransferSyntax returns the transfer syntax governing dataset reads: the
// dataset-declared syntax once seen, otherwise the detected one.
func (p *Parser) TransferSyntax() *uid.TransferSyntax {
	if p.datasetTS != nil {
		return p.datasetTS
	}
	return p.detectedTS
}

// Charset returns the character set string values are decoded with.
func (p *Parser) Charset() *charset.Charset {
	return p.cs
}

// Dictionary returns the dictionary used during parsing.
func (p *Parser) Dictionary() *tag.Dictionary {
	return p.dictionary
}

// FilePreamble returns the 128-byte preamble, if one has been read.
func (p *Parser) FilePreamble() ([]byte, bool) {
	return p.filePreamble, p.filePreamble != nil
}

// DicomPrefix returns the 4-byte "DICM" prefix, if one has been read.
func (p *Parser) DicomPrefix() ([]byte, bool) {
	return p.dicomPrefix, p.dicomPrefix != nil
}

// Next returns the next data element of the dataset.
//
// At the natural end of the dataset (or the configured stop condition) it
// returns io.EOF. Errors are wrapped once with the parser's debug state.
// After an error or end, every subsequent call returns io.EOF.
func (p *Parser) Next() (*element.DataElement, error) {
	if p.iteratorEnded {
		return nil, io.EOF
	}

	elem, err := p.iterate()
	if err != nil {
		p.iteratorEnded = true
		if errors.Is(err, ErrExpectedEOF) {
			return nil, io.EOF
		}
		// Wrap with debug context exactly once at the iterator boundary.
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, &ParseError{Source: err, Detail: p.debugString()}
	}
	if elem == nil {
		p.iteratorEnded = true
		return nil, io.EOF
	}
	return elem, nil
}

// iterate performs the primary iteration: earlier parse states read
// non-element structure and loop to the next state, the later states return
// one element (or nil at a graceful stop).
func (p *Parser) iterate() (*element.DataElement, error) {
	for {
		switch p.state {
		case StateDetectTransferSyntax:
			if err := p.iterateDetect(); err != nil {
				return nil, err
			}

		case StatePreamble:
			if err := p.iteratePreamble(); err != nil {
				return nil, err
			}

		case StatePrefix:
			if err := p.iteratePrefix(); err != nil {
				return nil, err
			}

		case StateGroupLength:
			elem, err := p.iterateGroupLength()
			if err != nil {
				return nil, err
			}
			if elem == nil {
				// No element was read but another tag was seen; let the
				// loop continue in the new state.
				if p.state != StateGroupLength {
					continue
				}
				return nil, nil
			}
			return elem, nil

		case StateFileMeta:
			elem, err := p.iterateFileMeta()
			if err != nil {
				return nil, err
			}
			if elem == nil {
				if p.state != StateFileMeta {
					continue
				}
				return nil, nil
			}
			return elem, nil

		case StateElement:
			return p.iterateElement()

		default:
			return nil, fmt.Errorf("invalid parser state: %v", p.state)
		}
	}
}

// isAtStop checks whether parsing should halt, evaluated after a tag number
// has been read from the dataset.
func (p *Parser) isAtStop() bool {
	return p.stop.shouldStop(p.currentPath, p.tagLastRead, p.bytesRead)
}

// isInPixelData checks whether the current path is within a pixel data
// element, in which case items carry encapsulated fragments rather than
// child elements.
func (p *Parser) isInPixelData() bool {
	for i := len(p.currentPath) - 1; i >= 0; i-- {
		t := p.currentPath[i].Tag()
		if t == tag.PixelData || t == tag.FloatPixelData || t == tag.DoublePixelData {
			return true
		}
		// Walk up through items to the owning sequence element; anything
		// else means we're not within pixel data.
		if t != tag.Item {
			break
		}
	}
	return false
}

// popSequenceItemsByBytePos pops frames whose declared end position has been
// passed. Datasets don't always end their sequences/items with delimiters;
// defined-length frames end when the byte counter reaches their end.
func (p *Parser) popSequenceItemsByBytePos() {
	for len(p.currentPath) > 0 {
		top := &p.currentPath[len(p.currentPath)-1]
		endPos, ok := top.EndPos()
		if !ok {
			// undefined length, stop checking the sequence path
			return
		}
		if p.bytesRead >= endPos {
			p.currentPath = p.currentPath[:len(p.currentPath)-1]
		} else {
			return
		}
	}
}

// parseTransferSyntaxElement resolves the value of a TransferSyntaxUID
// element against the transfer syntax registry. Returns nil when the UID is
// not a recognized transfer syntax.
func (p *Parser) parseTransferSyntaxElement(e *element.DataElement) (*uid.TransferSyntax, error) {
	parsed, err := e.ParseValue()
	if err != nil {
		return nil, err
	}
	uidStr, _ := value.AsString(parsed)
	return uid.LookupTransferSyntax(strings.TrimRight(uidStr, "\x00 ")), nil
}

// parseSpecificCharacterSetElement resolves the value of a
// SpecificCharacterSet element against the charset registry, falling back to
// the default repertoire for unsupported values.
func (p *Parser) parseSpecificCharacterSetElement(e *element.DataElement) (*charset.Charset, error) {
	parsed, err := e.ParseValue()
	if err != nil {
		return nil, err
	}
	strs, _ := value.AsStrings(parsed)
	for _, s := range strs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if cs, ok := charset.Lookup(s); ok {
			return cs, nil
		}
		break
	}
	return charset.Default, nil
}

// debugString builds a string describing the parser's state, used to wrap
// errors surfaced at the iterator boundary.
//
//	state: Element @ byte pos 0x0000_02AC
//		tagpath: ReferencedFrameOfReferenceSequence[1].(00A1,0000)
//		vr: OB, vl: 128, ts: dataset_ts
func (p *Parser) debugString() string {
	nodes := make([]tag.Node, 0, len(p.currentPath)+1)
	for i := range p.currentPath {
		nodes = append(nodes, p.currentPath[i].Node())
	}
	nodes = append(nodes, tag.NewNode(p.tagLastRead))
	tagPath := tag.NewPath(nodes...).Format(p.dictionary)

	vrDisplay := "N/A"
	if p.vrLastKnown {
		vrDisplay = p.vrLast.String()
	}
	vlDisplay := "N/A"
	if p.vlLastKnown {
		vlDisplay = p.vlLast.String()
	}
	tsDisplay := "N/A"
	if p.tsLast != nil {
		if p.tsLast == p.datasetTS {
			tsDisplay = "dataset_ts"
		} else {
			tsDisplay = p.tsLast.Ident
		}
	}

	return fmt.Sprintf("state: %s @ byte pos 0x%04X_%04X\n\ttagpath: %s\n\tvr: %s, vl: %s, ts: %s",
		p.state, p.bytesRead>>16, p.bytesRead&0xFFFF, tagPath, vrDisplay, vlDisplay, tsDisplay)
}
