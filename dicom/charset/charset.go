// Package charset provides the registry of text encodings used to decode
// DICOM character-string values.
//
// The encoding of textual data elements is defined by the Specific Character
// Set (0008,0005) element; in its absence the default repertoire applies.
// This implementation maps the defined terms of Part 2, Section D.6.2 onto
// the encodings provided by golang.org/x/text.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/chtml/part02/sect_D.6.2.html
package charset

import (
	"errors"
	"fmt"

	xcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrDecode indicates text could not be decoded with the selected character set.
var ErrDecode = errors.New("charset decoding error")

// Charset is a reference into the registry of text encodings. The zero value
// is not useful; use Default or Lookup. Charsets are immutable and safe to
// share across parsers.
type Charset struct {
	term string
	name string
	enc  encoding.Encoding
}

// Default is the default character repertoire used when a dataset declares no
// Specific Character Set, and for all VRs not subject to replacement.
var Default = &Charset{term: "", name: "windows-1252", enc: charmap.Windows1252}

// lookupLabelByTerm maps Specific Character Set defined terms to encoding
// labels resolvable by the html/charset index.
//
// See DICOM Part 2, Section D.6.2:
// https://dicom.nema.org/medical/dicom/current/output/chtml/part02/sect_D.6.2.html
var lookupLabelByTerm = map[string]string{
	"ISO_IR 100": "iso-ir-100",
	"ISO_IR 101": "iso-ir-101",
	"ISO_IR 109": "iso-ir-109",
	"ISO_IR 110": "iso-ir-110",
	"ISO_IR 144": "iso-ir-144",
	"ISO_IR 127": "iso-ir-127",
	"ISO_IR 126": "iso-ir-126",
	"ISO_IR 138": "iso-ir-138",
	"ISO_IR 148": "iso-ir-148",
	"ISO_IR 13":  "shift-jis",
	"ISO_IR 166": "tis-620",
	"ISO_IR 192": "utf-8",
	"GB18030":    "gb18030",
	"GBK":        "gbk",

	"ISO 2022 IR 6":   "us-ascii",
	"ISO 2022 IR 100": "iso-ir-100",
	"ISO 2022 IR 101": "iso-ir-101",
	"ISO 2022 IR 109": "iso-ir-109",
	"ISO 2022 IR 110": "iso-ir-110",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 13":  "shift-jis",
	"ISO 2022 IR 166": "tis-620",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO 2022 IR 149": "euc-kr",
}

// Lookup resolves a Specific Character Set defined term to a Charset.
// Returns false for unknown terms; callers should fall back to Default.
func Lookup(term string) (*Charset, bool) {
	label, ok := lookupLabelByTerm[term]
	if !ok {
		return nil, false
	}
	enc, name := xcharset.Lookup(label)
	if enc == nil {
		return nil, false
	}
	return &Charset{term: term, name: name, enc: enc}, true
}

// Term returns the Specific Character Set defined term this charset was
// resolved from, empty for Default.
func (c *Charset) Term() string {
	return c.term
}

// Name returns the canonical name of the underlying encoding, e.g. "utf-8".
func (c *Charset) Name() string {
	return c.name
}

// String returns the canonical encoding name.
func (c *Charset) String() string {
	return c.name
}

// Decode decodes the given bytes to a UTF-8 string.
func (c *Charset) Decode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	decoded, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(decoded), nil
}

// Encode encodes the given UTF-8 string into this character set.
func (c *Charset) Encode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	encoded, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return encoded, nil
}
