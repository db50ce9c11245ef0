package uid

// TransferSyntax describes how a DICOM dataset is encoded: whether VRs are
// explicit in the stream, the byte order, whether the dataset payload is
// deflated, and whether pixel data is encapsulated in codec fragments.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
type TransferSyntax struct {
	// UID identifying the transfer syntax. Empty for the virtual Implicit VR
	// Big Endian syntax, which exists only to parse the contents of private
	// sequences within a big-endian dataset.
	UID UID

	// Ident is the identifier of the transfer syntax, e.g. "ExplicitVRLittleEndian".
	Ident string

	// Name is the display name from the standard.
	Name string

	// ExplicitVR is true when VRs are encoded in the stream, false when they
	// are resolved from the data dictionary.
	ExplicitVR bool

	// BigEndian is true for big-endian byte ordering.
	BigEndian bool

	// Deflated is true when the dataset after file meta is a raw DEFLATE
	// stream (RFC 1951).
	Deflated bool

	// Encapsulated is true when pixel data is stored as codec fragments in
	// items beneath the pixel data element.
	Encapsulated bool
}

// Standard transfer syntaxes. The parser needs the first five for structural
// parsing; the encapsulated entries let callers identify compressed pixel
// data which this library does not decode.
var (
	// ImplicitVRLittleEndian is the default transfer syntax for DICOM.
	ImplicitVRLittleEndian = &TransferSyntax{
		UID:   MustParse("1.2.840.10008.1.2"),
		Ident: "ImplicitVRLittleEndian",
		Name:  "Implicit VR Little Endian: Default Transfer Syntax for DICOM",
	}

	// ExplicitVRLittleEndian is the transfer syntax used for file meta.
	ExplicitVRLittleEndian = &TransferSyntax{
		UID:        MustParse("1.2.840.10008.1.2.1"),
		Ident:      "ExplicitVRLittleEndian",
		Name:       "Explicit VR Little Endian",
		ExplicitVR: true,
	}

	// DeflatedExplicitVRLittleEndian compresses everything after file meta.
	DeflatedExplicitVRLittleEndian = &TransferSyntax{
		UID:        MustParse("1.2.840.10008.1.2.1.99"),
		Ident:      "DeflatedExplicitVRLittleEndian",
		Name:       "Deflated Explicit VR Little Endian",
		ExplicitVR: true,
		Deflated:   true,
	}

	// ExplicitVRBigEndian is retired but still found in older datasets.
	ExplicitVRBigEndian = &TransferSyntax{
		UID:        MustParse("1.2.840.10008.1.2.2"),
		Ident:      "ExplicitVRBigEndian",
		Name:       "Explicit VR Big Endian (Retired)",
		ExplicitVR: true,
		BigEndian:  true,
	}

	// ImplicitVRBigEndian is virtual: it is never declared by a dataset but
	// governs the contents of private sequences forced to implicit VR within
	// a big-endian dataset.
	ImplicitVRBigEndian = &TransferSyntax{
		Ident:     "ImplicitVRBigEndian",
		Name:      "Implicit VR Big Endian (Virtual)",
		BigEndian: true,
	}

	// RLELossless carries encapsulated RLE-compressed pixel data.
	RLELossless = &TransferSyntax{
		UID:          MustParse("1.2.840.10008.1.2.5"),
		Ident:        "RLELossless",
		Name:         "RLE Lossless Image Compression",
		ExplicitVR:   true,
		Encapsulated: true,
	}

	// JPEGBaseline8Bit carries encapsulated JPEG baseline (Process 1) frames.
	JPEGBaseline8Bit = &TransferSyntax{
		UID:          MustParse("1.2.840.10008.1.2.4.50"),
		Ident:        "JPEGBaseline8Bit",
		Name:         "JPEG Baseline (Process 1)",
		ExplicitVR:   true,
		Encapsulated: true,
	}

	// JPEGExtended12Bit carries encapsulated JPEG extended (Processes 2 & 4) frames.
	JPEGExtended12Bit = &TransferSyntax{
		UID:          MustParse("1.2.840.10008.1.2.4.51"),
		Ident:        "JPEGExtended12Bit",
		Name:         "JPEG Extended (Process 2 & 4)",
		ExplicitVR:   true,
		Encapsulated: true,
	}

	// JPEGLossless carries encapsulated JPEG lossless (Process 14) frames.
	JPEGLossless = &TransferSyntax{
		UID:          MustParse("1.2.840.10008.1.2.4.57"),
		Ident:        "JPEGLossless",
		Name:         "JPEG Lossless, Non-Hierarchical (Process 14)",
		ExplicitVR:   true,
		Encapsulated: true,
	}

	// JPEGLosslessSV1 carries encapsulated JPEG lossless first-order prediction frames.
	JPEGLosslessSV1 = &TransferSyntax{
		UID:          MustParse("1.2.840.10008.1.2.4.70"),
		Ident:        "JPEGLosslessSV1",
		Name:         "JPEG Lossless, Non-Hierarchical, First-Order Prediction (Process 14 [Selection Value 1])",
		ExplicitVR:   true,
		Encapsulated: true,
	}

	// JPEG2000Lossless carries encapsulated JPEG 2000 lossless codestreams.
	JPEG2000Lossless = &TransferSyntax{
		UID:          MustParse("1.2.840.10008.1.2.4.90"),
		Ident:        "JPEG2000Lossless",
		Name:         "JPEG 2000 Image Compression (Lossless Only)",
		ExplicitVR:   true,
		Encapsulated: true,
	}

	// JPEG2000 carries encapsulated JPEG 2000 codestreams.
	JPEG2000 = &TransferSyntax{
		UID:          MustParse("1.2.840.10008.1.2.4.91"),
		Ident:        "JPEG2000",
		Name:         "JPEG 2000 Image Compression",
		ExplicitVR:   true,
		Encapsulated: true,
	}
)

// registered transfer syntaxes, in standard order.
var registered = []*TransferSyntax{
	ImplicitVRLittleEndian,
	ExplicitVRLittleEndian,
	DeflatedExplicitVRLittleEndian,
	ExplicitVRBigEndian,
	RLELossless,
	JPEGBaseline8Bit,
	JPEGExtended12Bit,
	JPEGLossless,
	JPEGLosslessSV1,
	JPEG2000Lossless,
	JPEG2000,
}

var tsByUID = func() map[string]*TransferSyntax {
	m := make(map[string]*TransferSyntax, len(registered))
	for _, ts := range registered {
		m[ts.UID.String()] = ts
	}
	return m
}()

var tsByIdent = func() map[string]*TransferSyntax {
	m := make(map[string]*TransferSyntax, len(registered)+1)
	for _, ts := range registered {
		m[ts.Ident] = ts
	}
	m[ImplicitVRBigEndian.Ident] = ImplicitVRBigEndian
	return m
}()

// LookupTransferSyntax finds a registered transfer syntax by its UID value.
// Returns nil if the UID is not a known transfer syntax.
func LookupTransferSyntax(uidValue string) *TransferSyntax {
	return tsByUID[uidValue]
}

// LookupTransferSyntaxByIdent finds a registered transfer syntax by its
// identifier, e.g. "ExplicitVRLittleEndian". Returns nil if unknown.
func LookupTransferSyntaxByIdent(ident string) *TransferSyntax {
	return tsByIdent[ident]
}
