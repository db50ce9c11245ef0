// Package dicom provides DICOM file parsing and manipulation.
package dicom

import (
	"errors"
	"fmt"
)

// ErrBadPrefix indicates the four bytes after the preamble were not "DICM".
// The dataset is unlikely to be DICOM.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html#sect_7.1
var ErrBadPrefix = errors.New(`dicom prefix is not "DICM"`)

// ErrExpectedEOF indicates the stream ended at a legal element boundary.
// The iterator treats this as the natural end of the dataset.
var ErrExpectedEOF = errors.New("stream ended between dicom elements")

// ErrUnknownVR indicates an Explicit VR stream contained a two-letter code
// not defined by the standard. The parser recovers by substituting the
// Invalid VR, so this error does not escape iteration.
var ErrUnknownVR = errors.New("unknown explicit vr")

// UnknownVRError carries the unrecognized 16-bit VR code.
type UnknownVRError struct {
	Code uint16
}

func (e *UnknownVRError) Error() string {
	return fmt.Sprintf("%v: %#06X", ErrUnknownVR, e.Code)
}

func (e *UnknownVRError) Unwrap() error {
	return ErrUnknownVR
}

// ParseError wraps a failure with the parser's debug state: current state,
// byte position, partial tag path, VR, VL, and transfer syntax. It is
// attached once at the iterator boundary; internal helpers return their
// errors unwrapped to avoid compounding.
type ParseError struct {
	// Source is the underlying failure.
	Source error

	// Detail is the parser's debug string at the point of failure.
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error reading from dataset: %v\n\t%s", e.Source, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Source
}
