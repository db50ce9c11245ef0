// Package dicom provides DICOM file parsing and manipulation.
//
// This package implements a streaming DICOM parser following the DICOM
// standard Part 10.
// https://dicom.nema.org/medical/dicom/current/output/html/part10.html
package dicom

import (
	"bufio"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultBufferSize is the default size of the dataset reader's internal buffer.
const DefaultBufferSize = 8 * 1024

// Reader is a buffered byte source for the parser. It supports both Little
// Endian and Big Endian byte ordering, which changes dynamically during
// parsing, and transparent inflation of deflated datasets.
//
// The position counter tracks bytes consumed by the caller; once deflate is
// enabled it counts bytes of the decompressed stream, the same basis used
// for sequence end positions.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.3
type Reader struct {
	r         io.Reader
	byteOrder binary.ByteOrder
	position  int64
	deflated  bool
}

// NewReader creates a new DICOM dataset reader with the given buffer size.
// A bufferSize of zero or less uses DefaultBufferSize. The byte order starts
// as Little Endian, which the standard mandates for file meta.
func NewReader(r io.Reader, bufferSize int) *Reader {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Reader{
		r:         bufio.NewReaderSize(r, bufferSize),
		byteOrder: binary.LittleEndian,
	}
}

// SetByteOrder changes the byte order for subsequent read operations.
//
// This is used when switching between File Meta Information (always Little
// Endian) and the main dataset (which may use Big Endian depending on
// Transfer Syntax).
func (r *Reader) SetByteOrder(order binary.ByteOrder) {
	r.byteOrder = order
}

// ByteOrder returns the byte order used for subsequent read operations.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.byteOrder
}

// SetDeflate wraps the remaining stream in a raw DEFLATE (RFC 1951) reader.
// File Meta Information is never compressed, so the parser enables this only
// once the Deflated Explicit VR Little Endian transfer syntax governs the
// reads that follow. Enabling twice has no effect.
func (r *Reader) SetDeflate() {
	if r.deflated {
		return
	}
	r.deflated = true
	r.r = flate.NewReader(r.r)
}

// Deflated returns whether the reader is inflating a deflated dataset.
func (r *Reader) Deflated() bool {
	return r.deflated
}

// Position returns the number of bytes consumed from the (possibly
// decompressed) stream.
func (r *Reader) Position() int64 {
	return r.position
}

// ReadExact fills buf from the stream.
//
// If the underlying source yields zero bytes at the call boundary the
// distinct ErrExpectedEOF is returned, since element boundaries are the only
// legal place for a DICOM stream to end. Zero bytes mid-fill is an I/O
// failure reported as io.ErrUnexpectedEOF.
func (r *Reader) ReadExact(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	n, err := io.ReadFull(r.r, buf)
	r.position += int64(n)
	if err != nil {
		if err == io.EOF && n == 0 {
			return ErrExpectedEOF
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("failed to fill whole buffer, read %d bytes: %w", n, io.ErrUnexpectedEOF)
		}
		return fmt.Errorf("failed to read %d bytes: %w", len(buf), err)
	}
	return nil
}

// ReadUint16 reads a 16-bit unsigned integer using the current byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	var buf [2]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return r.byteOrder.Uint16(buf[:]), nil
}

// ReadUint32 reads a 32-bit unsigned integer using the current byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	var buf [4]byte
	if err := r.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return r.byteOrder.Uint32(buf[:]), nil
}
