package element

import (
	"errors"
	"fmt"

	"github.com/neandrake/medicom-go/dicom/vr"
)

// ErrDecodeValue indicates value bytes could not be interpreted per the
// requested VR, e.g. a non-numeric DS or a wrong byte count for AT.
var ErrDecodeValue = errors.New("error parsing element value")

// maxBytesInError caps the value-field prefix carried in decode errors.
const maxBytesInError = 16

// DecodeValueError carries the context of a failed value decode: the element's
// tag path, VR, character set, and a prefix of the offending bytes.
type DecodeValueError struct {
	Message   string
	TagString string
	VR        vr.VR
	CS        string
	Bytes     []byte

	// Source is the underlying failure, if any (e.g. a charset error).
	Source error
}

func (e *DecodeValueError) Error() string {
	return fmt.Sprintf("%v: %s\n\ttagpath: %s\n\tvr: %s, cs: %s\n\tvalue: % X",
		ErrDecodeValue, e.Message, e.TagString, e.VR, e.CS, e.Bytes)
}

func (e *DecodeValueError) Unwrap() error {
	if e.Source != nil {
		return e.Source
	}
	return ErrDecodeValue
}

// Is lets errors.Is match any DecodeValueError against ErrDecodeValue.
func (e *DecodeValueError) Is(target error) bool {
	return target == ErrDecodeValue
}

// decodeError builds a DecodeValueError for the given element.
func decodeError(message string, e *DataElement, source error) *DecodeValueError {
	prefix := e.data
	if len(prefix) > maxBytesInError {
		prefix = prefix[:maxBytesInError]
	}
	return &DecodeValueError{
		Message:   message,
		TagString: e.TagPath().String(),
		VR:        e.vr,
		CS:        e.cs.Name(),
		Bytes:     append([]byte(nil), prefix...),
		Source:    source,
	}
}
