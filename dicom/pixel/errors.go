package pixel

import (
	"errors"
	"fmt"

	"github.com/neandrake/medicom-go/dicom/vr"
)

// ErrMissingPixelData indicates no pixel data bytes were found in the dataset.
var ErrMissingPixelData = errors.New("no pixel data bytes found")

// InvalidSizeError indicates the image dimensions are unusable.
type InvalidSizeError struct {
	Cols uint16
	Rows uint16
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid dimensions: %dx%d", e.Cols, e.Rows)
}

// InvalidVRError indicates the pixel data element's VR is not OB or OW.
type InvalidVRError struct {
	VR vr.VR
}

func (e *InvalidVRError) Error() string {
	return fmt.Sprintf("invalid pixel data VR: %s", e.VR)
}

// InvalidBitsAllocatedError indicates an unsupported Bits Allocated value.
type InvalidBitsAllocatedError struct {
	BitsAllocated uint16
}

func (e *InvalidBitsAllocatedError) Error() string {
	return fmt.Sprintf("invalid bits allocated: %d", e.BitsAllocated)
}

// InvalidPhotoInterpSamplesError indicates the Photometric Interpretation and
// Samples per Pixel combination is inconsistent: RGB requires 3 samples,
// monochrome requires 1.
type InvalidPhotoInterpSamplesError struct {
	PhotoInterp     PhotoInterp
	SamplesPerPixel uint16
}

func (e *InvalidPhotoInterpSamplesError) Error() string {
	return fmt.Sprintf("invalid photometric interpretation and samples per pixel combo: %s, %d",
		e.PhotoInterp, e.SamplesPerPixel)
}

// InvalidPixelSourceError indicates an index into the pixel buffer which does
// not address the start of a pixel.
type InvalidPixelSourceError struct {
	Index int
}

func (e *InvalidPixelSourceError) Error() string {
	return fmt.Sprintf("invalid source location to interpret pixel data: %d", e.Index)
}
