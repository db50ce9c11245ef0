package pixel

import (
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/neandrake/medicom-go/dicom"
	"github.com/neandrake/medicom-go/dicom/element"
	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/value"
	"github.com/neandrake/medicom-go/dicom/vr"
)

// PhotoInterp is the colour model of the pixel samples. Values other than
// the supported constants are carried through for error reporting.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.7.6.3.1.2
type PhotoInterp string

const (
	// RGB samples, three per pixel.
	RGB PhotoInterp = "RGB"
	// Monochrome1 is greyscale with minimum sample value displayed white.
	Monochrome1 PhotoInterp = "MONOCHROME1"
	// Monochrome2 is greyscale with minimum sample value displayed black.
	Monochrome2 PhotoInterp = "MONOCHROME2"
)

// IsRGB returns whether this is the RGB colour model.
func (p PhotoInterp) IsRGB() bool {
	return p == RGB
}

// IsMonochrome returns whether this is one of the supported greyscale models.
func (p PhotoInterp) IsMonochrome() bool {
	return p == Monochrome1 || p == Monochrome2
}

// WindowLevel is a linear mapping (center, width) -> (OutMin, OutMax) used
// for display of monochrome values.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part03.html#sect_C.11.2.1.2
type WindowLevel struct {
	Name   string
	Center float64
	Width  float64
	OutMin float64
	OutMax float64
}

// Apply maps the value through the window per the standard's linear VOI
// function, clamping outside the window to the output range.
func (w WindowLevel) Apply(val float64) float64 {
	if w.Width <= 1 {
		if val < w.Center {
			return w.OutMin
		}
		return w.OutMax
	}
	if val <= w.Center-0.5-(w.Width-1)/2 {
		return w.OutMin
	}
	if val > w.Center-0.5+(w.Width-1)/2 {
		return w.OutMax
	}
	return ((val-(w.Center-0.5))/(w.Width-1)+0.5)*(w.OutMax-w.OutMin) + w.OutMin
}

// validate checks the declarative constraints of SliceInfo.
var validate = validator.New(validator.WithRequiredStructEnabled())

// SliceInfo collects the parsed values of the elements which describe an
// image slice, together with the pixel data bytes accumulated from the
// native value field or its encapsulated fragments.
type SliceInfo struct {
	// BigEndian records the byte ordering the pixel samples were encoded with.
	BigEndian bool

	// VR of the pixel data element, OB or OW.
	VR vr.VR

	// SamplesPerPixel is 1 for monochrome and 3 for RGB.
	SamplesPerPixel uint16 `validate:"gte=1"`

	// PhotoInterp is the declared colour model, empty when absent.
	PhotoInterp PhotoInterp

	// PlanarConfig is 0 for interleaved samples, 1 for planar.
	PlanarConfig uint16 `validate:"lte=1"`

	Cols uint16 `validate:"gt=0"`
	Rows uint16 `validate:"gt=0"`

	// PixelPad is the declared padding value, excluded from min/max when
	// representable in the target sample type.
	PixelPad    uint16
	HasPixelPad bool

	BitsAllocated uint16
	BitsStored    uint16
	HighBit       uint16

	// PixelRep is 0 for unsigned samples, 1 for signed.
	PixelRep uint16

	// Rescale transform applied per sample when both are present.
	Slope        float64
	Intercept    float64
	HasSlope     bool
	HasIntercept bool

	// Unit of rescaled values; Rescale Type wins over Units.
	Unit string

	WindowCenters []float64
	WindowWidths  []float64
	WindowLabels  []string

	data []byte
}

// IsSigned returns whether the sample values are signed.
func (i *SliceInfo) IsSigned() bool {
	return i.PixelRep != 0
}

// Bytes returns the accumulated pixel data bytes.
func (i *SliceInfo) Bytes() []byte {
	return i.data
}

// AppendBytes appends raw pixel bytes, used when assembling fragments.
func (i *SliceInfo) AppendBytes(data []byte) {
	i.data = append(i.data, data...)
}

// WindowLevels pairs the parsed window centers, widths and labels. The
// output range is filled in during materialization.
func (i *SliceInfo) WindowLevels() []WindowLevel {
	n := len(i.WindowCenters)
	if len(i.WindowWidths) < n {
		n = len(i.WindowWidths)
	}
	levels := make([]WindowLevel, 0, n)
	for idx := 0; idx < n; idx++ {
		name := ""
		if idx < len(i.WindowLabels) {
			name = i.WindowLabels[idx]
		}
		levels = append(levels, WindowLevel{
			Name:   name,
			Center: i.WindowCenters[idx],
			Width:  i.WindowWidths[idx],
		})
	}
	return levels
}

// Validate checks the collected attributes before materialization, clamping
// Bits Stored and High Bit into range as older producers are sloppy with
// them.
func (i *SliceInfo) Validate() error {
	if len(i.data) == 0 {
		return ErrMissingPixelData
	}

	if err := validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Cols", "Rows":
				return &InvalidSizeError{Cols: i.Cols, Rows: i.Rows}
			case "SamplesPerPixel", "PlanarConfig":
				return &InvalidPhotoInterpSamplesError{PhotoInterp: i.PhotoInterp, SamplesPerPixel: i.SamplesPerPixel}
			}
		}
		return err
	}

	if i.VR != vr.OtherByte && i.VR != vr.OtherWord {
		return &InvalidVRError{VR: i.VR}
	}

	switch i.BitsAllocated {
	case 8, 16, 32:
	default:
		return &InvalidBitsAllocatedError{BitsAllocated: i.BitsAllocated}
	}

	// BitsStored is generally the same value as BitsAllocated.
	if i.BitsStored > i.BitsAllocated || i.BitsStored == 0 {
		i.BitsStored = i.BitsAllocated
	}
	// HighBit is generally BitsStored - 1.
	if i.HighBit > i.BitsAllocated-1 || i.HighBit < i.BitsStored-1 {
		i.HighBit = i.BitsStored - 1
	}

	if i.PhotoInterp != "" {
		if (i.PhotoInterp.IsRGB() && i.SamplesPerPixel != 3) ||
			(i.PhotoInterp.IsMonochrome() && i.SamplesPerPixel != 1) {
			return &InvalidPhotoInterpSamplesError{PhotoInterp: i.PhotoInterp, SamplesPerPixel: i.SamplesPerPixel}
		}
	}

	return nil
}

// Collect drains the parser, recording the image description elements and
// moving pixel data bytes out of the pixel data element and its fragments.
// The source elements are left with empty values.
func Collect(p *dicom.Parser) (*SliceInfo, error) {
	info := &SliceInfo{
		BigEndian:       p.TransferSyntax().BigEndian,
		VR:              vr.OtherByte,
		SamplesPerPixel: 1,
	}
	for {
		elem, err := p.Next()
		if errors.Is(err, io.EOF) {
			return info, nil
		}
		if err != nil {
			return nil, err
		}
		if err := info.processElement(elem); err != nil {
			return nil, err
		}
	}
}

// CollectFromElements is Collect over an already-parsed element stream, e.g.
// a flattened dataset tree.
func CollectFromElements(elems []*element.DataElement, bigEndian bool) (*SliceInfo, error) {
	info := &SliceInfo{
		BigEndian:       bigEndian,
		VR:              vr.OtherByte,
		SamplesPerPixel: 1,
	}
	for _, elem := range elems {
		if err := info.processElement(elem); err != nil {
			return nil, err
		}
	}
	return info, nil
}

// processElement records a relevant element's parsed value. The tag checks
// are ordered as the tags appear in a DICOM dataset.
func (i *SliceInfo) processElement(elem *element.DataElement) error {
	if elem.IsPixelData() || elem.IsWithinPixelData() {
		if elem.Tag() == tag.PixelData {
			// The dataset's transfer syntax is settled by the time pixel
			// data appears; record the ordering the samples use.
			i.BigEndian = elem.TransferSyntax().BigEndian
			if elem.VR() == vr.OtherByte || elem.VR() == vr.OtherWord {
				i.VR = elem.VR()
			}
		}
		i.data = append(i.data, elem.MoveData()...)
		return nil
	}

	switch elem.Tag() {
	case tag.SamplesPerPixel:
		if v, ok := parseUint16(elem); ok {
			i.SamplesPerPixel = v
		}
	case tag.PhotometricInterpretation:
		if v, ok := parseString(elem); ok {
			i.PhotoInterp = PhotoInterp(strings.TrimSpace(v))
		}
	case tag.PlanarConfiguration:
		if v, ok := parseUint16(elem); ok {
			i.PlanarConfig = v
		}
	case tag.Rows:
		if v, ok := parseUint16(elem); ok {
			i.Rows = v
		}
	case tag.Columns:
		if v, ok := parseUint16(elem); ok {
			i.Cols = v
		}
	case tag.BitsAllocated:
		if v, ok := parseUint16(elem); ok {
			i.BitsAllocated = v
		}
	case tag.BitsStored:
		if v, ok := parseUint16(elem); ok {
			i.BitsStored = v
		}
	case tag.HighBit:
		if v, ok := parseUint16(elem); ok {
			i.HighBit = v
		}
	case tag.PixelRepresentation:
		if v, ok := parseUint16(elem); ok {
			i.PixelRep = v
		}
	case tag.PixelPaddingValue:
		if v, ok := parseUint16(elem); ok {
			i.PixelPad = v
			i.HasPixelPad = true
		}
	case tag.WindowCenter:
		if v, ok := parseDoubles(elem); ok {
			i.WindowCenters = v
		}
	case tag.WindowWidth:
		if v, ok := parseDoubles(elem); ok {
			i.WindowWidths = v
		}
	case tag.WindowCenterWidthExplanation:
		if v, err := elem.ParseValue(); err == nil {
			if strs, ok := value.AsStrings(v); ok {
				i.WindowLabels = strs
			}
		}
	case tag.RescaleIntercept:
		if v, ok := parseDouble(elem); ok {
			i.Intercept = v
			i.HasIntercept = true
		}
	case tag.RescaleSlope:
		if v, ok := parseDouble(elem); ok {
			i.Slope = v
			i.HasSlope = true
		}
	case tag.RescaleType, tag.Units:
		// Only use Units if Rescale Type wasn't present.
		if i.Unit == "" {
			if v, ok := parseString(elem); ok {
				i.Unit = strings.TrimSpace(v)
			}
		}
	}
	return nil
}

func parseUint16(elem *element.DataElement) (uint16, bool) {
	v, err := elem.ParseValue()
	if err != nil {
		return 0, false
	}
	return value.AsUint16(v)
}

func parseDouble(elem *element.DataElement) (float64, bool) {
	v, err := elem.ParseValue()
	if err != nil {
		return 0, false
	}
	return value.AsDouble(v)
}

func parseDoubles(elem *element.DataElement) ([]float64, bool) {
	v, err := elem.ParseValue()
	if err != nil {
		return nil, false
	}
	return value.AsDoubles(v)
}

func parseString(elem *element.DataElement) (string, bool) {
	v, err := elem.ParseValue()
	if err != nil {
		return "", false
	}
	return value.AsString(v)
}
