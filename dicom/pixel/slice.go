package pixel

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
)

// Sample is the set of native pixel sample types.
type Sample interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// Pixel is one pixel position with its red, green and blue components. For
// monochrome images the three components carry the same windowed value.
type Pixel[T Sample] struct {
	X, Y    int
	R, G, B T
}

// Slice is a typed pixel buffer over a dense rows*cols*samples array, with
// the recorded minimum and maximum sample values (excluding the pixel
// padding value), the sample stride, and whether the samples are interpreted
// as RGB.
type Slice[T Sample] struct {
	info   *SliceInfo
	buffer []T
	min    T
	max    T

	stride      int
	interpAsRGB bool
	winLevels   []WindowLevel
}

// Concrete buffer forms produced by Load.
type (
	SliceI8  = Slice[int8]
	SliceU8  = Slice[uint8]
	SliceI16 = Slice[int16]
	SliceU16 = Slice[uint16]
	SliceI32 = Slice[int32]
	SliceU32 = Slice[uint32]
)

// Buffer is the closed sum of typed pixel buffers; type-switch on the
// concrete Slice form for per-sample access.
type Buffer interface {
	// Info returns the slice descriptor the buffer was materialized from.
	Info() *SliceInfo

	// BitsPerSample returns the allocated width of one sample.
	BitsPerSample() int

	// IsSigned returns whether samples are signed.
	IsSigned() bool

	// Len returns the number of samples in the buffer.
	Len() int
}

// Compile-time checks that every slice form satisfies Buffer.
var (
	_ Buffer = (*SliceI8)(nil)
	_ Buffer = (*SliceU8)(nil)
	_ Buffer = (*SliceI16)(nil)
	_ Buffer = (*SliceU16)(nil)
	_ Buffer = (*SliceI32)(nil)
	_ Buffer = (*SliceU32)(nil)
)

// Info returns the slice descriptor the buffer was materialized from.
func (s *Slice[T]) Info() *SliceInfo {
	return s.info
}

// Buffer returns the dense sample array.
func (s *Slice[T]) Buffer() []T {
	return s.buffer
}

// Min returns the smallest sample value, excluding the padding value.
func (s *Slice[T]) Min() T {
	return s.min
}

// Max returns the largest sample value, excluding the padding value.
func (s *Slice[T]) Max() T {
	return s.max
}

// Stride returns the distance between colour planes: 1 for interleaved
// samples, buffer length over samples-per-pixel for planar.
func (s *Slice[T]) Stride() int {
	return s.stride
}

// InterpAsRGB returns whether pixels read as RGB triplets.
func (s *Slice[T]) InterpAsRGB() bool {
	return s.interpAsRGB
}

// WindowLevels returns the window/level mappings available for display,
// ending with the synthesized "Min/Max" fallback unless a declared window
// already has the same center and width.
func (s *Slice[T]) WindowLevels() []WindowLevel {
	return s.winLevels
}

// BitsPerSample returns the allocated width of one sample.
func (s *Slice[T]) BitsPerSample() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	default:
		return 32
	}
}

// IsSigned returns whether samples are signed.
func (s *Slice[T]) IsSigned() bool {
	return s.info.IsSigned()
}

// Len returns the number of samples in the buffer.
func (s *Slice[T]) Len() int {
	return len(s.buffer)
}

// GetPixel returns the pixel at the given coordinate. RGB buffers read the
// three planes at the stride offsets; monochrome buffers read one sample,
// apply the first applicable window/level mapping, and invert for MONOCHROME1.
func (s *Slice[T]) GetPixel(x, y int) (Pixel[T], error) {
	cols := int(s.info.Cols)
	rows := int(s.info.Rows)
	samples := int(s.info.SamplesPerPixel)

	if x < 0 || y < 0 || x >= cols || y >= rows {
		return Pixel[T]{}, &InvalidPixelSourceError{Index: x + y*cols}
	}

	src := x + y*cols
	if s.info.PlanarConfig == 0 {
		src *= samples
	}
	if src >= len(s.buffer) || (s.interpAsRGB && src+2*s.stride >= len(s.buffer)) {
		return Pixel[T]{}, &InvalidPixelSourceError{Index: src}
	}

	if s.interpAsRGB {
		return Pixel[T]{
			X: x, Y: y,
			R: s.buffer[src],
			G: s.buffer[src+s.stride],
			B: s.buffer[src+s.stride*2],
		}, nil
	}

	val := float64(s.buffer[src])
	if len(s.winLevels) > 0 {
		// The first applicable window applies; the synthesized "Min/Max"
		// entry sits last and is reached only when none were declared.
		val = s.winLevels[0].Apply(val)
	}
	v := clampTo[T](val)
	if s.info.PhotoInterp == Monochrome1 {
		v = ^v
	}
	return Pixel[T]{X: x, Y: y, R: v, G: v, B: v}, nil
}

// Pixels iterates the slice's pixels in row-major order.
func (s *Slice[T]) Pixels() iter.Seq[Pixel[T]] {
	return func(yield func(Pixel[T]) bool) {
		cols := int(s.info.Cols)
		rows := int(s.info.Rows)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				px, err := s.GetPixel(x, y)
				if err != nil {
					return
				}
				if !yield(px) {
					return
				}
			}
		}
	}
}

// Load materializes the collected pixel data into a typed buffer chosen by
// Bits Allocated and Pixel Representation, applying the rescale transform
// per sample and recording min/max with the padding value excluded.
func Load(info *SliceInfo) (Buffer, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}

	var order binary.ByteOrder = binary.LittleEndian
	if info.BigEndian {
		order = binary.BigEndian
	}

	switch {
	case info.BitsAllocated == 8 && info.IsSigned():
		return materialize(info, 1, func(b []byte) int8 { return int8(b[0]) })
	case info.BitsAllocated == 8:
		return materialize(info, 1, func(b []byte) uint8 { return b[0] })
	case info.BitsAllocated == 16 && info.IsSigned():
		return materialize(info, 2, func(b []byte) int16 { return int16(order.Uint16(b)) })
	case info.BitsAllocated == 16:
		return materialize(info, 2, func(b []byte) uint16 { return order.Uint16(b) })
	case info.BitsAllocated == 32 && info.IsSigned():
		return materialize(info, 4, func(b []byte) int32 { return int32(order.Uint32(b)) })
	case info.BitsAllocated == 32:
		return materialize(info, 4, func(b []byte) uint32 { return order.Uint32(b) })
	default:
		return nil, &InvalidBitsAllocatedError{BitsAllocated: info.BitsAllocated}
	}
}

// materialize reads one sample at a time, applies the rescale transform, and
// tracks min/max excluding the padding value.
func materialize[T Sample](info *SliceInfo, sampleSize int, read func([]byte) T) (*Slice[T], error) {
	total := int(info.Rows) * int(info.Cols) * int(info.SamplesPerPixel)
	data := info.Bytes()
	if len(data) < total*sampleSize {
		return nil, fmt.Errorf("pixel data has %d bytes, need %d", len(data), total*sampleSize)
	}

	rescale := info.HasSlope && info.HasIntercept
	pad, padOK := convertPad[T](info)

	buffer := make([]T, 0, total)
	var minVal, maxVal T
	seen := false

	for i := 0; i < total; i++ {
		val := read(data[i*sampleSize : (i+1)*sampleSize])
		if rescale {
			val = T(float64(val)*info.Slope + info.Intercept)
		}
		buffer = append(buffer, val)

		if padOK && val == pad {
			continue
		}
		if !seen {
			minVal, maxVal = val, val
			seen = true
			continue
		}
		if val < minVal {
			minVal = val
		}
		if val > maxVal {
			maxVal = val
		}
	}

	stride := 1
	if info.PlanarConfig != 0 && info.SamplesPerPixel > 0 {
		stride = len(buffer) / int(info.SamplesPerPixel)
	}
	interpAsRGB := info.PhotoInterp.IsRGB() && info.SamplesPerPixel == 3

	outMin, outMax := sampleRange[T]()
	winLevels := info.WindowLevels()
	for i := range winLevels {
		winLevels[i].OutMin = outMin
		winLevels[i].OutMax = outMax
	}
	minmaxCenter := float64(minVal) + (float64(maxVal)-float64(minVal))/2
	minmaxWidth := float64(maxVal) - float64(minVal)
	hasMinmax := false
	for _, wl := range winLevels {
		if wl.Center == minmaxCenter && wl.Width == minmaxWidth {
			hasMinmax = true
			break
		}
	}
	if !hasMinmax {
		winLevels = append(winLevels, WindowLevel{
			Name:   "Min/Max",
			Center: minmaxCenter,
			Width:  minmaxWidth,
			OutMin: outMin,
			OutMax: outMax,
		})
	}

	return &Slice[T]{
		info:        info,
		buffer:      buffer,
		min:         minVal,
		max:         maxVal,
		stride:      stride,
		interpAsRGB: interpAsRGB,
		winLevels:   winLevels,
	}, nil
}

// convertPad narrows the declared padding value into the sample type,
// reporting false when it is not representable.
func convertPad[T Sample](info *SliceInfo) (T, bool) {
	if !info.HasPixelPad {
		return 0, false
	}
	v := float64(info.PixelPad)
	lo, hi := sampleRange[T]()
	if v < lo || v > hi {
		return 0, false
	}
	return T(v), true
}

// sampleRange returns the representable range of the sample type.
func sampleRange[T Sample]() (float64, float64) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case uint8:
		return 0, math.MaxUint8
	case int16:
		return math.MinInt16, math.MaxInt16
	case uint16:
		return 0, math.MaxUint16
	case int32:
		return math.MinInt32, math.MaxInt32
	default:
		return 0, math.MaxUint32
	}
}

// clampTo clamps a float to the sample type's range before conversion.
func clampTo[T Sample](val float64) T {
	lo, hi := sampleRange[T]()
	if val < lo {
		val = lo
	}
	if val > hi {
		val = hi
	}
	return T(val)
}

// ShiftI8 shifts an int8 value into uint8 space, mapping math.MinInt8 to 0.
func ShiftI8(val int8) uint8 {
	return uint8(int16(val) + 1 + math.MaxInt8)
}

// ShiftI16 shifts an int16 value into uint16 space, mapping math.MinInt16 to 0.
func ShiftI16(val int16) uint16 {
	return uint16(int32(val) + 1 + math.MaxInt16)
}

// ShiftI32 shifts an int32 value into uint32 space, mapping math.MinInt32 to 0.
func ShiftI32(val int32) uint32 {
	return uint32(int64(val) + 1 + math.MaxInt32)
}
