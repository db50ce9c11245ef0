package element

import (
	"math"
	"strconv"
	"strings"

	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/value"
	"github.com/neandrake/medicom-go/dicom/vr"
)

// trimPadding returns the value field without padding bytes, per the rules of
// whether the VR indicates leading/trailing padding is significant.
//
// For VRs padded with space all trailing spaces are stripped; character
// strings also sometimes show up zero-padded so trailing NULs are stripped
// too. For VRs padded with NUL (only UI among character strings) a single
// trailing NUL is stripped iff the length is even. Leading spaces are
// stripped where front padding is permitted.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func trimPadding(data []byte, v vr.VR) []byte {
	if len(data) == 0 {
		return data
	}

	lindex := 0
	rindex := len(data) - 1

	if v.CanPadEnd() {
		switch v.PaddingByte() {
		case vr.SpacePadding:
			for rindex > lindex {
				if data[rindex] == vr.SpacePadding || data[rindex] == vr.NullPadding {
					rindex--
				} else {
					break
				}
			}
		case vr.NullPadding:
			// null byte padding is only singular and only to achieve even length
			if len(data)%2 == 0 && data[rindex] == vr.NullPadding {
				rindex--
			}
		}
	}

	if v.CanPadFront() && v.PaddingByte() == vr.SpacePadding {
		for lindex < rindex {
			if data[lindex] == vr.SpacePadding {
				lindex++
			} else {
				break
			}
		}
	}

	// A character string trimmed down to a lone null byte decodes as empty.
	if lindex == rindex && v.IsCharacterString() && data[lindex] == vr.NullPadding {
		return data[lindex:rindex]
	}
	return data[lindex : rindex+1]
}

// DecodeText decodes the element's value field as a single string, stripping
// padding, using the element's character set.
func (e *DataElement) DecodeText() (string, error) {
	data := trimPadding(e.data, e.vr)
	s, err := e.cs.Decode(data)
	if err != nil {
		return "", decodeError(err.Error(), e, err)
	}
	return s, nil
}

// DecodeStrings decodes the element's value field as a list of strings. The
// decoded text is split on backslash unless the VR permits backslash within
// values, in which case a single entry is returned.
func (e *DataElement) DecodeStrings() ([]string, error) {
	s, err := e.DecodeText()
	if err != nil {
		return nil, err
	}
	if e.vr.AllowsBackslash() {
		return []string{s}, nil
	}
	return strings.Split(s, string(vr.Separator)), nil
}

// DecodeDoubles parses the element's value as float64s: character-string VRs
// parse their text entries, binary VRs decode 8- or 4-byte groupings per the
// element's endian. A single-byte value field is promoted to one double.
func (e *DataElement) DecodeDoubles() ([]float64, error) {
	if e.vr.IsCharacterString() {
		return parseNumericStrings(e, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	}

	n := len(e.data)
	switch {
	case n == 0:
		return []float64{}, nil
	case n == 1:
		return []float64{float64(e.data[0])}, nil
	case (e.vr == vr.FloatingPointDouble || e.vr == vr.OtherDouble) && n%8 == 0:
		order := e.byteOrder()
		result := make([]float64, 0, n/8)
		for i := 0; i+8 <= n; i += 8 {
			result = append(result, math.Float64frombits(order.Uint64(e.data[i:i+8])))
		}
		return result, nil
	case n%4 == 0:
		order := e.byteOrder()
		result := make([]float64, 0, n/4)
		for i := 0; i+4 <= n; i += 4 {
			result = append(result, float64(math.Float32frombits(order.Uint32(e.data[i:i+4]))))
		}
		return result, nil
	default:
		return nil, decodeError("byte count not a multiple of value size", e, nil)
	}
}

// DecodeShorts parses the element's value as signed 16-bit integers. A
// single-byte value field is promoted to one short.
func (e *DataElement) DecodeShorts() ([]int16, error) {
	if e.vr.IsCharacterString() {
		return parseNumericStrings(e, func(s string) (int16, error) {
			v, err := strconv.ParseInt(s, 10, 16)
			return int16(v), err
		})
	}

	n := len(e.data)
	switch {
	case n == 0:
		return []int16{}, nil
	case n == 1:
		return []int16{int16(e.data[0])}, nil
	case n%2 == 0:
		order := e.byteOrder()
		result := make([]int16, 0, n/2)
		for i := 0; i+2 <= n; i += 2 {
			result = append(result, int16(order.Uint16(e.data[i:i+2])))
		}
		return result, nil
	default:
		return nil, decodeError("byte count not a multiple of value size", e, nil)
	}
}

// DecodeIntegers parses the element's value as signed 32-bit integers,
// falling back to 2-byte groupings when the byte count only divides by two.
// A single-byte value field is promoted to one integer.
func (e *DataElement) DecodeIntegers() ([]int32, error) {
	if e.vr.IsCharacterString() {
		return parseNumericStrings(e, func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		})
	}

	n := len(e.data)
	switch {
	case n == 0:
		return []int32{}, nil
	case n == 1:
		return []int32{int32(e.data[0])}, nil
	case n%4 == 0:
		order := e.byteOrder()
		result := make([]int32, 0, n/4)
		for i := 0; i+4 <= n; i += 4 {
			result = append(result, int32(order.Uint32(e.data[i:i+4])))
		}
		return result, nil
	case n%2 == 0:
		shorts, err := e.DecodeShorts()
		if err != nil {
			return nil, err
		}
		result := make([]int32, len(shorts))
		for i, s := range shorts {
			result[i] = int32(s)
		}
		return result, nil
	default:
		return nil, decodeError("byte count not a multiple of value size", e, nil)
	}
}

// DecodeUnsignedIntegers parses the element's value as unsigned integers
// widened to 32 bits, choosing the grouping by VR: UL and OL decode 4-byte
// values, US and OW decode 2-byte values. A single-byte value field is
// promoted to one entry.
func (e *DataElement) DecodeUnsignedIntegers() ([]uint32, error) {
	if e.vr.IsCharacterString() {
		return parseNumericStrings(e, func(s string) (uint32, error) {
			v, err := strconv.ParseUint(s, 10, 32)
			return uint32(v), err
		})
	}

	n := len(e.data)
	order := e.byteOrder()
	switch {
	case n == 0:
		return []uint32{}, nil
	case n == 1:
		return []uint32{uint32(e.data[0])}, nil
	case (e.vr == vr.UnsignedLong || e.vr == vr.OtherLong) && n%4 == 0:
		result := make([]uint32, 0, n/4)
		for i := 0; i+4 <= n; i += 4 {
			result = append(result, order.Uint32(e.data[i:i+4]))
		}
		return result, nil
	case n%2 == 0:
		result := make([]uint32, 0, n/2)
		for i := 0; i+2 <= n; i += 2 {
			result = append(result, uint32(order.Uint16(e.data[i:i+2])))
		}
		return result, nil
	default:
		return nil, decodeError("byte count not a multiple of value size", e, nil)
	}
}

// DecodeAttributes parses the element's value as attribute tags, one per four
// bytes: two 16-bit reads (group, element) combined per the element's endian.
func (e *DataElement) DecodeAttributes() ([]tag.Tag, error) {
	n := len(e.data)
	if n < 4 || n%4 != 0 {
		return nil, decodeError("value is not a multiple of 4 bytes", e, nil)
	}

	order := e.byteOrder()
	result := make([]tag.Tag, 0, n/4)
	for i := 0; i+4 <= n; i += 4 {
		group := order.Uint16(e.data[i : i+2])
		elem := order.Uint16(e.data[i+2 : i+4])
		result = append(result, tag.New(group, elem))
	}
	return result, nil
}

// ParseValue parses this element's value field into its native value type,
// dispatching on VR.
//
// DS attempts numeric parsing and falls back to the raw strings when any
// entry fails; IS does the same with the doubles cast to 32-bit integers.
// VRs with no native decoding return the raw bytes.
func (e *DataElement) ParseValue() (value.Value, error) {
	switch {
	case e.vr == vr.AttributeTag:
		attrs, err := e.DecodeAttributes()
		if err != nil {
			return nil, err
		}
		return value.Attributes(attrs), nil

	case e.vr == vr.UniqueIdentifier:
		s, err := e.DecodeText()
		if err != nil {
			return nil, err
		}
		return value.UID(strings.TrimRight(s, "\x00")), nil

	case e.vr == vr.DecimalString:
		doubles, err := e.DecodeDoubles()
		if err == nil {
			return value.Doubles(doubles), nil
		}
		strs, serr := e.DecodeStrings()
		if serr != nil {
			return nil, serr
		}
		return value.Strings(strs), nil

	case e.vr == vr.IntegerString:
		doubles, err := e.DecodeDoubles()
		if err == nil {
			ints := make([]int32, len(doubles))
			for i, d := range doubles {
				ints[i] = int32(d)
			}
			return value.Integers(ints), nil
		}
		strs, serr := e.DecodeStrings()
		if serr != nil {
			return nil, serr
		}
		return value.Strings(strs), nil

	case e.vr.IsCharacterString():
		strs, err := e.DecodeStrings()
		if err != nil {
			return nil, err
		}
		return value.Strings(strs), nil

	case e.vr == vr.FloatingPointDouble || e.vr == vr.OtherDouble ||
		e.vr == vr.FloatingPointSingle || e.vr == vr.OtherFloat:
		doubles, err := e.DecodeDoubles()
		if err != nil {
			return nil, err
		}
		return value.Doubles(doubles), nil

	case e.vr == vr.SignedShort:
		shorts, err := e.DecodeShorts()
		if err != nil {
			return nil, err
		}
		return value.Shorts(shorts), nil

	case e.vr == vr.SignedLong:
		ints, err := e.DecodeIntegers()
		if err != nil {
			return nil, err
		}
		return value.Integers(ints), nil

	case e.vr == vr.UnsignedLong || e.vr == vr.OtherLong ||
		e.vr == vr.OtherWord || e.vr == vr.UnsignedShort:
		uints, err := e.DecodeUnsignedIntegers()
		if err != nil {
			return nil, err
		}
		return value.UnsignedIntegers(uints), nil

	case e.vr == vr.SignedVeryLong:
		longs, err := decodeWide(e, func(u uint64) int64 { return int64(u) })
		if err != nil {
			return nil, err
		}
		return value.Longs(longs), nil

	case e.vr == vr.UnsignedVeryLong || e.vr == vr.OtherVeryLong:
		ulongs, err := decodeWide(e, func(u uint64) uint64 { return u })
		if err != nil {
			return nil, err
		}
		return value.UnsignedLongs(ulongs), nil

	default:
		return value.Bytes(append([]byte(nil), e.data...)), nil
	}
}

// decodeWide decodes 8-byte groupings per the element's endian.
func decodeWide[T int64 | uint64](e *DataElement, conv func(uint64) T) ([]T, error) {
	n := len(e.data)
	if n == 0 {
		return []T{}, nil
	}
	if n%8 != 0 {
		return nil, decodeError("byte count not a multiple of value size", e, nil)
	}
	order := e.byteOrder()
	result := make([]T, 0, n/8)
	for i := 0; i+8 <= n; i += 8 {
		result = append(result, conv(order.Uint64(e.data[i:i+8])))
	}
	return result, nil
}

// parseNumericStrings decodes the element as strings and parses each
// non-empty entry with the given parser.
func parseNumericStrings[T any](e *DataElement, parse func(string) (T, error)) ([]T, error) {
	strs, err := e.DecodeStrings()
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, len(strs))
	for _, s := range strs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, perr := parse(s)
		if perr != nil {
			return nil, decodeError(perr.Error(), e, nil)
		}
		result = append(result, v)
	}
	return result, nil
}
