package element

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/neandrake/medicom-go/dicom/charset"
	"github.com/neandrake/medicom-go/dicom/value"
	"github.com/neandrake/medicom-go/dicom/vr"
)

// EncodeValue encodes a native value into the byte representation for the
// given VR and endian, mirroring ParseValue byte-for-byte. The result is
// padded to even length with the VR's padding byte: space for character
// strings, a single NUL for UI, NUL for binary VRs.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
func EncodeValue(val value.Value, v vr.VR, bigEndian bool, cs *charset.Charset) ([]byte, error) {
	if cs == nil || !v.UsesReplacementCharset() {
		cs = charset.Default
	}
	order := byteOrderFor(bigEndian)

	var (
		data []byte
		err  error
	)
	switch tv := val.(type) {
	case value.Attributes:
		data = make([]byte, 0, len(tv)*4)
		for _, t := range tv {
			data = order.AppendUint16(data, t.Group)
			data = order.AppendUint16(data, t.Element)
		}

	case value.UID:
		data = []byte(string(tv))

	case value.Strings:
		data, err = cs.Encode(strings.Join(tv, string(vr.Separator)))

	case value.Doubles:
		data, err = encodeDoubles(tv, v, order)

	case value.Shorts:
		if v.IsCharacterString() {
			data = encodeNumericText(tv)
		} else {
			data = make([]byte, 0, len(tv)*2)
			for _, s := range tv {
				data = order.AppendUint16(data, uint16(s))
			}
		}

	case value.Integers:
		if v.IsCharacterString() {
			data = encodeNumericText(tv)
		} else {
			data = make([]byte, 0, len(tv)*4)
			for _, i := range tv {
				data = order.AppendUint32(data, uint32(i))
			}
		}

	case value.UnsignedIntegers:
		if v.IsCharacterString() {
			data = encodeNumericText(tv)
		} else if v == vr.UnsignedShort || v == vr.OtherWord {
			data = make([]byte, 0, len(tv)*2)
			for _, u := range tv {
				data = order.AppendUint16(data, uint16(u))
			}
		} else {
			data = make([]byte, 0, len(tv)*4)
			for _, u := range tv {
				data = order.AppendUint32(data, u)
			}
		}

	case value.Longs:
		data = make([]byte, 0, len(tv)*8)
		for _, l := range tv {
			data = order.AppendUint64(data, uint64(l))
		}

	case value.UnsignedLongs:
		data = make([]byte, 0, len(tv)*8)
		for _, l := range tv {
			data = order.AppendUint64(data, l)
		}

	case value.Bytes:
		data = append([]byte(nil), tv...)

	default:
		return nil, fmt.Errorf("%w: unsupported value type %T for VR %s", ErrDecodeValue, val, v)
	}
	if err != nil {
		return nil, err
	}

	return padToEven(data, v), nil
}

// encodeDoubles writes doubles per the VR's grouping: 8 bytes for FD/OD,
// 4 bytes for FL/OF, text for DS.
func encodeDoubles(vals []float64, v vr.VR, order binary.AppendByteOrder) ([]byte, error) {
	if v.IsCharacterString() {
		parts := make([]string, len(vals))
		for i, f := range vals {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return []byte(strings.Join(parts, string(vr.Separator))), nil
	}

	if v == vr.FloatingPointDouble || v == vr.OtherDouble {
		data := make([]byte, 0, len(vals)*8)
		for _, f := range vals {
			data = order.AppendUint64(data, math.Float64bits(f))
		}
		return data, nil
	}

	data := make([]byte, 0, len(vals)*4)
	for _, f := range vals {
		data = order.AppendUint32(data, math.Float32bits(float32(f)))
	}
	return data, nil
}

// encodeNumericText renders integer values as backslash-separated text,
// for IS and other numeric values carried by character-string VRs.
func encodeNumericText[T int16 | int32 | uint32](vals []T) []byte {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return []byte(strings.Join(parts, string(vr.Separator)))
}

// padToEven appends the VR's padding byte when the encoded length is odd.
func padToEven(data []byte, v vr.VR) []byte {
	if len(data)%2 != 0 {
		data = append(data, v.PaddingByte())
	}
	return data
}

func byteOrderFor(bigEndian bool) binary.AppendByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
