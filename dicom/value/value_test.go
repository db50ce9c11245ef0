package value_test

import (
	"testing"

	"github.com/neandrake/medicom-go/dicom/tag"
	"github.com/neandrake/medicom-go/dicom/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		val      value.Value
		expected string
	}{
		{"strings", value.Strings{"Doe^John", "Doe^Jane"}, "Doe^John\\Doe^Jane"},
		{"uid", value.UID("1.2.840.10008.1.2.1"), "1.2.840.10008.1.2.1"},
		{"doubles", value.Doubles{1.5, -2}, "1.5\\-2"},
		{"shorts", value.Shorts{-5, 12}, "-5\\12"},
		{"integers", value.Integers{1000000, -1}, "1000000\\-1"},
		{"unsigned", value.UnsignedIntegers{0, 65535}, "0\\65535"},
		{"attributes", value.Attributes{tag.New(0x0010, 0x0020)}, "(0010,0020)"},
		{"empty bytes", value.Bytes{}, "[]"},
		{"bytes", value.Bytes{0x01, 0xAB}, "[01 AB]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.val.String())
		})
	}
}

func TestBytes_String_Truncates(t *testing.T) {
	data := make(value.Bytes, 32)
	rendered := data.String()
	assert.Contains(t, rendered, "... (32 bytes)")
}

func TestEquals(t *testing.T) {
	assert.True(t, value.Strings{"A"}.Equals(value.Strings{"A"}))
	assert.False(t, value.Strings{"A"}.Equals(value.Strings{"B"}))
	assert.False(t, value.Strings{"A"}.Equals(value.UID("A")))

	assert.True(t, value.Doubles{1, 2}.Equals(value.Doubles{1, 2}))
	assert.False(t, value.Doubles{1}.Equals(value.Doubles{1, 2}))

	assert.True(t, value.Bytes{1, 2}.Equals(value.Bytes{1, 2}))
	assert.False(t, value.Bytes{1, 2}.Equals(value.Bytes{2, 1}))

	assert.True(t, value.Attributes{tag.Item}.Equals(value.Attributes{tag.Item}))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, value.Strings{}.IsEmpty())
	assert.True(t, value.UID("").IsEmpty())
	assert.True(t, value.Bytes(nil).IsEmpty())
	assert.False(t, value.Shorts{1}.IsEmpty())
}

func TestAsUint16(t *testing.T) {
	tests := []struct {
		name     string
		val      value.Value
		expected uint16
		ok       bool
	}{
		{"unsigned", value.UnsignedIntegers{16}, 16, true},
		{"shorts", value.Shorts{8}, 8, true},
		{"integers", value.Integers{512}, 512, true},
		{"empty", value.UnsignedIntegers{}, 0, false},
		{"strings", value.Strings{"16"}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := value.AsUint16(tc.val)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestAsDouble(t *testing.T) {
	got, ok := value.AsDouble(value.Doubles{1.25, 5})
	require.True(t, ok)
	assert.Equal(t, 1.25, got)

	got, ok = value.AsDouble(value.UnsignedIntegers{7})
	require.True(t, ok)
	assert.Equal(t, 7.0, got)

	_, ok = value.AsDouble(value.Strings{"1.25"})
	assert.False(t, ok)
}

func TestAsString(t *testing.T) {
	got, ok := value.AsString(value.Strings{"MONOCHROME2"})
	require.True(t, ok)
	assert.Equal(t, "MONOCHROME2", got)

	got, ok = value.AsString(value.UID("1.2.3"))
	require.True(t, ok)
	assert.Equal(t, "1.2.3", got)

	_, ok = value.AsString(value.Strings{})
	assert.False(t, ok)
}
