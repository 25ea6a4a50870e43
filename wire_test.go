// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutUint16RoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	for v := 0; v < 1<<16; v++ {
		require.NoError(t, PutUint16(buf, 0, v))
		require.Equal(t, uint16(v), ReadUint16(buf))
	}
}

func TestPutUint16Range(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected bool
	}{
		{"NegativeOne", -1, false},
		{"Zero", 0, true},
		{"Max", 65535, true},
		{"JustPastMax", 65536, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 2)
			err := PutUint16(buf, 0, tt.value)
			if tt.expected {
				require.NoError(t, err)
				return
			}
			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			require.Equal(t, int64(tt.value), rangeErr.Value)
			require.Equal(t, 16, rangeErr.Bits)
		})
	}
}

func TestPutUint32Range(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected bool
	}{
		{"NegativeOne", -1, false},
		{"Zero", 0, true},
		{"Max", 1<<32 - 1, true},
		{"JustPastMax", 1 << 32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4)
			err := PutUint32(buf, 0, tt.value)
			if tt.expected {
				require.NoError(t, err)
				require.Equal(t, uint32(tt.value), ReadUint32(buf))
				return
			}
			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			require.Equal(t, tt.value, rangeErr.Value)
			require.Equal(t, 32, rangeErr.Bits)
		})
	}
}

func TestPutUint16Offset(t *testing.T) {
	buf := make([]byte, 6)
	require.NoError(t, PutUint16(buf, 2, 0x0102))
	require.Equal(t, []byte{0, 0, 1, 2, 0, 0}, buf)
}

func TestReadUint32(t *testing.T) {
	require.Equal(t, uint32(300), ReadUint32([]byte{0, 0, 1, 44}))
	require.Equal(t, uint32(0xFFFFFFFF), ReadUint32([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
}

func TestRangeErrorMessage(t *testing.T) {
	err := &RangeError{Value: 65536, Bits: 16}
	require.Equal(t, "value 65536 does not fit in 16 unsigned bits", err.Error())
}
