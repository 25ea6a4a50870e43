// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

import (
	"encoding/binary"
	"fmt"
	"math"
)

// RangeError indicates that a value to be written does not fit
// the target bit width.
type RangeError struct {
	// Value is the offending value.
	Value int64

	// Bits is the target width.
	Bits int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("value %d does not fit in %d unsigned bits", e.Value, e.Bits)
}

// PutUint16 writes v big-endian into buf[off] and buf[off+1]. It fails
// with a [*RangeError] when v is outside [0, 65536).
func PutUint16(buf []byte, off int, v int) error {
	if v < 0 || v > math.MaxUint16 {
		return &RangeError{Value: int64(v), Bits: 16}
	}
	putU16(buf, off, uint16(v))
	return nil
}

// PutUint32 writes v big-endian into buf[off] through buf[off+3]. It fails
// with a [*RangeError] when v is outside [0, 1<<32).
func PutUint32(buf []byte, off int, v int64) error {
	if v < 0 || v > math.MaxUint32 {
		return &RangeError{Value: v, Bits: 32}
	}
	value := uint32(v)
	buf[off] = byte(value >> 24)
	buf[off+1] = byte(value >> 16)
	buf[off+2] = byte(value >> 8)
	buf[off+3] = byte(value)
	return nil
}

// putU16 writes a value already known to fit.
func putU16(buf []byte, off int, v uint16) {
	buf[off] = byte(v >> 8)
	buf[off+1] = byte(v)
}

// ReadUint16 interprets the first two bytes of b as a big-endian unsigned
// integer. The caller guarantees len(b) >= 2.
func ReadUint16(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

// ReadUint32 interprets the first four bytes of b as a big-endian unsigned
// integer. The caller guarantees len(b) >= 4.
func ReadUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}
