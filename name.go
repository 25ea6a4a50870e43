// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

import (
	"errors"
	"strings"
)

// PointerOffsetMask extracts the 14-bit target offset from the value
// returned by [JoinPointerBytes].
const PointerOffsetMask = 0x3FFF

// EncodeName converts a dot-separated domain name into a sequence of
// length-prefixed labels terminated by a single zero byte.
//
// Label lengths are not validated: a label longer than 255 bytes silently
// truncates its length byte, and nothing caps the overall message size.
func EncodeName(name string) []byte {
	var buf []byte
	for _, label := range strings.Split(name, ".") {
		buf = append(buf, byte(len(label)))
		buf = append(buf, label...)
	}
	return append(buf, 0)
}

// DecodeLabel renders the label sequence starting at off as a string,
// scanning until the zero terminator: alphanumeric bytes map to their
// character and every other byte maps to a literal '.'.
//
// Known limitation: length bytes are not walked, they render as separators
// like any other non-alphanumeric byte, so a name decoded at a label
// boundary carries a leading dot and hyphens inside labels also become
// dots. Use [DecodeNameStrict] for a faithful RFC 1035 walk.
func DecodeLabel(msg []byte, off int) string {
	var sb strings.Builder
	for i := off; i < len(msg) && msg[i] != 0; i++ {
		b := msg[i]
		if isAlnum(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('.')
	}
	return sb.String()
}

func isAlnum(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	default:
		return false
	}
}

// ErrBadName indicates a label sequence that runs past the end of the
// message or nests compression pointers.
var ErrBadName = errors.New("malformed name in DNS message")

// DecodeNameStrict walks the length-prefixed labels starting at off and
// returns the dot-separated name, following at most one level of
// compression-pointer indirection.
func DecodeNameStrict(msg []byte, off int) (string, error) {
	var labels []string
	jumped := false
	for {
		if off >= len(msg) {
			return "", ErrBadName
		}
		b := msg[off]
		switch {
		case b == 0:
			return strings.Join(labels, "."), nil
		case IsPointer(b):
			if jumped {
				return "", ErrBadName
			}
			if off+1 >= len(msg) {
				return "", ErrBadName
			}
			off = int(JoinPointerBytes(msg[off], msg[off+1]) & PointerOffsetMask)
			jumped = true
		default:
			end := off + 1 + int(b)
			if end > len(msg) {
				return "", ErrBadName
			}
			labels = append(labels, string(msg[off+1:end]))
			off = end
		}
	}
}

// IsPointer reports whether b begins a message compression pointer,
// that is, whether both of its high-order bits are set.
func IsPointer(b byte) bool {
	return b&0xC0 == 0xC0
}

// JoinPointerBytes combines the two bytes of a compression pointer in
// big-endian order. Mask the result with [PointerOffsetMask] to recover
// the target offset.
func JoinPointerBytes(b0, b1 byte) uint16 {
	return uint16(b0)<<8 | uint16(b1)
}
