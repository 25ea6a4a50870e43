// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

import (
	"errors"
	"fmt"
	"net"
)

// Errors emitted by [ParseResponse].
var (
	// ErrTransactionMismatch means the response carries a transaction ID
	// different from the query's. The caller should keep waiting for
	// another datagram.
	ErrTransactionMismatch = errors.New("response transaction ID does not match query")

	// ErrResponseTooShort means the datagram is too small to contain a
	// header and a pointer-compressed answer record.
	ErrResponseTooShort = errors.New("response too short")
)

// UnsupportedEncodingError means the answer record's name field is not
// compression-pointer encoded. Raw label sequences in answers are not
// supported.
type UnsupportedEncodingError struct {
	// Raw is the received datagram, kept for diagnosis.
	Raw []byte
}

// Error implements error.
func (e *UnsupportedEncodingError) Error() string {
	return "answer name is not compression-pointer encoded"
}

// answerSize is the wire size of the single answer record we decode: a
// 2-byte name pointer, TYPE, CLASS, TTL, RDLENGTH, and 4 bytes of RDATA.
const answerSize = 2 + 2 + 2 + 4 + 2 + 4

// AnswerRecord is the decoded first answer of a correlated response.
type AnswerRecord struct {
	// Label is the answer name as rendered by [DecodeLabel].
	Label string

	// Type is the record type, or nil when the wire value is unknown.
	Type *RecordType

	// Class is the record class, or nil when the wire value is unknown.
	Class *RecordClass

	// TTL is the time to live in seconds.
	TTL uint32

	// IP is the dotted-decimal IPv4 address from the RDATA.
	IP string
}

// ParseResponse decodes the first answer record of the raw datagram.
//
// The question argument is the encoded question section of the original
// query, used to locate the answer section, and wantID is the query's
// transaction ID. The answer name must be pointer-compressed; RDLENGTH is
// assumed to be 4 and is not read.
func ParseResponse(raw, question []byte, wantID uint16) (*AnswerRecord, error) {
	if len(raw) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrResponseTooShort, len(raw))
	}
	if ReadUint16(raw) != wantID {
		return nil, ErrTransactionMismatch
	}

	ansOff := HeaderSize + len(question)
	if len(raw) < ansOff+answerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrResponseTooShort, len(raw))
	}

	if !IsPointer(raw[ansOff]) {
		return nil, &UnsupportedEncodingError{Raw: raw}
	}
	nameOff := int(JoinPointerBytes(raw[ansOff], raw[ansOff+1]) & PointerOffsetMask)
	label := DecodeLabel(raw, nameOff)

	fields := raw[ansOff+2:]
	typeValue := ReadUint16(fields)
	classValue := ReadUint16(fields[2:])
	ttl := ReadUint32(fields[4:])
	// fields[8:10] is RDLENGTH, assumed 4.
	ip := net.IP(fields[10:14]).String()

	return &AnswerRecord{
		Label: label,
		Type:  RecordTypeByValue(typeValue),
		Class: RecordClassByValue(classValue),
		TTL:   ttl,
		IP:    ip,
	}, nil
}
