// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

import (
	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// HeaderSize is the fixed size of a DNS message header.
const HeaderSize = 12

// flagRecursionDesired is the RD bit in the header flags word.
const flagRecursionDesired = 0x0100

// NewID returns a random 16-bit transaction ID.
func NewID() uint16 {
	return dns.Id()
}

// BuildHeader builds the 12-byte header of a single-question query: the
// given transaction ID, the RD bit if recursion is desired, QDCOUNT set to
// one and the remaining counts zero.
func BuildHeader(id uint16, recursionDesired bool) []byte {
	hdr := make([]byte, HeaderSize)
	putU16(hdr, 0, id)
	if recursionDesired {
		putU16(hdr, 2, flagRecursionDesired)
	}
	putU16(hdr, 4, 1) // QDCOUNT
	return hdr
}

// BuildQuestion encodes the question section for an A/IN query on name.
func BuildQuestion(name string) []byte {
	q := EncodeName(name)
	tail := make([]byte, 4)
	putU16(tail, 0, TypeA)
	putU16(tail, 2, ClassIN)
	return append(q, tail...)
}

// Query is a fully assembled single-question DNS query.
//
// Construct using [NewQuery].
type Query struct {
	// ID is the transaction ID embedded in Header.
	ID uint16

	// Header is the 12-byte message header.
	Header []byte

	// Question is the encoded question section.
	Question []byte

	// Message is Header followed by Question, ready to transmit.
	Message []byte
}

// NewQuery builds an A/IN query for name with a fresh random transaction
// ID and recursion desired. The name is IDNA encoded before going on the
// wire, so invalid names fail here.
func NewQuery(name string) (*Query, error) {
	punyName, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, err
	}

	id := NewID()
	header := BuildHeader(id, true)
	question := BuildQuestion(punyName)

	message := make([]byte, 0, len(header)+len(question))
	message = append(message, header...)
	message = append(message, question...)

	return &Query{
		ID:       id,
		Header:   header,
		Question: question,
		Message:  message,
	}, nil
}
