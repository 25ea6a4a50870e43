// SPDX-License-Identifier: GPL-3.0-or-later

// Package stubdns is a minimal stub DNS resolver.
//
// [NewQuery] and [*Query] allow constructing and packing a single-question
// A/IN query message. [ParseResponse] decodes the first pointer-compressed
// answer record of a reply into an [*AnswerRecord]. [*Resolver] ties the two
// together over UDP, discarding datagrams whose transaction ID does not
// match the outstanding query.
//
// This package implements the RFC 1035 wire subset it needs by hand rather
// than depending on [github.com/miekg/dns] for the codec. The miekg types
// remain the reference implementation: the test suite cross-checks the
// hand-rolled codec against them.
package stubdns
