// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns_test

import (
	"fmt"

	"github.com/bassosimone/runtimex"
	"github.com/mfernandes/stubdns"
)

func ExampleEncodeName() {
	fmt.Printf("%X\n", stubdns.EncodeName("google.com"))
	fmt.Printf("%X\n", stubdns.EncodeName("marcelofernandes.dev"))

	// Output:
	// 06676F6F676C6503636F6D00
	// 106D617263656C6F6665726E616E6465730364657600
}

func ExampleBuildHeader() {
	fmt.Printf("%v\n", stubdns.BuildHeader(1, false))
	fmt.Printf("%v\n", stubdns.BuildHeader(1, true))

	// Output:
	// [0 1 0 0 0 1 0 0 0 0 0 0]
	// [0 1 1 0 0 1 0 0 0 0 0 0]
}

func ExampleParseResponse() {
	// Craft the response a recursive resolver would send back for an
	// "example.com" A query with transaction ID 37: the original header
	// and question, then one answer whose name is a compression pointer
	// to the question name at offset 12.
	question := stubdns.BuildQuestion("example.com")
	raw := append(stubdns.BuildHeader(37, true), question...)
	raw = append(raw,
		0xC0, 0x0C, // pointer to offset 12
		0x00, 0x01, // TYPE = A
		0x00, 0x01, // CLASS = IN
		0x00, 0x00, 0x01, 0x2C, // TTL = 300
		0x00, 0x04, // RDLENGTH
		93, 184, 216, 34, // RDATA
	)

	record := runtimex.PanicOnError1(stubdns.ParseResponse(raw, question, 37))
	fmt.Printf("%s %s %s %d %s\n",
		record.Label, record.Type.Name, record.Class.Name, record.TTL, record.IP)

	// Output:
	// .example.com A IN 300 93.184.216.34
}
