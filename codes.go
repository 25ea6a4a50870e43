// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

// Wire values for the record types and classes this package knows about.
//
// Only A records are ever decoded; NS and CNAME exist so responses carrying
// them resolve to a symbolic name instead of nil.
const (
	TypeA     uint16 = 1
	TypeNS    uint16 = 2
	TypeCNAME uint16 = 5

	ClassIN uint16 = 1
)

// RecordType describes a resource record TYPE as it appears on the wire.
type RecordType struct {
	// Name is the symbolic name, e.g. "A".
	Name string

	// Value is the 16-bit wire value.
	Value uint16

	// Meaning is the RFC 1035 description.
	Meaning string
}

// RecordClass describes a resource record CLASS.
type RecordClass struct {
	// Name is the symbolic name, e.g. "IN".
	Name string

	// Value is the 16-bit wire value.
	Value uint16

	// Meaning is the RFC 1035 description.
	Meaning string
}

var recordTypes = []RecordType{
	{Name: "A", Value: TypeA, Meaning: "a host address"},
	{Name: "NS", Value: TypeNS, Meaning: "an authoritative name server"},
	{Name: "CNAME", Value: TypeCNAME, Meaning: "the canonical name for an alias"},
}

var recordClasses = []RecordClass{
	{Name: "IN", Value: ClassIN, Meaning: "the Internet"},
}

// RecordTypeByValue returns the [RecordType] for a wire value, or nil
// when the value is not in the table. Unknown codes are not an error.
func RecordTypeByValue(value uint16) *RecordType {
	for idx := range recordTypes {
		if recordTypes[idx].Value == value {
			return &recordTypes[idx]
		}
	}
	return nil
}

// RecordClassByValue returns the [RecordClass] for a wire value, or nil
// when the value is not in the table.
func RecordClassByValue(value uint16) *RecordClass {
	for idx := range recordClasses {
		if recordClasses[idx].Value == value {
			return &recordClasses[idx]
		}
	}
	return nil
}
