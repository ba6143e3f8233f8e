package report

import (
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/internal/hash"
)

// Subelement is one encoded subelement of a report.
type Subelement struct {
	Kind format.Kind
	// Data is the framed subelement, header included.
	Data []byte
}

// Report is an assembled location report: an ordered list of framed
// subelements from a single report family.
//
// A Report is immutable and safe for concurrent use.
type Report struct {
	family      format.Family
	subelements []Subelement
	data        []byte
}

func newReport(family format.Family, kinds []format.Kind, parts [][]byte) *Report {
	subs := make([]Subelement, len(kinds))
	for i, k := range kinds {
		subs[i] = Subelement{Kind: k, Data: parts[i]}
	}

	return &Report{
		family:      family,
		subelements: subs,
		data:        Join(parts...),
	}
}

// Family returns the report family of the subelements.
func (r *Report) Family() format.Family {
	return r.family
}

// Bytes returns the joined report body. The caller must not modify it.
func (r *Report) Bytes() []byte {
	return r.data
}

// Len returns the report body length in bytes.
func (r *Report) Len() int {
	return len(r.data)
}

// Subelements returns the subelements in report order. The caller must not
// modify the returned slice or its data.
func (r *Report) Subelements() []Subelement {
	return r.subelements
}

// Hex returns the report body as compact lower-case hex.
func (r *Report) Hex() string {
	return Hex(r.data)
}

// Dump returns the report body as a spaced upper-case hex dump.
func (r *Report) Dump() string {
	return Dump(r.data)
}

// Fingerprint returns the xxHash64 of the report body.
func (r *Report) Fingerprint() uint64 {
	return hash.Fingerprint(r.data)
}
