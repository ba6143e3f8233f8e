// Package lcikit encodes the location subelements a Wi-Fi access point
// advertises in its LCI and location civic (LCR) reports.
//
// Six subelements are supported: the geodetic LCI, Z (floor and height above
// floor), usage rules/policy, the co-located BSSID list, the location civic
// address and the map image. Each is described by a plain record and encoded
// into its framed wire form: a one-byte subelement ID, a one-byte payload
// length and the payload.
//
// # Basic Usage
//
// Encoding a single subelement:
//
//	import "github.com/arloliu/lcikit"
//
//	rec := subelem.DefaultLCIRecord()
//	rec.Latitude, rec.Longitude = 37.4220, -122.0840
//	buf, err := lcikit.Encode(rec)
//
// Assembling a report:
//
//	r, err := lcikit.BuildReport([]subelem.Record{
//	    rec,
//	    subelem.ZRecord{Floor: 2, Movement: format.MovementStationary},
//	    subelem.UsageRecord{RetransmissionAllowed: true},
//	})
//	fmt.Println(r.Dump())
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained
// control use the subelem (records and encoders), report (assembly and
// archives), tables (code tables) and position (position sources) packages
// directly.
package lcikit

import (
	"github.com/arloliu/lcikit/report"
	"github.com/arloliu/lcikit/section"
	"github.com/arloliu/lcikit/subelem"
	"github.com/arloliu/lcikit/tables"
)

// DefaultTables returns the shared, read-only code tables used by the helpers
// of this package.
func DefaultTables() *tables.Tables {
	return tables.Default()
}

// Encode encodes a single record into its framed subelement.
//
// Available options:
//   - subelem.WithLegacyCompatibility(true|false)
//
// Parameters:
//   - rec: Any subelement record (LCIRecord, ZRecord, UsageRecord, *BSSIDRecord,
//     CivicRecord, MapImageRecord)
//   - opts: Encoding options
//
// Returns:
//   - []byte: The framed subelement, header included
//   - error: The encoder's validation error, see package errs
//
// Example:
//
//	buf, err := lcikit.Encode(subelem.UsageRecord{RetransmissionAllowed: true})
//	// buf == []byte{0x06, 0x01, 0x01}
func Encode(rec subelem.Record, opts ...subelem.EncodeOption) ([]byte, error) {
	return subelem.Encode(rec, tables.Default(), opts...)
}

// NewReport creates an empty report builder backed by the default tables.
//
// Example:
//
//	b := lcikit.NewReport(subelem.WithLegacyCompatibility(true))
//	_ = b.Add(subelem.ZRecord{Floor: 1})
//	r, err := b.Build()
func NewReport(opts ...subelem.EncodeOption) *report.Builder {
	return report.NewBuilder(tables.Default(), opts...)
}

// BuildReport encodes records into a single report.
//
// All records must belong to the same report family: LCI, Z, Usage and BSSID
// list records form an LCI report; Civic and Map image records form an LCR.
//
// Returns:
//   - *report.Report: The assembled report, subelements in ascending ID order
//   - error: The first encoding or assembly error
func BuildReport(records []subelem.Record, opts ...subelem.EncodeOption) (*report.Report, error) {
	b := NewReport(opts...)
	for _, rec := range records {
		if err := b.Add(rec); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// Unpack restores a report body from an archive produced by report.Report.Pack.
func Unpack(data []byte) ([]byte, section.ArchiveHeader, error) {
	return report.Unpack(data)
}
