// Package tables holds the immutable code tables that translate human-readable
// names into the codes written by location subelement encoders.
//
// Five tables are provided:
//
//   - Language: English language name to ISO 639-1 code ("German" -> "de")
//   - Country: English short country name to ISO 3166-1 alpha-2 code ("Germany" -> "DE")
//   - CivicType: civic address element name to CA type ("City" -> 3)
//   - ImageType: map image type name to ordinal ("PNG" -> 1)
//   - MapDatum: geodetic datum name to ordinal ("WGS84" -> 1)
//
// # Usage
//
// The tables are built once per process and shared read-only:
//
//	tbl := tables.Default()
//	code, err := tbl.Language("German") // "de"
//	if errors.Is(err, errs.ErrUnknownKey) {
//	    // name not offered by the form
//	}
//
// # Thread Safety
//
// A Tables value has no exported mutators and is safe for concurrent use
// without locking.
package tables
