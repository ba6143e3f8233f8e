// Package report assembles encoded subelements into a location report.
//
// The low-level helpers work on plain byte slices:
//
//	body := report.Join(lci, usage, bssids)
//	fmt.Println(report.Hex(body))  // 0010...060101070100
//	fmt.Println(report.Dump(body)) // 00 10 ... 06 01 01 07 01 00
//
// Builder adds the rules a report must follow: each subelement kind at most
// once, all subelements from the same family (LCI report or location civic
// report), and subelements in ascending ID order:
//
//	b := report.NewBuilder(nil)
//	if err := b.Add(subelem.DefaultLCIRecord()); err != nil {
//	    return err
//	}
//	if err := b.Add(subelem.UsageRecord{RetransmissionAllowed: true}); err != nil {
//	    return err
//	}
//	r, err := b.Build()
//
// # Archives
//
// Report.Pack wraps the body in a small envelope carrying the compression
// codec, the raw length and an xxHash64 checksum. Unpack verifies both before
// returning the body.
package report
