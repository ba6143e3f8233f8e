package report

import (
	"fmt"
	"slices"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/internal/collision"
	"github.com/arloliu/lcikit/subelem"
	"github.com/arloliu/lcikit/tables"
)

// Builder collects the subelements of one report.
//
// Each record is encoded when it is added. A Builder is not safe for concurrent use.
type Builder struct {
	tbl     *tables.Tables
	opts    []subelem.EncodeOption
	tracker *collision.Tracker
	encoded map[format.Kind][]byte
}

// NewBuilder creates a new report builder.
//
// Parameters:
//   - tbl: Code tables for name resolution; nil selects tables.Default()
//   - opts: Encoding options applied to every record (e.g. subelem.WithLegacyCompatibility)
//
// Returns:
//   - *Builder: An empty builder
func NewBuilder(tbl *tables.Tables, opts ...subelem.EncodeOption) *Builder {
	if tbl == nil {
		tbl = tables.Default()
	}

	return &Builder{
		tbl:     tbl,
		opts:    opts,
		tracker: collision.NewTracker(),
		encoded: make(map[format.Kind][]byte),
	}
}

// Add encodes rec and adds it to the report.
//
// A failed Add leaves the builder unchanged.
//
// Returns:
//   - error: any encoding error from subelem.Encode, ErrDuplicateSubelement if a
//     record of the same kind was already added, or ErrMixedReportFamily if rec
//     belongs to a different report family than the records added before
func (b *Builder) Add(rec subelem.Record) error {
	encoded, err := subelem.Encode(rec, b.tbl, b.opts...)
	if err != nil {
		return err
	}

	if err := b.tracker.Track(rec.Kind()); err != nil {
		return err
	}
	b.encoded[rec.Kind()] = encoded

	return nil
}

// Len returns the number of subelements added so far.
func (b *Builder) Len() int {
	return b.tracker.Count()
}

// Build assembles the report. Subelements are ordered by ascending subelement
// ID, independent of the order they were added in.
//
// Returns:
//   - *Report: The assembled report
//   - error: ErrEmptyReport if nothing was added
func (b *Builder) Build() (*Report, error) {
	if b.tracker.Count() == 0 {
		return nil, fmt.Errorf("%w: report builder is empty", errs.ErrEmptyReport)
	}

	kinds := slices.Clone(b.tracker.Kinds())
	slices.SortFunc(kinds, func(x, y format.Kind) int {
		return int(x.ID()) - int(y.ID())
	})

	parts := make([][]byte, len(kinds))
	for i, k := range kinds {
		parts[i] = b.encoded[k]
	}

	return newReport(b.tracker.Family(), kinds, parts), nil
}

// Reset clears the builder so it can assemble another report.
func (b *Builder) Reset() {
	b.tracker.Reset()
	clear(b.encoded)
}
