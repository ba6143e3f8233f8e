package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/subelem"
)

func TestBuilder_LCIReport(t *testing.T) {
	b := NewBuilder(nil)

	// Added out of ID order on purpose.
	require.NoError(t, b.Add(&subelem.BSSIDRecord{}))
	require.NoError(t, b.Add(subelem.UsageRecord{RetransmissionAllowed: true}))
	require.NoError(t, b.Add(subelem.DefaultLCIRecord()))
	require.Equal(t, 3, b.Len())

	r, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, format.FamilyLCI, r.Family())

	lci, err := subelem.EncodeLCI(subelem.DefaultLCIRecord())
	require.NoError(t, err)
	want := Join(lci, []byte{0x06, 0x01, 0x01}, []byte{0x07, 0x01, 0x00})
	require.Equal(t, want, r.Bytes())
	require.Equal(t, len(want), r.Len())

	subs := r.Subelements()
	require.Len(t, subs, 3)
	require.Equal(t, format.KindLCI, subs[0].Kind)
	require.Equal(t, format.KindUsage, subs[1].Kind)
	require.Equal(t, format.KindBSSID, subs[2].Kind)

	require.Equal(t, Hex(want), r.Hex())
	require.Equal(t, Dump(want), r.Dump())
}

func TestBuilder_LCRReport(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.Add(subelem.MapImageRecord{ImageType: "PNG"}))
	require.NoError(t, b.Add(subelem.CivicRecord{Country: "Japan"}))

	r, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, format.FamilyLCR, r.Family())
	require.Equal(t, []byte{0x00, 0x02, 'J', 'P', 0x05, 0x01, 0x01}, r.Bytes())
}

func TestBuilder_LegacyOption(t *testing.T) {
	rec := subelem.ZRecord{Floor: 1}

	b := NewBuilder(nil, subelem.WithLegacyCompatibility(true))
	require.NoError(t, b.Add(rec))
	r, err := b.Build()
	require.NoError(t, err)

	want, err := subelem.EncodeZ(rec, subelem.WithLegacyCompatibility(true))
	require.NoError(t, err)
	require.Equal(t, want, r.Bytes())
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := NewBuilder(nil).Build()
		require.ErrorIs(t, err, errs.ErrEmptyReport)
	})

	t.Run("Duplicate kind", func(t *testing.T) {
		b := NewBuilder(nil)
		require.NoError(t, b.Add(subelem.UsageRecord{}))
		require.ErrorIs(t, b.Add(subelem.UsageRecord{RetransmissionAllowed: true}), errs.ErrDuplicateSubelement)

		r, err := b.Build()
		require.NoError(t, err)
		require.Equal(t, []byte{0x06, 0x01, 0x00}, r.Bytes(), "first record is kept")
	})

	t.Run("Mixed family", func(t *testing.T) {
		b := NewBuilder(nil)
		require.NoError(t, b.Add(subelem.DefaultLCIRecord()))
		require.ErrorIs(t, b.Add(subelem.CivicRecord{Country: "Japan"}), errs.ErrMixedReportFamily)
		require.Equal(t, 1, b.Len())
	})

	t.Run("Encoding error leaves builder unchanged", func(t *testing.T) {
		b := NewBuilder(nil)
		require.ErrorIs(t, b.Add(subelem.CivicRecord{Country: "Atlantis"}), errs.ErrUnknownKey)
		require.Equal(t, 0, b.Len())

		// The failed civic record did not claim the family.
		require.NoError(t, b.Add(subelem.ZRecord{}))
	})
}

func TestBuilder_Reset(t *testing.T) {
	b := NewBuilder(nil)
	require.NoError(t, b.Add(subelem.DefaultLCIRecord()))

	b.Reset()
	require.Equal(t, 0, b.Len())
	require.NoError(t, b.Add(subelem.CivicRecord{Country: "Japan"}))

	r, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, format.FamilyLCR, r.Family())
}

func TestReport_Fingerprint(t *testing.T) {
	build := func(recs ...subelem.Record) *Report {
		b := NewBuilder(nil)
		for _, rec := range recs {
			require.NoError(t, b.Add(rec))
		}
		r, err := b.Build()
		require.NoError(t, err)

		return r
	}

	a := build(subelem.UsageRecord{}, subelem.ZRecord{Floor: 3})
	b := build(subelem.ZRecord{Floor: 3}, subelem.UsageRecord{})
	c := build(subelem.ZRecord{Floor: 4}, subelem.UsageRecord{})

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
