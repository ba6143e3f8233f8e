package subelem

import (
	"fmt"
	"math"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/internal/options"
	"github.com/arloliu/lcikit/tables"
)

// Record is one subelement parameter record.
//
// The set of implementations is closed: LCIRecord, ZRecord, UsageRecord,
// *BSSIDRecord, CivicRecord and MapImageRecord.
type Record interface {
	// Kind reports which subelement the record describes.
	Kind() format.Kind

	subelement()
}

// EncodeConfig holds the options accepted by Encode.
type EncodeConfig struct {
	legacy bool
}

// Legacy reports whether the Z legacy bit layout was requested.
func (c *EncodeConfig) Legacy() bool {
	return c.legacy
}

// EncodeOption is a functional option for Encode.
type EncodeOption = options.Option[*EncodeConfig]

// WithLegacyCompatibility forces the legacy Z layout, which sets the two reserved
// bits of the final Z status byte for older client parsers.
//
// The option only affects Z records. A ZRecord with LegacyCompatibility set uses
// the legacy layout regardless of this option.
func WithLegacyCompatibility(enabled bool) EncodeOption {
	return options.NoError(func(c *EncodeConfig) {
		c.legacy = enabled
	})
}

// NewEncodeConfig applies opts to a default configuration.
func NewEncodeConfig(opts ...EncodeOption) (*EncodeConfig, error) {
	cfg := &EncodeConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Encode encodes rec into a complete subelement: ID byte, length byte and payload.
//
// Parameters:
//   - rec: The record to encode
//   - tbl: Code tables for name resolution; nil selects tables.Default()
//   - opts: Encoding options (WithLegacyCompatibility)
//
// Returns:
//   - []byte: The framed subelement, newly allocated and owned by the caller
//   - error: ErrUnknownKey, ErrRange, ErrCapacity, ErrLengthOverflow or ErrInvalidVersion
func Encode(rec Record, tbl *tables.Tables, opts ...EncodeOption) ([]byte, error) {
	cfg, err := NewEncodeConfig(opts...)
	if err != nil {
		return nil, err
	}

	switch r := rec.(type) {
	case LCIRecord:
		return EncodeLCI(r)
	case ZRecord:
		return EncodeZ(r, WithLegacyCompatibility(cfg.legacy))
	case UsageRecord:
		return EncodeUsage(r)
	case *BSSIDRecord:
		return EncodeBSSID(r)
	case CivicRecord:
		return EncodeCivic(r, tbl)
	case MapImageRecord:
		return EncodeMapImage(r, tbl)
	case nil:
		return nil, fmt.Errorf("%w: nil record", errs.ErrUnknownKey)
	default:
		return nil, fmt.Errorf("%w: record type %T", errs.ErrUnknownKey, rec)
	}
}

func tablesOrDefault(tbl *tables.Tables) *tables.Tables {
	if tbl == nil {
		return tables.Default()
	}

	return tbl
}

// checkUncertainty rejects negative and NaN uncertainties. Zero means unknown.
func checkUncertainty(field string, u float64) error {
	if math.IsNaN(u) || u < 0 {
		return fmt.Errorf("%w: %s uncertainty %v must be non-negative", errs.ErrRange, field, u)
	}

	return nil
}
