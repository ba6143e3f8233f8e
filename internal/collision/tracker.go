package collision

import (
	"fmt"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
)

// Tracker tracks the subelements added to a report and detects wire ID
// collisions before the report is assembled.
//
// Two kinds of collision are rejected:
//   - the same subelement kind added twice
//   - subelements from different report families, whose IDs overlap on the wire
//     (the LCI subelement and the civic subelement both use ID 0)
type Tracker struct {
	seen   map[format.Kind]struct{}
	kinds  []format.Kind // insertion order
	family format.Family
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen:  make(map[format.Kind]struct{}),
		kinds: make([]format.Kind, 0, 4),
	}
}

// Track records a subelement kind.
//
// Returns:
//   - error: ErrDuplicateSubelement if kind was already tracked,
//     ErrMixedReportFamily if kind belongs to a different family than the first tracked kind
func (t *Tracker) Track(kind format.Kind) error {
	if _, exists := t.seen[kind]; exists {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateSubelement, kind)
	}

	if len(t.kinds) > 0 && kind.Family() != t.family {
		return fmt.Errorf("%w: %s subelement in %s report",
			errs.ErrMixedReportFamily, kind, t.family)
	}

	if len(t.kinds) == 0 {
		t.family = kind.Family()
	}
	t.seen[kind] = struct{}{}
	t.kinds = append(t.kinds, kind)

	return nil
}

// Family returns the family of the tracked subelements, or 0 when nothing was tracked.
func (t *Tracker) Family() format.Family {
	return t.family
}

// Kinds returns the tracked kinds in insertion order.
func (t *Tracker) Kinds() []format.Kind {
	return t.kinds
}

// Count returns the number of tracked subelements.
func (t *Tracker) Count() int {
	return len(t.kinds)
}

// Reset clears all tracked state so the tracker can be reused for a new report.
func (t *Tracker) Reset() {
	clear(t.seen)
	t.kinds = t.kinds[:0]
	t.family = 0
}
