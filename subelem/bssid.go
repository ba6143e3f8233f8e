package subelem

import (
	"fmt"
	"net"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/section"
)

type bssid [section.BSSIDSize]byte

// BSSIDRecord is the co-located BSSID list: a max-BSSID indicator and an
// unordered set of up to MaxBSSIDs addresses.
//
// The zero value is an empty list. Insertion order is not preserved; the encoded
// addresses may appear in any order.
type BSSIDRecord struct {
	MaxIndicator uint8

	addrs map[bssid]struct{}
}

// NewBSSIDRecord creates a list holding addrs.
//
// Returns:
//   - *BSSIDRecord: The new record
//   - error: ErrInvalidAddress or ErrCapacity from Add
func NewBSSIDRecord(maxIndicator uint8, addrs ...net.HardwareAddr) (*BSSIDRecord, error) {
	r := &BSSIDRecord{MaxIndicator: maxIndicator}
	for _, a := range addrs {
		if err := r.Add(a); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Kind implements Record.
func (*BSSIDRecord) Kind() format.Kind { return format.KindBSSID }

func (*BSSIDRecord) subelement() {}

// Add inserts a 6-byte hardware address. Adding an address already in the list
// is a no-op.
//
// Returns:
//   - error: ErrInvalidAddress if addr is not 6 bytes, ErrCapacity if the list
//     already holds MaxBSSIDs addresses
func (r *BSSIDRecord) Add(addr net.HardwareAddr) error {
	if len(addr) != section.BSSIDSize {
		return fmt.Errorf("%w: %q is %d bytes, want %d", errs.ErrInvalidAddress, addr.String(), len(addr), section.BSSIDSize)
	}

	var key bssid
	copy(key[:], addr)

	if _, ok := r.addrs[key]; ok {
		return nil
	}
	if len(r.addrs) >= section.MaxBSSIDs {
		return fmt.Errorf("%w: co-located BSSID list holds at most %d addresses", errs.ErrCapacity, section.MaxBSSIDs)
	}

	if r.addrs == nil {
		r.addrs = make(map[bssid]struct{}, 4)
	}
	r.addrs[key] = struct{}{}

	return nil
}

// AddString parses s as an EUI-48 address ("00:11:22:33:44:55",
// "00-11-22-33-44-55" or "0011.2233.4455") and adds it.
func (r *BSSIDRecord) AddString(s string) error {
	addr, err := net.ParseMAC(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidAddress, err)
	}

	return r.Add(addr)
}

// Remove deletes addr and reports whether it was present.
func (r *BSSIDRecord) Remove(addr net.HardwareAddr) bool {
	if len(addr) != section.BSSIDSize {
		return false
	}

	var key bssid
	copy(key[:], addr)

	if _, ok := r.addrs[key]; !ok {
		return false
	}
	delete(r.addrs, key)

	return true
}

// Contains reports whether addr is in the list.
func (r *BSSIDRecord) Contains(addr net.HardwareAddr) bool {
	if len(addr) != section.BSSIDSize {
		return false
	}

	var key bssid
	copy(key[:], addr)
	_, ok := r.addrs[key]

	return ok
}

// Len returns the number of addresses in the list.
func (r *BSSIDRecord) Len() int {
	return len(r.addrs)
}

// Addresses returns the addresses in unspecified order.
func (r *BSSIDRecord) Addresses() []net.HardwareAddr {
	out := make([]net.HardwareAddr, 0, len(r.addrs))
	for key := range r.addrs {
		out = append(out, net.HardwareAddr(append([]byte(nil), key[:]...)))
	}

	return out
}

// Clone returns an independent copy of the record.
func (r *BSSIDRecord) Clone() *BSSIDRecord {
	c := &BSSIDRecord{MaxIndicator: r.MaxIndicator}
	if len(r.addrs) > 0 {
		c.addrs = make(map[bssid]struct{}, len(r.addrs))
		for key := range r.addrs {
			c.addrs[key] = struct{}{}
		}
	}

	return c
}

// EncodeBSSID encodes a co-located BSSID list subelement: the max-BSSID indicator
// followed by 6 bytes per address. A nil record encodes as an empty list.
//
// Returns:
//   - []byte: The framed subelement, at most 255 bytes of payload
//   - error: ErrCapacity if the list somehow holds more than MaxBSSIDs addresses
func EncodeBSSID(rec *BSSIDRecord) ([]byte, error) {
	if rec == nil {
		rec = &BSSIDRecord{}
	}
	if len(rec.addrs) > section.MaxBSSIDs {
		return nil, fmt.Errorf("%w: %d addresses", errs.ErrCapacity, len(rec.addrs))
	}

	payload := make([]byte, 0, 1+len(rec.addrs)*section.BSSIDSize)
	payload = append(payload, rec.MaxIndicator)
	for key := range rec.addrs {
		payload = append(payload, key[:]...)
	}

	return section.Frame(format.IDBSSID, payload)
}
