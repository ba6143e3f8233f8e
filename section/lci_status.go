package section

// LCIStatus is the final byte of the LCI payload: map datum, the three
// regulatory flags and the version number.
type LCIStatus uint8

// NewLCIStatus creates a status byte carrying datum and version with all flags cleared.
func NewLCIStatus(datum, version uint8) LCIStatus {
	return LCIStatus(datum&LCIDatumMask | (version<<LCIVersionShift)&LCIVersionMask)
}

// Datum returns the map datum bits.
func (s LCIStatus) Datum() uint8 {
	return uint8(s) & LCIDatumMask
}

// Version returns the version bits.
func (s LCIStatus) Version() uint8 {
	return (uint8(s) & LCIVersionMask) >> LCIVersionShift
}

// RegLocAgreement returns bit 3.
func (s LCIStatus) RegLocAgreement() bool {
	return s&LCIRegLocAgreementMask != 0
}

// RegLocDSE returns bit 4.
func (s LCIStatus) RegLocDSE() bool {
	return s&LCIRegLocDSEMask != 0
}

// DependentSTA returns bit 5.
func (s LCIStatus) DependentSTA() bool {
	return s&LCIDependentSTAMask != 0
}

// WithRegLocAgreement sets or clears bit 3.
func (s *LCIStatus) WithRegLocAgreement(enabled bool) {
	s.set(LCIRegLocAgreementMask, enabled)
}

// WithRegLocDSE sets or clears bit 4.
func (s *LCIStatus) WithRegLocDSE(enabled bool) {
	s.set(LCIRegLocDSEMask, enabled)
}

// WithDependentSTA sets or clears bit 5.
func (s *LCIStatus) WithDependentSTA(enabled bool) {
	s.set(LCIDependentSTAMask, enabled)
}

func (s *LCIStatus) set(mask LCIStatus, enabled bool) {
	if enabled {
		*s |= mask
	} else {
		*s &^= mask
	}
}
