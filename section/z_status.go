package section

// ZStatus holds the two status bytes of the Z subelement: the leading
// movement byte and the trailing uncertainty byte.
type ZStatus struct {
	Lead  uint8
	Trail uint8
}

// NewZStatus packs the movement class and height uncertainty class.
//
// Only the low two bits of movement and the low four bits of uncertainty are used.
// When legacy is true the two reserved bits of the trailing byte are set, as older
// client parsers expect.
func NewZStatus(movement, uncertainty uint8, legacy bool) ZStatus {
	s := ZStatus{
		Lead:  movement & ZMovementMask,
		Trail: uncertainty&ZUncertaintyMask | (movement&ZMovementMask)<<ZMovementTrailerShift,
	}
	if legacy {
		s.Trail |= ZLegacyReservedMask
	}

	return s
}

// Movement returns the movement class.
func (s ZStatus) Movement() uint8 {
	return s.Lead & ZMovementMask
}

// Uncertainty returns the height uncertainty class.
func (s ZStatus) Uncertainty() uint8 {
	return s.Trail & ZUncertaintyMask
}

// IsLegacy returns whether the reserved bits carry the legacy pattern.
func (s ZStatus) IsLegacy() bool {
	return s.Trail&ZLegacyReservedMask == ZLegacyReservedMask
}
