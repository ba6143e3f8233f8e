package section

// UsageFlag is the first byte of the usage rules/policy subelement.
type UsageFlag uint8

// RetransmissionAllowed returns whether the location may be retransmitted.
func (f UsageFlag) RetransmissionAllowed() bool {
	return f&UsageRetransmissionMask != 0
}

// RetentionExpires returns whether an expiry field follows the flag byte.
func (f UsageFlag) RetentionExpires() bool {
	return f&UsageRetentionMask != 0
}

// STALocationPolicy returns whether the STA location policy bit is set.
func (f UsageFlag) STALocationPolicy() bool {
	return f&UsagePolicyMask != 0
}

// SetRetransmissionAllowed sets or clears bit 0.
func (f *UsageFlag) SetRetransmissionAllowed(enabled bool) {
	f.set(UsageRetransmissionMask, enabled)
}

// SetRetentionExpires sets or clears bit 1.
func (f *UsageFlag) SetRetentionExpires(enabled bool) {
	f.set(UsageRetentionMask, enabled)
}

// SetSTALocationPolicy sets or clears bit 2.
func (f *UsageFlag) SetSTALocationPolicy(enabled bool) {
	f.set(UsagePolicyMask, enabled)
}

func (f *UsageFlag) set(mask UsageFlag, enabled bool) {
	if enabled {
		*f |= mask
	} else {
		*f &^= mask
	}
}
