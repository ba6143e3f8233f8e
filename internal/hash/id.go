package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of the given bytes.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintString computes the xxHash64 of the given string.
func FingerprintString(data string) uint64 {
	return xxhash.Sum64String(data)
}

// FingerprintAll computes the xxHash64 of the concatenation of parts without
// joining them first.
func FingerprintAll(parts ...[]byte) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.Write(p)
	}

	return d.Sum64()
}
