package ipv4

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Mask is an IPv4 subnet mask stored canonically as its prefix length
// (0-32), never as a raw bitmask.
type Mask uint8

// ParseMask parses a subnet mask given either in dotted-decimal
// notation (255.255.254.0) or as a plain CIDR prefix length (23).
// Dotted masks must expand to a contiguous run of leading one-bits.
func ParseMask(s string) (Mask, error) {
	if strings.Contains(s, ".") {
		packed, err := ParseOctets(s)
		if err != nil {
			return 0, err
		}

		// TrailingZeros32 handles both boundary masks: 0.0.0.0 has 32
		// host bits, 255.255.255.255 has none.
		hostBits := bits.TrailingZeros32(packed)
		mask := Mask(32 - hostBits)
		if mask.Bitmask() != packed {
			return 0, fmt.Errorf("%q: %w", s, ErrNonContiguousMask)
		}
		return mask, nil
	}

	prefix, err := strconv.ParseUint(s, 10, 8)
	if err != nil || prefix > 32 {
		return 0, fmt.Errorf("%q: %w", s, ErrMalformedMaskInteger)
	}
	return Mask(prefix), nil
}

// Bitmask expands the prefix length into a 32-bit mask with the top
// PrefixLength bits set.
func (m Mask) Bitmask() uint32 {
	switch {
	case m == 0:
		return 0
	case m >= 32:
		return ^uint32(0)
	}
	return ^uint32(0) << (32 - m)
}

// PrefixLength returns the mask's canonical prefix length.
func (m Mask) PrefixLength() int {
	return int(m)
}

// String renders the mask as its CIDR prefix length. Dotted input is
// normalized away; this is deliberately lossy.
func (m Mask) String() string {
	return strconv.Itoa(int(m))
}
