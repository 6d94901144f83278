// Package ipv4 implements the pure address math behind route
// summarization: parsing IPv4 addresses and subnet masks from
// dotted-decimal or CIDR notation and computing the smallest common
// supernet over a set of networks.
//
// Addresses are 32-bit values packed big-endian (first dotted component
// in the most significant byte); masks are stored canonically as a
// prefix length. Everything in this package is a pure function over
// immutable values and is safe for concurrent use.
package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOctets parses a dotted-decimal string of exactly four components
// into a big-endian packed 32-bit value.
func ParseOctets(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%q: %w", s, ErrMalformedOctetList)
	}

	var packed uint32
	for _, part := range parts {
		octet, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrMalformedOctetList)
		}
		packed = packed<<8 | uint32(octet)
	}

	return packed, nil
}
