package ipv4

import (
	"fmt"
	"strings"
)

// Route is a network address together with its mask. Routes returned by
// NewRoute always satisfy addr & mask == addr.
type Route struct {
	Addr Address
	Mask Mask
}

// NewRoute builds a route and enforces that the address is a proper
// network address: no bits may be set in the host portion.
func NewRoute(addr Address, mask Mask) (Route, error) {
	if uint32(addr)&mask.Bitmask() != uint32(addr) {
		return Route{}, fmt.Errorf("%s/%s: %w", addr, mask, ErrHostBitsSet)
	}
	return Route{Addr: addr, Mask: mask}, nil
}

// ParseRoute parses a "<address>/<mask>" record where the mask part is
// either dotted-decimal or a plain prefix length. Whitespace around
// either part is ignored.
func ParseRoute(s string) (Route, error) {
	addrPart, maskPart, ok := strings.Cut(s, "/")
	if !ok {
		return Route{}, fmt.Errorf("%q: expected <address>/<mask>", s)
	}

	addr, err := ParseAddress(strings.TrimSpace(addrPart))
	if err != nil {
		return Route{}, err
	}

	mask, err := ParseMask(strings.TrimSpace(maskPart))
	if err != nil {
		return Route{}, err
	}

	return NewRoute(addr, mask)
}

// String renders the route in normalized CIDR form, e.g. 10.0.0.0/23.
func (r Route) String() string {
	return r.Addr.String() + "/" + r.Mask.String()
}
