package ipv4

import "math/bits"

// Summarize computes the smallest supernet covering every route in the
// set: the network formed by the longest run of leading bits shared by
// all addresses, anchored at the first route.
//
// The computation looks at address bits only. When addresses share more
// leading bits than their own masks cover, the summary prefix comes out
// longer than a member's prefix; callers must not assume the result is
// clamped to the shortest member mask.
func Summarize(routes []Route) (Route, error) {
	if len(routes) == 0 {
		return Route{}, ErrEmptyRouteSet
	}

	// A lone route has nothing to disagree with; it is its own summary,
	// mask included.
	if len(routes) == 1 {
		return routes[0], nil
	}

	reference := uint32(routes[0].Addr)
	common := 32
	for _, route := range routes[1:] {
		// Leading zeros of the XOR count the bits this address agrees
		// on with the reference.
		if shared := bits.LeadingZeros32(reference ^ uint32(route.Addr)); shared < common {
			common = shared
		}
	}

	mask := Mask(common)
	return Route{Addr: Address(reference & mask.Bitmask()), Mask: mask}, nil
}
