package ipv4

import "errors"

var (
	// ErrMalformedOctetList reports input that is not four dot-separated
	// decimal octets in 0-255.
	ErrMalformedOctetList = errors.New("expected four dot-separated octets in 0-255")

	// ErrMalformedMaskInteger reports a plain prefix length that is not an
	// integer in 0-32.
	ErrMalformedMaskInteger = errors.New("prefix length must be an integer in 0-32")

	// ErrNonContiguousMask reports a dotted mask whose bit pattern is not a
	// run of ones followed by a run of zeros.
	ErrNonContiguousMask = errors.New("mask bits are not contiguous")

	// ErrHostBitsSet reports an address with bits set outside the network
	// portion defined by its mask.
	ErrHostBitsSet = errors.New("address has host bits set")

	// ErrEmptyRouteSet reports a summary request over zero routes.
	ErrEmptyRouteSet = errors.New("route set is empty")
)
