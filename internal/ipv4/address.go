package ipv4

import "fmt"

// Address is an IPv4 address as a big-endian packed 32-bit value.
type Address uint32

// ParseAddress parses a dotted-decimal IPv4 address.
func ParseAddress(s string) (Address, error) {
	packed, err := ParseOctets(s)
	if err != nil {
		return 0, err
	}
	return Address(packed), nil
}

// String renders the address in dotted-decimal form, most significant
// byte first. It is the inverse of ParseAddress up to octet
// normalization.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}
