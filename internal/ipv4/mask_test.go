package ipv4

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"testing"
)

func TestParseMaskPrefixLength(t *testing.T) {
	for n := 0; n <= 32; n++ {
		in := strconv.Itoa(n)
		mask, err := ParseMask(in)
		if err != nil {
			t.Fatalf("ParseMask(%q) returned error: %v", in, err)
		}
		if mask.PrefixLength() != n {
			t.Fatalf("ParseMask(%q) = /%d, want /%d", in, mask.PrefixLength(), n)
		}
	}
}

func TestParseMaskRejectsBadPrefixLength(t *testing.T) {
	for _, in := range []string{"33", "255", "-1", "x", ""} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseMask(in); !errors.Is(err, ErrMalformedMaskInteger) {
				t.Fatalf("ParseMask(%q) error = %v, want ErrMalformedMaskInteger", in, err)
			}
		})
	}
}

func TestParseMaskDotted(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0.0.0.0", 0},
		{"128.0.0.0", 1},
		{"255.0.0.0", 8},
		{"255.255.0.0", 16},
		{"255.255.254.0", 23},
		{"255.255.255.0", 24},
		{"255.255.255.255", 32},
	}

	for _, tc := range cases {
		mask, err := ParseMask(tc.in)
		if err != nil {
			t.Fatalf("ParseMask(%q) returned error: %v", tc.in, err)
		}
		if mask.PrefixLength() != tc.want {
			t.Fatalf("ParseMask(%q) = /%d, want /%d", tc.in, mask.PrefixLength(), tc.want)
		}
	}
}

func TestParseMaskRejectsNonContiguous(t *testing.T) {
	for _, in := range []string{"255.0.255.0", "0.255.255.255", "255.255.253.0", "1.0.0.0"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseMask(in); !errors.Is(err, ErrNonContiguousMask) {
				t.Fatalf("ParseMask(%q) error = %v, want ErrNonContiguousMask", in, err)
			}
		})
	}
}

func TestBitmaskShape(t *testing.T) {
	for n := 0; n <= 32; n++ {
		bitmask := Mask(n).Bitmask()
		if got := bits.OnesCount32(bitmask); got != n {
			t.Fatalf("Mask(%d).Bitmask() has %d one-bits, want %d", n, got, n)
		}
		if n > 0 && bits.LeadingZeros32(bitmask) != 0 {
			t.Fatalf("Mask(%d).Bitmask() = %#x has a leading zero bit", n, bitmask)
		}
		if n < 32 && bitmask&1 != 0 {
			t.Fatalf("Mask(%d).Bitmask() = %#x sets the lowest bit", n, bitmask)
		}
	}
}

func TestMaskDottedRoundTrip(t *testing.T) {
	for n := 0; n <= 32; n++ {
		bitmask := Mask(n).Bitmask()
		dotted := fmt.Sprintf("%d.%d.%d.%d",
			byte(bitmask>>24), byte(bitmask>>16), byte(bitmask>>8), byte(bitmask))

		mask, err := ParseMask(dotted)
		if err != nil {
			t.Fatalf("ParseMask(%q) returned error: %v", dotted, err)
		}
		if mask.PrefixLength() != n {
			t.Fatalf("ParseMask(%q) = /%d, want /%d", dotted, mask.PrefixLength(), n)
		}
	}
}

func TestMaskStringIsCIDR(t *testing.T) {
	mask, err := ParseMask("255.255.254.0")
	if err != nil {
		t.Fatalf("ParseMask returned error: %v", err)
	}
	if got := mask.String(); got != "23" {
		t.Fatalf("Mask.String() = %q, want %q", got, "23")
	}
}
