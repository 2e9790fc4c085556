package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"
)

// ValidatePositiveDuration returns an error unless d > 0.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateNonNegativeDuration returns an error if d < 0. Zero is accepted,
// typically meaning "disabled".
func ValidateNonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("duration must be non-negative, got %v", d)
	}
	return nil
}

// ValidatePositiveInt returns an error unless n > 0.
func ValidatePositiveInt(n int) error {
	if n <= 0 {
		return fmt.Errorf("value must be positive, got %d", n)
	}
	return nil
}

// ValidatePositiveFloat returns an error unless f > 0.
func ValidatePositiveFloat(f float64) error {
	if f <= 0 {
		return fmt.Errorf("value must be positive, got %g", f)
	}
	return nil
}

// ValidateOneOf returns an error unless value is one of allowed.
func ValidateOneOf(value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%q is not one of %v", value, allowed)
}

// ParsePrefixes parses IP addresses and CIDR ranges. A bare address becomes a
// /32 (IPv4) or /128 (IPv6) prefix; blank entries are skipped.
func ParsePrefixes(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		prefix, err := netip.ParsePrefix(e)
		if err != nil {
			addr, addrErr := netip.ParseAddr(e)
			if addrErr != nil {
				return nil, fmt.Errorf("invalid IP or CIDR %q", e)
			}
			prefix = netip.PrefixFrom(addr, addr.BitLen())
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}
