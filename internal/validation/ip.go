package validation

import (
	"net"
	"net/netip"
)

// Ranges not covered by the netip predicates.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),   // carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("198.18.0.0/15"),   // benchmarking
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
	netip.MustParsePrefix("240.0.0.0/4"),     // reserved
}

type IPValidator struct{}

func NewIPValidator() *IPValidator {
	return &IPValidator{}
}

// ValidateHost rejects IP literals in private or reserved ranges. Host names
// pass without resolution.
func (v *IPValidator) ValidateHost(host string) error {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if len(host) > 1 && host[0] == '[' && host[len(host)-1] == ']' {
		host = host[1 : len(host)-1]
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return nil
	}
	return v.validateIP(addr)
}

func (v *IPValidator) validateIP(addr netip.Addr) error {
	addr = addr.Unmap()

	if addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified() {
		return ErrPrivateIPNotAllowed
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}
	return nil
}
