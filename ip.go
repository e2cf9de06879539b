package resolvconf

import (
	"fmt"
	"net/netip"
	"strings"
	"unicode"
)

// ParseAddr parses a nameserver address token: an IPv4 or IPv6 literal,
// the latter optionally carrying a scope zone ("fe80::1%eth0"). A zone
// must be non-empty and purely alphanumeric, and is never valid on an
// IPv4 literal. The zone is preserved in the returned address.
func ParseAddr(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalidIP, err)
	}
	if zone := addr.Zone(); zone != "" && !alphanumeric(zone) {
		return netip.Addr{}, fmt.Errorf("%w: bad scope zone %q", ErrInvalidIP, zone)
	}
	return addr, nil
}

func alphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// Network is one sortlist entry: an address and a netmask of the same
// family. The mask is stored as a plain address, mirroring the file
// syntax, and is not checked for bit contiguity.
type Network struct {
	Address netip.Addr
	Mask    netip.Addr
}

// String renders the entry in file syntax, always with an explicit mask.
func (n Network) String() string {
	return n.Address.String() + "/" + n.Mask.String()
}

// Contains reports whether addr falls inside the network under its mask.
// Addresses of the other family are never contained.
func (n Network) Contains(addr netip.Addr) bool {
	if !n.Address.IsValid() || !addr.IsValid() || n.Address.Is4() != addr.Is4() {
		return false
	}
	if n.Address.Is4() {
		a, m, x := n.Address.As4(), n.Mask.As4(), addr.As4()
		for i := range a {
			if a[i]&m[i] != x[i]&m[i] {
				return false
			}
		}
		return true
	}
	a, m, x := n.Address.As16(), n.Mask.As16(), addr.As16()
	for i := range a {
		if a[i]&m[i] != x[i]&m[i] {
			return false
		}
	}
	return true
}

var v6AllOnes = netip.AddrFrom16([16]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
})

// ParseNetwork parses one sortlist token of the form "address" or
// "address/mask". Scope zones are not allowed on either part.
//
// For IPv4 the address must not be 0.0.0.0 and an explicit mask must be
// a non-zero IPv4 value. When the mask is omitted it is inferred from
// the trailing zero octets of the address: none gives 255.255.255.255,
// one 255.255.255.0, two 255.255.0.0, three 255.0.0.0. The inference
// works on whole octets, not prefix bits.
//
// For IPv6 an explicit mask is any IPv6 literal, taken as given, and an
// omitted mask defaults to the all-ones address. Both are understood
// host-route defaults rather than real prefixes.
func ParseNetwork(s string) (Network, error) {
	addrPart, maskPart, hasMask := strings.Cut(s, "/")
	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %w", ErrInvalidIP, err)
	}
	if addr.Zone() != "" {
		return Network{}, fmt.Errorf("%w: scope zone in network %q", ErrInvalidIP, s)
	}
	if addr.Is4() {
		return v4Network(addr, maskPart, hasMask)
	}
	return v6Network(addr, maskPart, hasMask)
}

func v4Network(addr netip.Addr, maskPart string, hasMask bool) (Network, error) {
	if addr == netip.IPv4Unspecified() {
		return Network{}, fmt.Errorf("%w: network address 0.0.0.0", ErrInvalidIP)
	}
	if !hasMask {
		return Network{Address: addr, Mask: inferV4Mask(addr)}, nil
	}
	mask, err := netip.ParseAddr(maskPart)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %w", ErrInvalidIP, err)
	}
	if !mask.Is4() {
		return Network{}, fmt.Errorf("%w: mask %q is not IPv4", ErrInvalidIP, maskPart)
	}
	if mask == netip.IPv4Unspecified() {
		return Network{}, fmt.Errorf("%w: zero mask %q", ErrInvalidIP, maskPart)
	}
	return Network{Address: addr, Mask: mask}, nil
}

func inferV4Mask(addr netip.Addr) netip.Addr {
	o := addr.As4()
	switch {
	case o[3] != 0:
		return netip.AddrFrom4([4]byte{255, 255, 255, 255})
	case o[2] != 0:
		return netip.AddrFrom4([4]byte{255, 255, 255, 0})
	case o[1] != 0:
		return netip.AddrFrom4([4]byte{255, 255, 0, 0})
	default:
		return netip.AddrFrom4([4]byte{255, 0, 0, 0})
	}
}

func v6Network(addr netip.Addr, maskPart string, hasMask bool) (Network, error) {
	if !hasMask {
		return Network{Address: addr, Mask: v6AllOnes}, nil
	}
	mask, err := netip.ParseAddr(maskPart)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %w", ErrInvalidIP, err)
	}
	if mask.Is4() || mask.Zone() != "" {
		return Network{}, fmt.Errorf("%w: mask %q is not IPv6", ErrInvalidIP, maskPart)
	}
	return Network{Address: addr, Mask: mask}, nil
}
