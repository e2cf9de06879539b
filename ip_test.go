package resolvconf

import (
	"errors"
	"net/netip"
	"testing"
)

func TestParseAddr_Zones(t *testing.T) {
	t.Run("accepts interface name zone", func(t *testing.T) {
		addr, err := ParseAddr("FE80::C001:1DFF:FEE0:0%eth0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := netip.MustParseAddr("fe80::c001:1dff:fee0:0%eth0"); addr != want {
			t.Errorf("expected %v, got %v", want, addr)
		}
		if addr.Zone() != "eth0" {
			t.Errorf("expected zone 'eth0', got %q", addr.Zone())
		}
	})

	t.Run("accepts numeric zone", func(t *testing.T) {
		addr, err := ParseAddr("FE80::C001:1DFF:FEE0:0%1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if addr.Zone() != "1" {
			t.Errorf("expected zone '1', got %q", addr.Zone())
		}
	})

	t.Run("no zone yields none", func(t *testing.T) {
		addr, err := ParseAddr("FE80::C001:1DFF:FEE0:0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if addr.Zone() != "" {
			t.Errorf("expected no zone, got %q", addr.Zone())
		}
	})

	invalid := []struct {
		in     string
		reason string
	}{
		{"10.0.0.1%1", "IPv4 never carries a zone"},
		{"10.0.0.1%eth0", "IPv4 never carries a zone"},
		{"FE80::C001:1DFF:FEE0:0%", "empty zone"},
		{"FE80::C001:1DFF:FEE0:0% ", "blank zone"},
		{"FE80::C001:1DFF:FEE0:0%eth0%2", "zone must be alphanumeric"},
		{"10.0.0.1.0", "too many octets"},
		{"", "empty token"},
	}
	for _, tc := range invalid {
		t.Run(tc.in+" ("+tc.reason+")", func(t *testing.T) {
			_, err := ParseAddr(tc.in)
			if err == nil {
				t.Fatalf("expected %q to be rejected (%s)", tc.in, tc.reason)
			}
			if !errors.Is(err, ErrInvalidIP) {
				t.Errorf("expected ErrInvalidIP, got %v", err)
			}
		})
	}
}

func TestParseAddr_Families(t *testing.T) {
	t.Run("plain IPv4", func(t *testing.T) {
		addr, err := ParseAddr("192.168.10.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !addr.Is4() {
			t.Errorf("expected an IPv4 address, got %v", addr)
		}
	})

	t.Run("IPv4-mapped stays IPv6", func(t *testing.T) {
		addr, err := ParseAddr("::ffff:192.0.2.128")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if addr.Is4() {
			t.Errorf("expected %v to remain IPv6", addr)
		}
		if !addr.Is4In6() {
			t.Errorf("expected %v to be 4-in-6", addr)
		}
	})
}

func TestParseNetwork_V4MaskInference(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"130.155.160.0/255.255.240.0", "130.155.160.0/255.255.240.0"},
		{"10.1.2.3", "10.1.2.3/255.255.255.255"},
		{"10.1.2.0", "10.1.2.0/255.255.255.0"},
		{"130.155.0.0", "130.155.0.0/255.255.0.0"},
		{"10.0.0.0", "10.0.0.0/255.0.0.0"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := ParseNetwork(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, n.String())
			}
		})
	}
}

func TestParseNetwork_V6(t *testing.T) {
	t.Run("explicit mask is taken as given", func(t *testing.T) {
		n, err := ParseNetwork("fe80::/ffff:ffff:ffff:ffff::")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := netip.MustParseAddr("ffff:ffff:ffff:ffff::"); n.Mask != want {
			t.Errorf("expected mask %v, got %v", want, n.Mask)
		}
	})

	t.Run("omitted mask defaults to all-ones", func(t *testing.T) {
		n, err := ParseNetwork("2001:db8::")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := netip.MustParseAddr("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"); n.Mask != want {
			t.Errorf("expected all-ones mask, got %v", n.Mask)
		}
	})

	t.Run("IPv4-mapped address parses as IPv6", func(t *testing.T) {
		n, err := ParseNetwork("::ffff:192.0.2.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Address.Is4() {
			t.Errorf("expected an IPv6 network, got %v", n)
		}
		if n.Mask != v6AllOnes {
			t.Errorf("expected all-ones mask, got %v", n.Mask)
		}
	})
}

func TestParseNetwork_Invalid(t *testing.T) {
	invalid := []struct {
		in     string
		reason string
	}{
		{"0.0.0.0", "all-zero address"},
		{"0.0.0.0/255.0.0.0", "all-zero address with mask"},
		{"1.2.3.4/0.0.0.0", "zero mask"},
		{"1.2.3.4/junk", "unparseable mask"},
		{"1.2.3.4/::1", "IPv6 mask on IPv4 address"},
		{"2001:db8::/1.2.3.4", "IPv4 mask on IPv6 address"},
		{"2001:db8::%eth0", "zone on a network"},
		{"2001:db8::/ffff::%eth0", "zone on a mask"},
		{"junk", "not an address"},
		{"", "empty token"},
	}
	for _, tc := range invalid {
		t.Run(tc.reason, func(t *testing.T) {
			_, err := ParseNetwork(tc.in)
			if err == nil {
				t.Fatalf("expected %q to be rejected (%s)", tc.in, tc.reason)
			}
			if !errors.Is(err, ErrInvalidIP) {
				t.Errorf("expected ErrInvalidIP, got %v", err)
			}
		})
	}
}

func TestNetwork_Contains(t *testing.T) {
	n, err := ParseNetwork("130.155.160.0/255.255.240.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("address inside the mask", func(t *testing.T) {
		if !n.Contains(netip.MustParseAddr("130.155.175.3")) {
			t.Error("expected 130.155.175.3 to be contained")
		}
	})

	t.Run("address outside the mask", func(t *testing.T) {
		if n.Contains(netip.MustParseAddr("130.155.176.1")) {
			t.Error("expected 130.155.176.1 to be outside")
		}
	})

	t.Run("other family is never contained", func(t *testing.T) {
		if n.Contains(netip.MustParseAddr("::1")) {
			t.Error("expected an IPv6 address to be outside an IPv4 network")
		}
	})

	t.Run("all-ones IPv6 mask matches only itself", func(t *testing.T) {
		host, err := ParseNetwork("2001:db8::1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !host.Contains(netip.MustParseAddr("2001:db8::1")) {
			t.Error("expected the host itself to be contained")
		}
		if host.Contains(netip.MustParseAddr("2001:db8::2")) {
			t.Error("expected a neighbor to be outside a host route")
		}
	})

	t.Run("zero network contains nothing", func(t *testing.T) {
		if (Network{}).Contains(netip.MustParseAddr("10.0.0.1")) {
			t.Error("expected the zero Network to contain nothing")
		}
	})
}
