package resolvconf

import (
	"net/netip"
	"slices"
)

// Resolver limits glibc compiles in (resolv.h).
const (
	// MaxNameservers is the number of nameservers glibc consults (MAXNS).
	MaxNameservers = 3
	// MaxSearchEntries is the search list length glibc honors (MAXDNSRCH).
	MaxSearchEntries = 6
)

// lastApplied records which of the domain and search directives was
// applied most recently. Accessors and output follow this selector, not
// mere presence of a stored value, so glibc's last-directive-wins rule
// reconstructs without ambiguity.
type lastApplied int

const (
	appliedNone lastApplied = iota
	appliedDomain
	appliedSearch
)

// Lookup is one entry of the lookup directive. Values other than the
// two named constants pass through untouched.
type Lookup string

const (
	LookupFile Lookup = "file"
	LookupBind Lookup = "bind"
)

// Family is one entry of the family directive.
type Family string

const (
	FamilyInet4 Family = "inet4"
	FamilyInet6 Family = "inet6"
)

// Config is a parsed resolver configuration. Names and defaults follow
// man 5 resolv.conf on Linux; Lookup, Family and Port carry the BSD and
// macOS extensions.
//
// The domain and search values are unexported because both may sit in
// storage while only one is authoritative. Use Domain, Search,
// SetDomain, SetSearch and LastSearchOrDomain instead.
type Config struct {
	// Nameservers lists the nameserver directives in file order.
	Nameservers []netip.Addr

	domain *string
	search []string
	last   lastApplied

	// Sortlist orders preferred answer networks.
	Sortlist []Network

	// Debug enables resolver debug output.
	Debug bool
	// Ndots is the dot threshold for trying a name absolute first (default 1).
	Ndots uint32
	// Timeout is the per-query timeout in seconds (default 5).
	Timeout uint32
	// Attempts is the number of tries before giving up (default 2).
	Attempts uint32
	// Rotate round-robins queries across the listed servers.
	Rotate bool
	// NoCheckNames disables hostname validity checks on responses.
	NoCheckNames bool
	// Inet6 asks for AAAA before A.
	Inet6 bool
	// IP6Bytestring uses bit-label format for IPv6 reverse lookups.
	IP6Bytestring bool
	// IP6Dotint reverses IPv6 in ip6.int instead of ip6.arpa.
	IP6Dotint bool
	// EDNS0 enables the DNS extensions of RFC 2671.
	EDNS0 bool
	// SingleRequest serializes the A and AAAA queries.
	SingleRequest bool
	// SingleRequestReopen reuses one socket for the A and AAAA queries.
	SingleRequestReopen bool
	// NoTLDQuery skips resolving unqualified names as a top level domain.
	NoTLDQuery bool
	// UseVC forces TCP.
	UseVC bool
	// NoReload disables rereading of the file inside the resolver.
	NoReload bool
	// TrustAD preserves the AD bit from responses.
	TrustAD bool
	// NoAAAA suppresses AAAA queries entirely.
	NoAAAA bool

	// Lookup lists the databases to consult, in order.
	Lookup []Lookup
	// Family orders the address families to query.
	Family []Family

	// Port is the per-file nameserver port of the macOS dialect.
	// Zero means unset.
	Port uint16
}

// New returns a Config holding only defaults: no nameservers, no domain
// or search, ndots 1, timeout 5, attempts 2, everything else off.
func New() *Config {
	return &Config{
		Ndots:    1,
		Timeout:  5,
		Attempts: 2,
	}
}

// Domain returns the stored domain, if one was ever set. The boolean
// does not imply the domain is authoritative; that is the selector's
// job, see LastSearchOrDomain.
func (c *Config) Domain() (string, bool) {
	if c.domain == nil {
		return "", false
	}
	return *c.domain, true
}

// Search returns the stored search list, if one was ever set. An empty
// non-nil list means a bare search directive was applied.
func (c *Config) Search() ([]string, bool) {
	if c.search == nil {
		return nil, false
	}
	return c.search, true
}

// SetDomain stores domain and marks the domain directive authoritative.
// The stored search list is left in place.
func (c *Config) SetDomain(domain string) {
	c.domain = &domain
	c.last = appliedDomain
}

// SetSearch stores search and marks the search directive authoritative.
// The stored domain is left in place.
func (c *Config) SetSearch(search []string) {
	if search == nil {
		search = []string{}
	}
	c.search = search
	c.last = appliedSearch
}

// LastSearchOrDomain returns the suffix list declared by whichever of
// the domain and search directives was applied last, or nil when
// neither was.
func (c *Config) LastSearchOrDomain() []string {
	switch c.last {
	case appliedDomain:
		if c.domain != nil {
			return []string{*c.domain}
		}
	case appliedSearch:
		return c.search
	}
	return nil
}

// ApplyGlibcLimits truncates the nameserver list to 3 entries and the
// search list to 6, the caps glibc enforces at query time. Parsing
// never applies the nameserver cap on its own; strict dialects already
// cap search per directive.
func (c *Config) ApplyGlibcLimits() {
	if len(c.Nameservers) > MaxNameservers {
		c.Nameservers = c.Nameservers[:MaxNameservers]
	}
	if len(c.search) > MaxSearchEntries {
		c.search = c.search[:MaxSearchEntries]
	}
}

// Equal reports structural equality, including stored domain and search
// values that are not currently authoritative, and the selector itself.
func (c *Config) Equal(o *Config) bool {
	if c == nil || o == nil {
		return c == o
	}
	if !slices.Equal(c.Nameservers, o.Nameservers) ||
		!slices.Equal(c.Sortlist, o.Sortlist) ||
		!slices.Equal(c.Lookup, o.Lookup) ||
		!slices.Equal(c.Family, o.Family) {
		return false
	}
	if (c.domain == nil) != (o.domain == nil) {
		return false
	}
	if c.domain != nil && *c.domain != *o.domain {
		return false
	}
	if (c.search == nil) != (o.search == nil) || !slices.Equal(c.search, o.search) {
		return false
	}
	a, b := *c, *o
	a.Nameservers, b.Nameservers = nil, nil
	a.Sortlist, b.Sortlist = nil, nil
	a.Lookup, b.Lookup = nil, nil
	a.Family, b.Family = nil, nil
	a.domain, b.domain = nil, nil
	a.search, b.search = nil, nil
	return a == b
}
