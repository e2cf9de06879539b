package resolvconf

import (
	"fmt"
	"strings"
)

// String renders the configuration back to directive text in canonical
// order: nameservers, port, then domain and search with the
// authoritative one last, sortlist, lookup, family, and one options
// line per non-default option. Only non-default values appear, so
// re-parsing the output under the producing dialect yields an equal
// Config.
func (c *Config) String() string {
	var b strings.Builder
	for _, ns := range c.Nameservers {
		fmt.Fprintf(&b, "nameserver %s\n", ns)
	}
	if c.Port != 0 {
		fmt.Fprintf(&b, "port %d\n", c.Port)
	}
	if c.last != appliedDomain && c.domain != nil {
		fmt.Fprintf(&b, "domain %s\n", *c.domain)
	}
	if len(c.search) > 0 {
		fmt.Fprintf(&b, "search %s\n", strings.Join(c.search, " "))
	}
	if c.last == appliedDomain && c.domain != nil {
		fmt.Fprintf(&b, "domain %s\n", *c.domain)
	}
	if len(c.Sortlist) > 0 {
		b.WriteString("sortlist")
		for _, n := range c.Sortlist {
			b.WriteByte(' ')
			b.WriteString(n.String())
		}
		b.WriteByte('\n')
	}
	if len(c.Lookup) > 0 {
		b.WriteString("lookup")
		for _, l := range c.Lookup {
			b.WriteByte(' ')
			b.WriteString(string(l))
		}
		b.WriteByte('\n')
	}
	if len(c.Family) > 0 {
		b.WriteString("family")
		for _, f := range c.Family {
			b.WriteByte(' ')
			b.WriteString(string(f))
		}
		b.WriteByte('\n')
	}
	for _, opt := range c.OptionStrings() {
		fmt.Fprintf(&b, "options %s\n", opt)
	}
	return b.String()
}

// OptionStrings returns the non-default options as option tokens, one
// per entry, in the order the resolver documents them.
func (c *Config) OptionStrings() []string {
	var opts []string
	if c.Debug {
		opts = append(opts, "debug")
	}
	if c.Ndots != 1 {
		opts = append(opts, fmt.Sprintf("ndots:%d", c.Ndots))
	}
	if c.Timeout != 5 {
		opts = append(opts, fmt.Sprintf("timeout:%d", c.Timeout))
	}
	if c.Attempts != 2 {
		opts = append(opts, fmt.Sprintf("attempts:%d", c.Attempts))
	}
	if c.Rotate {
		opts = append(opts, "rotate")
	}
	if c.NoCheckNames {
		opts = append(opts, "no-check-names")
	}
	if c.Inet6 {
		opts = append(opts, "inet6")
	}
	if c.IP6Bytestring {
		opts = append(opts, "ip6-bytestring")
	}
	if c.IP6Dotint {
		opts = append(opts, "ip6-dotint")
	}
	if c.EDNS0 {
		opts = append(opts, "edns0")
	}
	if c.SingleRequest {
		opts = append(opts, "single-request")
	}
	if c.SingleRequestReopen {
		opts = append(opts, "single-request-reopen")
	}
	if c.NoTLDQuery {
		opts = append(opts, "no-tld-query")
	}
	if c.UseVC {
		opts = append(opts, "use-vc")
	}
	if c.NoReload {
		opts = append(opts, "no-reload")
	}
	if c.TrustAD {
		opts = append(opts, "trust-ad")
	}
	if c.NoAAAA {
		opts = append(opts, "no-aaaa")
	}
	return opts
}
