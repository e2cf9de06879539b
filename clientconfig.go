package resolvconf

import (
	"strconv"

	"github.com/miekg/dns"
)

// ClientConfig converts c into the shape github.com/miekg/dns clients
// consume. Nameservers keep their textual form, scope zones included,
// the search path follows LastSearchOrDomain, and an unset Port becomes
// the default 53. The numeric options carry over; everything else in c
// has no ClientConfig counterpart.
func (c *Config) ClientConfig() *dns.ClientConfig {
	servers := make([]string, 0, len(c.Nameservers))
	for _, ns := range c.Nameservers {
		servers = append(servers, ns.String())
	}
	port := "53"
	if c.Port != 0 {
		port = strconv.Itoa(int(c.Port))
	}
	return &dns.ClientConfig{
		Servers:  servers,
		Search:   append([]string(nil), c.LastSearchOrDomain()...),
		Port:     port,
		Ndots:    int(c.Ndots),
		Timeout:  int(c.Timeout),
		Attempts: int(c.Attempts),
	}
}
