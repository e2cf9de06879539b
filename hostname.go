package resolvconf

import "strings"

// DomainSuffixFromHostname extracts the implicit domain from a system
// hostname: everything after the first dot, provided at least two
// characters follow it. Resolvers fall back to this when a file names
// neither domain nor search. The caller supplies the hostname, so the
// helper itself stays free of system calls.
func DomainSuffixFromHostname(hostname string) (string, bool) {
	_, suffix, ok := strings.Cut(hostname, ".")
	if !ok || len(suffix) < 2 {
		return "", false
	}
	return suffix, true
}
