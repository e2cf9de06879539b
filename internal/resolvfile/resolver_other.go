//go:build !darwin

package resolvfile

// ListResolverDomains returns the domains that have per-domain resolver
// files under /etc/resolver. Only implemented for macOS.
func ListResolverDomains() ([]string, error) {
	return nil, ErrUnsupported
}
