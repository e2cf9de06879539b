//go:build darwin

package resolvfile

import (
	"fmt"
	"os"
)

// ListResolverDomains returns the domains that have per-domain resolver
// files under /etc/resolver. Each file is named after the domain it
// configures and uses the macOS resolv.conf dialect.
func ListResolverDomains() ([]string, error) {
	entries, err := os.ReadDir(ResolverDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read resolver directory: %w", err)
	}

	var domains []string
	for _, entry := range entries {
		if !entry.IsDir() {
			domains = append(domains, entry.Name())
		}
	}

	return domains, nil
}
