// Package resolvfile locates and writes system resolv.conf files.
//
// On hosts running systemd-resolved, /etc/resolv.conf usually points at the
// local stub listener on 127.0.0.53 and the configuration actually in use
// lives at /run/systemd/resolve/resolv.conf. Path prefers the latter when
// the stub is detected.
package resolvfile

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/munichmade/resolvconf"
)

const (
	// DefaultPath is the location of the system resolver configuration.
	DefaultPath = "/etc/resolv.conf"

	// SystemdResolvedPath is where systemd-resolved keeps the uplink
	// configuration when /etc/resolv.conf points at its local stub.
	SystemdResolvedPath = "/run/systemd/resolve/resolv.conf"

	// ResolverDir is where macOS looks for per-domain resolver configurations.
	ResolverDir = "/etc/resolver"

	// managedHeader identifies resolv.conf files written by resolvconf.
	managedHeader = "# Generated by resolvconf - do not edit manually"
)

// ErrUnsupported is returned by per-domain resolver queries on platforms
// other than macOS.
var ErrUnsupported = errors.New("per-domain resolver files are only supported on macOS")

// systemdStub is the address of the systemd-resolved stub listener.
var systemdStub = netip.MustParseAddr("127.0.0.53")

var (
	effectivePath string
	pathOnce      sync.Once
)

// Path returns the path of the resolv.conf file that reflects the system's
// actual resolver configuration. The result is cached after the first call.
func Path() string {
	pathOnce.Do(func() {
		effectivePath = detect(DefaultPath, SystemdResolvedPath)
	})
	return effectivePath
}

// Reset clears the cached effective path.
// Useful for testing with different environment variables.
func Reset() {
	effectivePath = ""
	pathOnce = sync.Once{}
}

// detect checks whether candidate points at the systemd-resolved stub and,
// if so, returns alternate instead.
func detect(candidate, alternate string) string {
	data, err := os.ReadFile(candidate)
	if err != nil {
		return candidate
	}

	parser := resolvconf.Parser{
		Dialect: resolvconf.DialectPermissive,
		Policy:  resolvconf.PolicyCollectAll,
	}
	cfg, _ := parser.Parse(data)
	if cfg == nil {
		return candidate
	}

	if IsStubConfig(cfg) {
		if _, err := os.Stat(alternate); err == nil {
			slog.Debug("detected systemd-resolved stub, using uplink configuration", "path", alternate)
			return alternate
		}
	}

	return candidate
}

// IsStubConfig reports whether cfg points solely at the systemd-resolved
// stub listener.
func IsStubConfig(cfg *resolvconf.Config) bool {
	return len(cfg.Nameservers) == 1 && cfg.Nameservers[0] == systemdStub
}

// Write atomically replaces the file at path with the canonical rendering
// of cfg. The file is written with a provenance header and mode 0644.
func Write(path string, cfg *resolvconf.Config) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".resolv.conf-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	content := managedHeader + "\n" + cfg.String()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// IsManaged checks if the file at path was written by resolvconf.
func IsManaged(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	return strings.HasPrefix(string(content), managedHeader)
}

// ResolverPath returns the path of the per-domain resolver file for a domain.
func ResolverPath(domain string) string {
	return filepath.Join(ResolverDir, domain)
}
