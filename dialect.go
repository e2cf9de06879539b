package resolvconf

import "fmt"

// Dialect selects which platform's grammar rules apply during a parse.
// The grammar itself is shared; dialects only move a handful of
// divergence points: which directives and options exist, whether unknown
// ones are errors, the search list cap, and whether domain and search
// displace each other.
type Dialect int

const (
	// DialectGlibc follows man 5 resolv.conf on Linux. The domain and
	// search directives are mutually exclusive, the search list holds at
	// most 6 entries, and unknown directives or options are errors.
	DialectGlibc Dialect = iota

	// DialectPermissive relaxes DialectGlibc: domain and search coexist,
	// the search list is unbounded, and unknown input is skipped.
	DialectPermissive

	// DialectMacOS follows man 5 resolver on macOS. A port directive is
	// accepted, only the debug, ndots and timeout options exist, the
	// search list holds at most 6 entries, and domain and search are not
	// mutually exclusive.
	DialectMacOS
)

func (d Dialect) String() string {
	switch d {
	case DialectGlibc:
		return "glibc"
	case DialectPermissive:
		return "permissive"
	case DialectMacOS:
		return "macos"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// ParseDialect maps the name used in flags and settings files back to a
// Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "glibc":
		return DialectGlibc, nil
	case "permissive":
		return DialectPermissive, nil
	case "macos":
		return DialectMacOS, nil
	}
	return 0, fmt.Errorf("unknown dialect %q", s)
}

// strict dialects report unknown directives and options as errors.
func (d Dialect) strict() bool { return d != DialectPermissive }

// maxSearch returns the search list cap applied per directive, or 0 for
// unbounded.
func (d Dialect) maxSearch() int {
	if d == DialectPermissive {
		return 0
	}
	return MaxSearchEntries
}

// exclusiveDomainSearch reports whether the domain and search directives
// clear each other's stored value when applied.
func (d Dialect) exclusiveDomainSearch() bool { return d == DialectGlibc }

func (d Dialect) allowsPort() bool { return d == DialectMacOS }

// allowsOption reports whether the dialect admits an option name into
// the shared option table at all. Only macOS trims the table, down to
// the three options its resolver honors.
func (d Dialect) allowsOption(name string) bool {
	if d != DialectMacOS {
		return true
	}
	switch name {
	case "debug", "ndots", "timeout":
		return true
	}
	return false
}

// ErrorPolicy selects how a parse reacts to malformed lines.
type ErrorPolicy int

const (
	// PolicyFailFast stops at the first malformed line and returns its
	// error alone, with no Config.
	PolicyFailFast ErrorPolicy = iota

	// PolicyCollectAll keeps scanning: malformed lines are skipped and
	// reported together as a *multierror.Error, while every well-formed
	// line still lands in the returned Config.
	PolicyCollectAll
)

func (p ErrorPolicy) String() string {
	switch p {
	case PolicyFailFast:
		return "fail-fast"
	case PolicyCollectAll:
		return "collect-all"
	default:
		return fmt.Sprintf("ErrorPolicy(%d)", int(p))
	}
}
