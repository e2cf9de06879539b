// Package resolvconf parses and renders resolver configuration in the
// resolv.conf family of formats.
//
// The default parse follows the strict glibc grammar and stops at the
// first malformed line:
//
//	cfg, err := resolvconf.Parse(data)
//
// Platforms disagree on the finer rules, so a Parser can select a
// Dialect and an ErrorPolicy:
//
//	p := resolvconf.Parser{
//		Dialect: resolvconf.DialectMacOS,
//		Policy:  resolvconf.PolicyCollectAll,
//	}
//	cfg, err := p.ParseFile("/etc/resolver/internal")
//
// A Config renders back to canonical directive text with String, and
// the output re-parses to an equal Config under the same dialect.
// Parsing and formatting are pure computations over the given bytes;
// the package never touches the network and reads the filesystem only
// in ParseFile.
package resolvconf

import (
	"fmt"
	"os"
)

// Parser carries the settings for a parse. The zero value parses the
// strict glibc dialect and stops at the first error. Parsers are
// stateless; one value may be used from any number of goroutines.
type Parser struct {
	Dialect Dialect
	Policy  ErrorPolicy
}

// Parse runs the directive grammar over data.
//
// Under PolicyFailFast the first malformed line aborts the parse and
// the returned Config is nil. Under PolicyCollectAll the returned
// Config reflects every line that parsed, and the error, if any, is a
// *multierror.Error holding one *ParseError per malformed line.
func (p Parser) Parse(data []byte) (*Config, error) {
	return parse(data, p.Dialect, p.Policy)
}

// ParseFile reads path and parses its contents with p.
func (p Parser) ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.Parse(data)
}

// Parse parses data with a zero-value Parser: strict glibc grammar,
// stopping at the first malformed line.
func Parse(data []byte) (*Config, error) {
	return Parser{}.Parse(data)
}

// ParseFile reads path and parses it with a zero-value Parser.
func ParseFile(path string) (*Config, error) {
	return Parser{}.ParseFile(path)
}
