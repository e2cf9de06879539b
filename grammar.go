package resolvconf

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// parse drives the line loop. Every error surfaces as a value so the
// policy decides between aborting and collecting; line numbers are
// 1-based in everything reported.
func parse(data []byte, dialect Dialect, policy ErrorPolicy) (*Config, error) {
	cfg := New()
	merr := new(multierror.Error)
	for i, raw := range bytes.Split(data, []byte{'\n'}) {
		err := parseLine(cfg, dialect, raw)
		if err == nil {
			continue
		}
		perr := &ParseError{Line: i + 1, Err: err}
		if policy == PolicyFailFast {
			return nil, perr
		}
		merr = multierror.Append(merr, perr)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseLine classifies one raw line and applies it to cfg. Comment
// detection runs on raw bytes so a comment may contain invalid UTF-8;
// everything else must decode before the inline-comment cut and
// whitespace split.
func parseLine(cfg *Config, d Dialect, raw []byte) error {
	for _, c := range raw {
		if c == ' ' || c == '\t' {
			continue
		}
		if c == '#' || c == ';' {
			return nil
		}
		break
	}
	if !utf8.Valid(raw) {
		return ErrInvalidUTF8
	}
	text := string(raw)
	if i := strings.IndexAny(text, "#;"); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return applyDirective(cfg, d, fields[0], fields[1:])
}

// applyDirective dispatches on the keyword, which is case-sensitive.
// Arguments already parsed are applied even when a later token on the
// same line fails, matching resolver behavior of taking what it can.
func applyDirective(cfg *Config, d Dialect, keyword string, args []string) error {
	switch keyword {
	case "nameserver":
		if len(args) == 0 {
			return fmt.Errorf("%w: nameserver needs an address", ErrInvalidValue)
		}
		addr, err := ParseAddr(args[0])
		if err != nil {
			return err
		}
		cfg.Nameservers = append(cfg.Nameservers, addr)
		if len(args) > 1 {
			return ErrExtraData
		}

	case "domain":
		if len(args) == 0 {
			return fmt.Errorf("%w: domain needs a name", ErrInvalidValue)
		}
		if d.exclusiveDomainSearch() {
			cfg.search = nil
		}
		cfg.SetDomain(args[0])
		if len(args) > 1 {
			return ErrExtraData
		}

	case "search":
		if max := d.maxSearch(); max > 0 && len(args) > max {
			args = args[:max]
		}
		if d.exclusiveDomainSearch() {
			cfg.domain = nil
		}
		cfg.SetSearch(slices.Clone(args))

	case "sortlist":
		cfg.Sortlist = nil
		for _, tok := range args {
			netw, err := ParseNetwork(tok)
			if err != nil {
				return err
			}
			cfg.Sortlist = append(cfg.Sortlist, netw)
		}

	case "options":
		for _, tok := range args {
			if err := applyOption(cfg, d, tok); err != nil {
				return err
			}
		}

	case "lookup":
		for _, tok := range args {
			cfg.Lookup = append(cfg.Lookup, Lookup(tok))
		}

	case "family":
		for _, tok := range args {
			switch tok {
			case "inet4":
				cfg.Family = append(cfg.Family, FamilyInet4)
			case "inet6":
				cfg.Family = append(cfg.Family, FamilyInet6)
			default:
				return fmt.Errorf("%w: bad family %q", ErrInvalidValue, tok)
			}
		}

	case "port":
		if !d.allowsPort() {
			if d.strict() {
				return fmt.Errorf("%w: %q", ErrInvalidDirective, keyword)
			}
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("%w: port needs a number", ErrInvalidValue)
		}
		n, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("%w: bad port %q", ErrInvalidValue, args[0])
		}
		cfg.Port = uint16(n)
		if len(args) > 1 {
			return ErrExtraData
		}

	default:
		if d.strict() {
			return fmt.Errorf("%w: %q", ErrInvalidDirective, keyword)
		}
	}
	return nil
}

// applyOption applies one options token of the form key or key:value.
// Flag options tolerate a stray value; numeric options without one fall
// through to the unknown-option path.
func applyOption(cfg *Config, d Dialect, tok string) error {
	if strings.Count(tok, ":") > 1 {
		return ErrExtraData
	}
	key, value, hasValue := strings.Cut(tok, ":")
	if !d.allowsOption(key) {
		return fmt.Errorf("%w: %q", ErrInvalidOption, key)
	}
	switch key {
	case "ndots", "timeout", "attempts":
		if !hasValue {
			break
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s:%s", ErrInvalidOptionValue, key, value)
		}
		switch key {
		case "ndots":
			cfg.Ndots = uint32(n)
		case "timeout":
			cfg.Timeout = uint32(n)
		case "attempts":
			cfg.Attempts = uint32(n)
		}
		return nil
	case "debug":
		cfg.Debug = true
		return nil
	case "rotate":
		cfg.Rotate = true
		return nil
	case "no-check-names":
		cfg.NoCheckNames = true
		return nil
	case "inet6":
		cfg.Inet6 = true
		return nil
	case "ip6-bytestring":
		cfg.IP6Bytestring = true
		return nil
	case "ip6-dotint":
		cfg.IP6Dotint = true
		return nil
	case "no-ip6-dotint":
		cfg.IP6Dotint = false
		return nil
	case "edns0":
		cfg.EDNS0 = true
		return nil
	case "single-request":
		cfg.SingleRequest = true
		return nil
	case "single-request-reopen":
		cfg.SingleRequestReopen = true
		return nil
	case "no-tld-query":
		cfg.NoTLDQuery = true
		return nil
	case "use-vc":
		cfg.UseVC = true
		return nil
	case "no-reload":
		cfg.NoReload = true
		return nil
	case "trust-ad":
		cfg.TrustAD = true
		return nil
	case "no-aaaa":
		cfg.NoAAAA = true
		return nil
	}
	if d.strict() {
		return fmt.Errorf("%w: %q", ErrInvalidOption, key)
	}
	return nil
}
