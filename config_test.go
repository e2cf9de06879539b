package resolvconf

import (
	"net/netip"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	if len(cfg.Nameservers) != 0 {
		t.Errorf("expected no nameservers, got %v", cfg.Nameservers)
	}
	if _, ok := cfg.Domain(); ok {
		t.Error("expected no domain")
	}
	if _, ok := cfg.Search(); ok {
		t.Error("expected no search")
	}
	if got := cfg.LastSearchOrDomain(); got != nil {
		t.Errorf("expected no authoritative suffixes, got %v", got)
	}
	if cfg.Ndots != 1 || cfg.Timeout != 5 || cfg.Attempts != 2 {
		t.Errorf("expected ndots=1 timeout=5 attempts=2, got %d %d %d",
			cfg.Ndots, cfg.Timeout, cfg.Attempts)
	}
	if cfg.Debug || cfg.Rotate || cfg.Inet6 || cfg.IP6Dotint || cfg.UseVC || cfg.NoAAAA {
		t.Error("expected all boolean options to default to false")
	}
	if cfg.Port != 0 {
		t.Errorf("expected port unset, got %d", cfg.Port)
	}
}

func TestConfig_SettersKeepSiblingStorage(t *testing.T) {
	t.Run("SetSearch keeps the stored domain", func(t *testing.T) {
		cfg := New()
		cfg.SetDomain("example.com")
		cfg.SetSearch([]string{"a.com", "b.com"})

		if dom, ok := cfg.Domain(); !ok || dom != "example.com" {
			t.Errorf("expected the domain to stay stored, got %q (%v)", dom, ok)
		}
		if got := cfg.LastSearchOrDomain(); len(got) != 2 {
			t.Errorf("expected the search list to be authoritative, got %v", got)
		}
	})

	t.Run("SetDomain keeps the stored search", func(t *testing.T) {
		cfg := New()
		cfg.SetSearch([]string{"a.com"})
		cfg.SetDomain("example.com")

		if search, ok := cfg.Search(); !ok || len(search) != 1 {
			t.Errorf("expected the search to stay stored, got %v (%v)", search, ok)
		}
		got := cfg.LastSearchOrDomain()
		if len(got) != 1 || got[0] != "example.com" {
			t.Errorf("expected the domain to be authoritative, got %v", got)
		}
	})

	t.Run("nil search still counts as set", func(t *testing.T) {
		cfg := New()
		cfg.SetSearch(nil)
		search, ok := cfg.Search()
		if !ok || search == nil || len(search) != 0 {
			t.Errorf("expected an empty set search, got %v (%v)", search, ok)
		}
	})
}

func TestConfig_ApplyGlibcLimits(t *testing.T) {
	cfg := New()
	for _, s := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4", "10.0.0.5"} {
		cfg.Nameservers = append(cfg.Nameservers, netip.MustParseAddr(s))
	}
	cfg.SetSearch([]string{"a", "b", "c", "d", "e", "f", "g", "h"})

	cfg.ApplyGlibcLimits()

	if len(cfg.Nameservers) != 3 {
		t.Errorf("expected 3 nameservers after limiting, got %d", len(cfg.Nameservers))
	}
	search, _ := cfg.Search()
	if len(search) != 6 {
		t.Errorf("expected 6 search entries after limiting, got %d", len(search))
	}

	t.Run("short lists are untouched", func(t *testing.T) {
		small := New()
		small.Nameservers = append(small.Nameservers, netip.MustParseAddr("10.0.0.1"))
		small.SetSearch([]string{"a"})
		small.ApplyGlibcLimits()
		if len(small.Nameservers) != 1 {
			t.Errorf("expected 1 nameserver, got %d", len(small.Nameservers))
		}
		if search, _ := small.Search(); len(search) != 1 {
			t.Errorf("expected 1 search entry, got %d", len(search))
		}
	})
}

func TestConfig_Equal(t *testing.T) {
	build := func() *Config {
		cfg := New()
		cfg.Nameservers = append(cfg.Nameservers, netip.MustParseAddr("8.8.8.8"))
		cfg.SetDomain("example.com")
		cfg.SetSearch([]string{"a.com"})
		cfg.Rotate = true
		cfg.Ndots = 3
		return cfg
	}

	t.Run("identical builds compare equal", func(t *testing.T) {
		if !build().Equal(build()) {
			t.Error("expected equal configs")
		}
	})

	t.Run("selector participates", func(t *testing.T) {
		a, b := build(), build()
		b.SetDomain("example.com")
		if a.Equal(b) {
			t.Error("expected the selector to distinguish the configs")
		}
	})

	t.Run("stored but non-authoritative values participate", func(t *testing.T) {
		a, b := build(), build()
		b.SetDomain("other.org")
		b.SetSearch([]string{"a.com"})
		if a.Equal(b) {
			t.Error("expected the stored domain to distinguish the configs")
		}
	})

	t.Run("scalar options participate", func(t *testing.T) {
		a, b := build(), build()
		b.UseVC = true
		if a.Equal(b) {
			t.Error("expected UseVC to distinguish the configs")
		}
	})

	t.Run("nil handling", func(t *testing.T) {
		var nilCfg *Config
		if nilCfg.Equal(New()) {
			t.Error("expected nil to differ from a value")
		}
		if !nilCfg.Equal(nil) {
			t.Error("expected nil to equal nil")
		}
	})
}
