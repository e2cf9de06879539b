package resolvconf

import "testing"

func TestConfig_ClientConfig(t *testing.T) {
	t.Run("maps servers, search and numerics", func(t *testing.T) {
		cfg := mustParse(t, "nameserver 8.8.8.8\nnameserver fe80::1%eth0\nsearch a.com b.com\noptions ndots:3 timeout:7 attempts:4")
		cc := cfg.ClientConfig()

		if len(cc.Servers) != 2 || cc.Servers[0] != "8.8.8.8" || cc.Servers[1] != "fe80::1%eth0" {
			t.Errorf("expected the servers in textual form, got %v", cc.Servers)
		}
		if len(cc.Search) != 2 || cc.Search[0] != "a.com" {
			t.Errorf("expected the search path, got %v", cc.Search)
		}
		if cc.Port != "53" {
			t.Errorf("expected the default port 53, got %q", cc.Port)
		}
		if cc.Ndots != 3 || cc.Timeout != 7 || cc.Attempts != 4 {
			t.Errorf("expected ndots=3 timeout=7 attempts=4, got %d %d %d",
				cc.Ndots, cc.Timeout, cc.Attempts)
		}
	})

	t.Run("authoritative domain becomes the search path", func(t *testing.T) {
		cfg := mustParse(t, "search a.com b.com\ndomain example.org")
		cc := cfg.ClientConfig()
		if len(cc.Search) != 1 || cc.Search[0] != "example.org" {
			t.Errorf("expected [example.org], got %v", cc.Search)
		}
	})

	t.Run("explicit port carries over", func(t *testing.T) {
		cfg, err := Parser{Dialect: DialectMacOS}.Parse([]byte("nameserver 127.0.0.1\nport 5553"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cc := cfg.ClientConfig(); cc.Port != "5553" {
			t.Errorf("expected port 5553, got %q", cc.Port)
		}
	})

	t.Run("mutating the result leaves the config alone", func(t *testing.T) {
		cfg := mustParse(t, "search a.com")
		cc := cfg.ClientConfig()
		cc.Search[0] = "changed"
		if got := cfg.LastSearchOrDomain(); got[0] != "a.com" {
			t.Errorf("expected the config to be unaffected, got %v", got)
		}
	})
}
