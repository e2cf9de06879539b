package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/munichmade/resolvconf"
	"github.com/munichmade/resolvconf/internal/resolvfile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List per-domain resolver files (macOS)",
	Long: `List the per-domain resolver files under /etc/resolver.

macOS consults these files when resolving names under the domain each
file is named after. Entries are parsed with the macos dialect
regardless of --dialect.`,
	Run: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	domains, err := resolvfile.ListResolverDomains()
	if err != nil {
		if errors.Is(err, resolvfile.ErrUnsupported) {
			fmt.Fprintln(os.Stderr, "Error: per-domain resolver files are only supported on macOS")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if len(domains) == 0 {
		fmt.Println("No resolver files found in /etc/resolver/")
		return
	}

	parser := resolvconf.Parser{
		Dialect: resolvconf.DialectMacOS,
		Policy:  resolvconf.PolicyCollectAll,
	}

	fmt.Println("Per-domain resolvers:")
	for _, domain := range domains {
		cfg, err := parser.ParseFile(resolvfile.ResolverPath(domain))
		if cfg == nil {
			fmt.Printf("  *.%s (unreadable: %v)\n", domain, err)
			continue
		}

		fmt.Printf("  *.%s → %s\n", domain, describeResolver(cfg))
	}
}

// describeResolver renders the nameservers of a per-domain resolver file,
// with the port appended when one is set.
func describeResolver(cfg *resolvconf.Config) string {
	if len(cfg.Nameservers) == 0 {
		return "(no nameservers)"
	}

	servers := make([]string, 0, len(cfg.Nameservers))
	for _, ns := range cfg.Nameservers {
		s := ns.String()
		if cfg.Port != 0 {
			s = fmt.Sprintf("%s:%d", s, cfg.Port)
		}
		servers = append(servers, s)
	}

	return strings.Join(servers, ", ")
}
