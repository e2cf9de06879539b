package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/munichmade/resolvconf"
	"github.com/munichmade/resolvconf/internal/resolvfile"
)

var domainsLimits bool

var domainsCmd = &cobra.Command{
	Use:   "domains [file]",
	Short: "Show the effective search domains",
	Long: `Show the domain suffixes the resolver appends to unqualified names.

The list comes from whichever of the domain and search directives was
applied last. When the file declares neither, the suffix is derived
from the machine's hostname, the same fallback the resolver itself
uses.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDomains,
}

func init() {
	domainsCmd.Flags().BoolVar(&domainsLimits, "limits", false, "apply resolver limits before listing")
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, args []string) {
	parser, err := newParser()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	path := resolvfile.Path()
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := parser.ParseFile(path)
	if err != nil && cfg == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if domainsLimits {
		cfg.ApplyGlibcLimits()
	}

	domains := cfg.LastSearchOrDomain()
	if domains == nil {
		hostname, err := os.Hostname()
		if err == nil {
			if suffix, ok := resolvconf.DomainSuffixFromHostname(hostname); ok {
				fmt.Printf("%s (derived from hostname)\n", suffix)
				return
			}
		}
		fmt.Println("No search domains configured.")
		return
	}

	if len(domains) == 0 {
		fmt.Println("Search list explicitly cleared.")
		return
	}

	for _, domain := range domains {
		fmt.Println(domain)
	}
}
