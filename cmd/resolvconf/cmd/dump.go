package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/munichmade/resolvconf"
	"github.com/munichmade/resolvconf/internal/resolvfile"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Show a parsed resolv.conf file as structured data",
	Long: `Parse a resolv.conf file and print the result as YAML or JSON.

The output carries two views: the directives as written, and under
'client' the settings a DNS client library would actually use, with
defaults filled in.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDump,
}

// Summary is the serializable view of a parsed file.
type Summary struct {
	Path        string        `json:"path" yaml:"path"`
	Dialect     string        `json:"dialect" yaml:"dialect"`
	Nameservers []string      `json:"nameservers" yaml:"nameservers"`
	Domain      string        `json:"domain,omitempty" yaml:"domain,omitempty"`
	Search      []string      `json:"search,omitempty" yaml:"search,omitempty"`
	Sortlist    []string      `json:"sortlist,omitempty" yaml:"sortlist,omitempty"`
	Lookup      []string      `json:"lookup,omitempty" yaml:"lookup,omitempty"`
	Family      []string      `json:"family,omitempty" yaml:"family,omitempty"`
	Port        uint16        `json:"port,omitempty" yaml:"port,omitempty"`
	Options     []string      `json:"options,omitempty" yaml:"options,omitempty"`
	Client      ClientSummary `json:"client" yaml:"client"`
}

// ClientSummary mirrors the fields a DNS client library consumes.
type ClientSummary struct {
	Servers  []string `json:"servers" yaml:"servers"`
	Search   []string `json:"search,omitempty" yaml:"search,omitempty"`
	Port     string   `json:"port" yaml:"port"`
	Ndots    int      `json:"ndots" yaml:"ndots"`
	Timeout  int      `json:"timeout" yaml:"timeout"`
	Attempts int      `json:"attempts" yaml:"attempts"`
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "output", "o", "", "output format: yaml or json (default from config)")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) {
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
	if err != nil {
		// Collected errors still leave a usable config behind.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cfg == nil {
			os.Exit(1)
		}
	}

	summary := summarize(cfg, path, parser.Dialect)

	switch format := outputFormat(); format {
	case "yaml":
		data, err := yaml.Marshal(summary)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(summary)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", format)
		os.Exit(1)
	}
}

// outputFormat resolves the dump encoding: the flag wins, then the
// stored settings.
func outputFormat() string {
	if dumpFormat != "" {
		return dumpFormat
	}
	if settings != nil {
		return settings.Output.Format
	}
	return "yaml"
}

// summarize converts a parsed configuration into its serializable view.
func summarize(cfg *resolvconf.Config, path string, dialect resolvconf.Dialect) Summary {
	s := Summary{
		Path:    path,
		Dialect: dialect.String(),
		Port:    cfg.Port,
		Options: cfg.OptionStrings(),
	}

	for _, ns := range cfg.Nameservers {
		s.Nameservers = append(s.Nameservers, ns.String())
	}
	if domain, ok := cfg.Domain(); ok {
		s.Domain = domain
	}
	if search, ok := cfg.Search(); ok {
		s.Search = search
	}
	for _, n := range cfg.Sortlist {
		s.Sortlist = append(s.Sortlist, n.String())
	}
	for _, l := range cfg.Lookup {
		s.Lookup = append(s.Lookup, string(l))
	}
	for _, f := range cfg.Family {
		s.Family = append(s.Family, string(f))
	}

	cc := cfg.ClientConfig()
	s.Client = ClientSummary{
		Servers:  cc.Servers,
		Search:   cc.Search,
		Port:     cc.Port,
		Ndots:    cc.Ndots,
		Timeout:  cc.Timeout,
		Attempts: cc.Attempts,
	}

	return s
}
