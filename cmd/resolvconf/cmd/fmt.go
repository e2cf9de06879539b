package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/munichmade/resolvconf/internal/privilege"
	"github.com/munichmade/resolvconf/internal/resolvfile"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite a resolv.conf file in canonical form",
	Long: `Parse a resolv.conf file and print it back in canonical directive
order: nameservers first, then domain and search with the authoritative
one last, then sortlist, lookup, family, and options. Comments and
defaulted options are dropped.

By default the result goes to stdout. With --write the file is
replaced atomically, which requires root for system files.

Examples:
  resolvconf fmt                      # format the system file to stdout
  resolvconf fmt ./resolv.conf        # format a local file to stdout
  sudo resolvconf fmt --write         # canonicalize /etc/resolv.conf`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file instead of printing to stdout")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) {
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
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if cfg == nil {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Continuing with the lines that parsed.")
	}

	if !fmtWrite {
		fmt.Print(cfg.String())
		return
	}

	if !resolvfile.IsManaged(path) {
		slog.Debug("rewriting a file not previously written by resolvconf", "path", path)
	}

	if err := resolvfile.Write(path, cfg); err != nil {
		if errors.Is(err, os.ErrPermission) && !privilege.IsRoot() {
			if err := privilege.RequireRoot(fmt.Sprintf("rewriting %s", path)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return // not reached; RequireRoot re-executed the command
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rewrote %s\n", path)
}
