package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/munichmade/resolvconf"
	"github.com/munichmade/resolvconf/internal/resolvfile"
)

// CheckResult represents the result of a single check.
type CheckResult struct {
	Name       string
	Passed     bool
	Message    string
	Suggestion string
}

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Run diagnostic checks on resolv.conf files",
	Long: `Run diagnostic checks against one or more resolv.conf files.
With no arguments the system's effective resolver configuration is
checked, following the systemd-resolved stub to its uplink file.

Checks include:
  - File is readable and parses under the selected dialect
  - At least one nameserver is configured
  - Nameserver and search list lengths within resolver limits
  - systemd-resolved stub indirection`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	parser, err := newParser()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	files := args
	if len(files) == 0 {
		files = []string{resolvfile.Path()}
	}

	// Check files concurrently, print in argument order.
	results := make([][]CheckResult, len(files))
	var g errgroup.Group
	for i, path := range files {
		g.Go(func() error {
			results[i] = checkFile(parser, path)
			return nil
		})
	}
	_ = g.Wait()

	var failures int
	for i, path := range files {
		fmt.Printf("\nChecking %s...\n", path)
		for _, result := range results[i] {
			printResult(result)
			if !result.Passed {
				failures++
			}
		}
	}

	fmt.Println()
	if failures == 0 {
		fmt.Println("All checks passed!")
	} else {
		fmt.Printf("%d check(s) failed\n", failures)
		os.Exit(1)
	}
}

func printResult(r CheckResult) {
	if r.Passed {
		fmt.Printf("  ✓ %s\n", r.Message)
	} else {
		fmt.Printf("  ✗ %s\n", r.Message)
		if r.Suggestion != "" {
			fmt.Printf("    → %s\n", r.Suggestion)
		}
	}
}

// checkFile runs every check against a single file.
func checkFile(parser resolvconf.Parser, path string) []CheckResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return []CheckResult{{
			Name:    "read",
			Passed:  false,
			Message: fmt.Sprintf("cannot read file: %v", err),
		}}
	}

	cfg, err := parser.Parse(data)
	results := parseResults(err)
	if cfg == nil {
		return results
	}

	results = append(results,
		checkHasNameserver(cfg),
		checkNameserverLimit(cfg),
		checkSearchLimit(cfg),
		checkStubResolver(cfg, path),
	)
	return results
}

// parseResults converts a parse error into check results, one per
// malformed line when every error was collected.
func parseResults(err error) []CheckResult {
	if err == nil {
		return []CheckResult{{
			Name:    "parse",
			Passed:  true,
			Message: "file parses cleanly",
		}}
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		results := make([]CheckResult, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			results = append(results, parseFailure(e))
		}
		return results
	}

	return []CheckResult{parseFailure(err)}
}

func parseFailure(err error) CheckResult {
	result := CheckResult{
		Name:    "parse",
		Passed:  false,
		Message: fmt.Sprintf("parse error: %v", err),
	}
	if errors.Is(err, resolvconf.ErrInvalidDirective) || errors.Is(err, resolvconf.ErrInvalidOption) {
		result.Suggestion = "Retry with --dialect permissive to skip unrecognized input"
	}
	return result
}

func checkHasNameserver(cfg *resolvconf.Config) CheckResult {
	result := CheckResult{Name: "nameservers"}

	if len(cfg.Nameservers) == 0 {
		result.Passed = false
		result.Message = "no nameservers configured"
		result.Suggestion = "Add a nameserver line; the resolver falls back to localhost without one"
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("%d nameserver(s) configured", len(cfg.Nameservers))
	return result
}

func checkNameserverLimit(cfg *resolvconf.Config) CheckResult {
	result := CheckResult{Name: "nameserver_limit"}

	if n := len(cfg.Nameservers); n > resolvconf.MaxNameservers {
		result.Passed = false
		result.Message = fmt.Sprintf("%d nameservers listed, resolvers use only the first %d", n, resolvconf.MaxNameservers)
		result.Suggestion = "Remove the extra nameserver lines"
		return result
	}

	result.Passed = true
	result.Message = "nameserver count within resolver limits"
	return result
}

func checkSearchLimit(cfg *resolvconf.Config) CheckResult {
	result := CheckResult{Name: "search_limit"}

	if n := len(cfg.LastSearchOrDomain()); n > resolvconf.MaxSearchEntries {
		result.Passed = false
		result.Message = fmt.Sprintf("%d search entries listed, resolvers use only the first %d", n, resolvconf.MaxSearchEntries)
		result.Suggestion = "Trim the search list"
		return result
	}

	result.Passed = true
	result.Message = "search list within resolver limits"
	return result
}

func checkStubResolver(cfg *resolvconf.Config, path string) CheckResult {
	result := CheckResult{Name: "stub_resolver", Passed: true}

	if path == resolvfile.DefaultPath && resolvfile.IsStubConfig(cfg) {
		result.Message = fmt.Sprintf("systemd-resolved stub in use, uplink at %s", resolvfile.SystemdResolvedPath)
		return result
	}

	result.Message = "nameservers are queried directly"
	return result
}
