// Package privilege re-runs the current command under sudo when a
// system resolver file cannot be written by the invoking user.
package privilege

import (
	"fmt"
	"os"
	"os/exec"
)

// IsRoot reports whether the process already has root privileges.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// RequireRoot re-executes the command under sudo with the original
// arguments, printing reason first. On success the sudo child carries
// the run to completion and this process exits with its status, so
// RequireRoot only returns on failure to launch. Under root it is a
// no-op.
func RequireRoot(reason string) error {
	if IsRoot() {
		return nil
	}

	fmt.Fprintf(os.Stderr, "Requesting administrator privileges: %s\n", reason)

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	cmd := exec.Command("sudo", append([]string{executable}, os.Args[1:]...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("sudo failed: %w", err)
	}

	os.Exit(0)
	return nil // never reached
}
