package config

import (
	"fmt"
	"os"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// ExitErr writes err to stderr and exits with the status its error code
// maps to.
func ExitErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(apperrors.GetCode(err).ExitCode())
}
