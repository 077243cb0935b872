package config

import (
	"fmt"
	"os"
)

// Process exit codes used by command entry points.
const (
	ExitCodeFailure = 1
	ExitCodeConfig  = 2
)

// Exitf writes a formatted message to stderr and exits with code. Codes
// below one are reported as ExitCodeFailure.
func Exitf(code int, format string, args ...any) {
	if code < ExitCodeFailure {
		code = ExitCodeFailure
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
