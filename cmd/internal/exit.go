package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/saylorsolutions/xorb64/pkg/xorb64"
)

const (
	ExitFailure     = 1
	ExitInvalidArgs = 2
)

// ExitCode picks the process exit code for err.
// Argument problems exit with ExitInvalidArgs, anything else with ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, xorb64.ErrInvalidArguments):
		return ExitInvalidArgs
	default:
		return ExitFailure
	}
}

// Fatal will Echo the error and os.Exit with the code from ExitCode.
func Fatal(err error) {
	Echo("Error: %v", err)
	os.Exit(ExitCode(err))
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
