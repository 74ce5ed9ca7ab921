// Package utils provides utility functions for CLI commands in gitlabctl.
package utils

import (
	"io"
	"log/slog"

	"github.com/gitlabctl/gitlabctl/cmd/output"
)

// HandleCommandError logs a failed command and prints it in red to w
func HandleCommandError(w io.Writer, err error, context ...any) {
	slog.Error("Command failed", append([]any{"error", err}, context...)...)
	output.Fprint(w, output.Error, "Error: %v", err) // nolint:errcheck
}
