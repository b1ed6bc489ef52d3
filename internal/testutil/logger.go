package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a slog.Logger that writes nowhere, keeping test
// output free of log noise
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
