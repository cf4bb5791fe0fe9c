package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/MatusOllah/slogcolor"
)

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// newLogger returns a colored stderr logger. Debug records are emitted only
// in verbose mode.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := *slogcolor.DefaultOptions
	opts.Level = slog.LevelWarn
	if verbose {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slogcolor.NewHandler(w, &opts))
}
