// Package cmd contains the CLI commands for the nanoid application.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// verbose holds the global --verbose flag state.
var verbose bool

// configPath holds the global --config flag value.
var configPath string

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// NewRootCmd creates a new root command instance without subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nanoid",
		Short:         "Generate short, random, URL-safe IDs",
		Long:          "nanoid generates short random identifiers from a configurable alphabet without modulo bias.",
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (env: NANOID_CONFIG)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return cmd
}

// Deps are the process-level collaborators the command tree needs.
type Deps struct {
	Getwd  func() (string, error)
	Getenv func(string) string
}

// OSDeps returns Deps backed by the os package.
func OSDeps() Deps {
	return Deps{Getwd: os.Getwd, Getenv: os.Getenv}
}

// BuildCommandTree returns the root command with every subcommand wired to
// its production adapter.
func BuildCommandTree(deps Deps) *cobra.Command {
	root := NewRootCmd()
	loader := newConfigLoader(deps)

	root.AddCommand(
		NewGenerateCmd(&generateAdapter{}, loader),
		NewInspectCmd(loader),
		NewPresetsCmd(),
		NewConfigCmd(loader),
	)
	return root
}
