package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/nanoid-go/internal/config"
)

// NewConfigCmd creates the config command, which validates and prints the
// effective configuration after the file and environment have been applied.
func NewConfigCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:          "config",
		Short:        "Show the effective configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load()
			if err != nil {
				return &ContextError{Op: "config", Err: err}
			}
			if err := c.Validate(); err != nil {
				return &UsageError{Err: err}
			}

			out, err := config.Dump(c)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			source := c.Source
			if source == "" {
				source = "built-in defaults"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", source, out)
			return nil
		},
	}
}
