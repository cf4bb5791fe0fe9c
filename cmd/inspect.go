package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/nanoid-go/internal/nanoid"
)

// NewInspectCmd creates the inspect command, which reports mask, batch size
// and collision resistance for an alphabet and size.
func NewInspectCmd(load ConfigLoader) *cobra.Command {
	var (
		shape      alphabetFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:          "inspect",
		Short:        "Show the strength and cost of IDs for an alphabet and size",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := shape.resolve(cmd, load)
			if err != nil {
				return err
			}
			if err := c.ValidateShape(); err != nil {
				return &UsageError{Err: err}
			}
			alphabet, err := c.ResolveAlphabet()
			if err != nil {
				return &UsageError{Err: err}
			}
			g, err := nanoid.NewGenerator(nanoid.WithAlphabet(alphabet), nanoid.WithSize(c.Size))
			if err != nil {
				return &UsageError{Err: err}
			}
			stats := g.Stats()

			if jsonOutput {
				writeJSON(cmd.OutOrStdout(), stats)
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Alphabet length:   %d\n", stats.AlphabetLen)
			fmt.Fprintf(w, "ID size:           %d\n", stats.Size)
			fmt.Fprintf(w, "Mask:              %d\n", stats.Mask)
			fmt.Fprintf(w, "Bytes per batch:   %d\n", stats.Step)
			fmt.Fprintf(w, "Acceptance rate:   %.1f%%\n", stats.AcceptanceRate*100)
			fmt.Fprintf(w, "Entropy:           %.1f bits\n", stats.EntropyBits)
			fmt.Fprintf(w, "IDs for 1%% risk:   %.3g\n", stats.IDsForCollision)
			return nil
		},
	}

	shape.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
