package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/eykd/nanoid-go/internal/domain"
)

// PresetInfo describes one named alphabet.
type PresetInfo struct {
	Name     string `json:"name"`
	Alphabet string `json:"alphabet"`
	Length   int    `json:"length"`
}

// NewPresetsCmd creates the presets command.
func NewPresetsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "presets",
		Short:        "List the named alphabets",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := lo.Map(domain.PresetNames(), func(name string, _ int) PresetInfo {
				a, _ := domain.Preset(name)
				return PresetInfo{Name: name, Alphabet: a.String(), Length: a.Len()}
			})

			if jsonOutput {
				writeJSON(cmd.OutOrStdout(), infos)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range infos {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", p.Name, p.Length, p.Alphabet)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
