package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eykd/nanoid-go/internal/domain"
)

// GenerateRequest describes one generate invocation after all defaults,
// config and flags have been merged.
type GenerateRequest struct {
	Alphabet   domain.Alphabet
	Size       int
	Count      int
	Workers    int
	Seed       *uint64
	AppendPath string
	Logger     *slog.Logger
}

// GenerateResult holds the outcome of a generate operation.
type GenerateResult struct {
	IDs        []string `json:"ids"`
	Alphabet   string   `json:"alphabet"`
	Size       int      `json:"size"`
	AppendedTo string   `json:"appended_to,omitempty"`
}

// GenerateRunner defines the interface for running the generate operation.
type GenerateRunner interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// NewGenerateCmd creates the generate command with the given runner.
func NewGenerateCmd(runner GenerateRunner, load ConfigLoader) *cobra.Command {
	var (
		shape      alphabetFlags
		count      int
		workers    int
		seed       uint64
		appendPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:          "generate",
		Aliases:      []string{"gen", "g"},
		Short:        "Generate one or more IDs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := shape.resolve(cmd, load)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("count") {
				c.Count = count
			}
			if flags.Changed("workers") {
				c.Workers = workers
			}
			if err := c.Validate(); err != nil {
				return &UsageError{Err: err}
			}
			alphabet, err := c.ResolveAlphabet()
			if err != nil {
				return &UsageError{Err: err}
			}

			logger := newLogger(cmd.ErrOrStderr(), GetVerbose())
			req := GenerateRequest{
				Alphabet:   alphabet,
				Size:       c.Size,
				Count:      c.Count,
				Workers:    c.Workers,
				AppendPath: appendPath,
				Logger:     logger,
			}
			if flags.Changed("seed") {
				req.Seed = &seed
				if req.Workers > 1 {
					logger.Warn("seeded output order is only reproducible with --workers=1",
						slog.Int("workers", req.Workers))
				}
			}

			result, err := runner.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			switch {
			case jsonOutput:
				writeJSON(cmd.OutOrStdout(), result)
			case result.AppendedTo != "":
				fmt.Fprintf(cmd.ErrOrStderr(), "Appended %d IDs to %s\n", len(result.IDs), result.AppendedTo)
			default:
				for _, id := range result.IDs {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
			}
			return nil
		},
	}

	shape.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of IDs to generate (env: NANOID_COUNT)")
	cmd.Flags().IntVar(&workers, "workers", 1, "Goroutines used for large batches (env: NANOID_WORKERS)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed a deterministic source; output is reproducible and NOT secret")
	cmd.Flags().StringVar(&appendPath, "append", "", "Append IDs to this file under an advisory lock instead of printing them")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
