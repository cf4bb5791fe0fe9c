package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/nanoid-go/internal/config"
)

// ConfigLoader returns the effective configuration before flag overrides.
type ConfigLoader func() (config.Config, error)

func newConfigLoader(deps Deps) ConfigLoader {
	return func() (config.Config, error) {
		dir, err := deps.Getwd()
		if err != nil {
			return config.Config{}, fmt.Errorf("getting working directory: %w", err)
		}
		return config.Load(configPath, dir, deps.Getenv)
	}
}

// alphabetFlags are the flags shared by commands that describe an ID shape.
type alphabetFlags struct {
	alphabet string
	preset   string
	size     int
}

func (f *alphabetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.alphabet, "alphabet", "a", "", "Symbols to draw from (env: NANOID_ALPHABET)")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Named alphabet, see 'nanoid presets' (env: NANOID_PRESET)")
	cmd.Flags().IntVarP(&f.size, "size", "s", 0, "Number of symbols per ID (env: NANOID_SIZE)")
}

// resolve loads the configuration and applies the flags the user set.
func (f *alphabetFlags) resolve(cmd *cobra.Command, load ConfigLoader) (config.Config, error) {
	c, err := load()
	if err != nil {
		return config.Config{}, &ContextError{Op: "config", Err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("alphabet") && flags.Changed("preset") {
		return config.Config{}, &UsageError{Err: config.ErrAlphabetAndPreset}
	}
	if flags.Changed("alphabet") {
		c.Alphabet, c.Preset = f.alphabet, ""
	}
	if flags.Changed("preset") {
		c.Alphabet, c.Preset = "", f.preset
	}
	if flags.Changed("size") {
		c.Size = f.size
	}
	return c, nil
}
