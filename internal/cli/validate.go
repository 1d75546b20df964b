package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/paint/internal/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a paint config file",
		Long: `Load a config file and check it against the embedded schema.

Board dimensions must be within 1..256, fps within 1..120, the palette must
be non-empty without duplicates, and the ink must be one of the palette
colours.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func runValidate(cmd *cobra.Command, opts *RootOptions, path string) error {
	f := opts.formatter(cmd)

	cfg, err := config.Load(path)
	if err != nil {
		if config.IsValidationError(err) {
			return f.Fail(ExitFailure, CodeConfigInvalid, "config is invalid", err)
		}
		return f.Fail(ExitCommandError, CodeConfigLoad, "failed to load config", err)
	}

	if opts.Format == "json" {
		return f.Success(cfg)
	}
	return f.Success(fmt.Sprintf("✓ %s: %dx%d board, %d colours, ink %s, %d fps",
		path, cfg.Rows, cfg.Cols, len(cfg.Palette), cfg.Ink, cfg.FPS))
}
