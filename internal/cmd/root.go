package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/planaudit/internal/config"
	"github.com/harrison/planaudit/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for planaudit
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planaudit",
		Short: "Audit task-checkbox progress across plan documents",
		Long: `Planaudit scans the markdown planning documents under docs/plans,
counts task-checkbox lines (done [x], in-progress [~], unchecked [ ]),
and prints per-document completion statistics with a short preview of
outstanding items.

The scan is read-only: documents are never modified and no state is
kept between runs.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(config.DefaultPath)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}

			log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return runAudit(cmd.OutOrStdout(), log)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	return cmd
}
