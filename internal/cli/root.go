package cli

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/eldritch-assets/internal/config"
	"github.com/jwebster45206/eldritch-assets/internal/logger"
	"github.com/jwebster45206/eldritch-assets/pkg/eldritch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *eldritch.Registry
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the assets command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var layout string

	cmd := &cobra.Command{
		Use:          "assets",
		Short:        "Inspect the eldritch asset name registry",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("layout") {
				cfg.MythosLayout, err = eldritch.ParseMythosLayout(layout)
				if err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.log = logger.Setup(cfg, cmd.ErrOrStderr())

			a.registry, err = eldritch.Build(eldritch.Options{MythosLayout: cfg.MythosLayout})
			if err != nil {
				logger.WithError(a.log, err).Error("Failed to build registry")
				return err
			}
			a.log.Debug("Registry built",
				"layout", a.registry.Layout().String(),
				"assets", len(a.registry.AssetNames()),
				"server_names", a.registry.Lookup().Len())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&layout, "layout", "", "mythos card layout: separate or legacy (overrides MYTHOS_LAYOUT)")

	cmd.AddCommand(
		a.listCmd(),
		a.manifestCmd(),
		a.lookupCmd(),
		a.checkCmd(),
		a.decksCmd(),
	)
	return cmd
}
