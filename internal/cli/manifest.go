package cli

import (
	"github.com/spf13/cobra"

	"github.com/jwebster45206/eldritch-assets/pkg/manifest"
)

func (a *app) manifestCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the full asset manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := manifest.ParseFormat(format)
			if err != nil {
				return err
			}
			m := manifest.FromRegistry(a.registry)
			a.log.Debug("Encoding manifest", "format", string(f), "version", m.Version.String())
			return m.Encode(cmd.OutOrStdout(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
