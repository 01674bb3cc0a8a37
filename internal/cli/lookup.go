package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <key>...",
		Short: "Resolve asset keys to their canonical server names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			l := a.registry.Lookup()

			missing := 0
			for _, key := range args {
				name, ok := l.Resolve(key)
				if !ok {
					missing++
					fmt.Fprintf(out, "%s: %s\n", key, errorStyle.Render("not found"))
					continue
				}
				fmt.Fprintf(out, "%s -> %s\n", key, name)
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d keys not found", missing, len(args))
			}
			return nil
		},
	}
}
