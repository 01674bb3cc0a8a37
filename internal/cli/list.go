package cli

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/eldritch-assets/pkg/names"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category...]",
		Short: "List asset names by category",
		Long:  "List asset names grouped by category. With no arguments every category is printed in declaration order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cats []names.Category
			if len(args) == 0 {
				cats = a.registry.Categories()
			} else {
				for _, name := range args {
					c, err := a.registry.Category(name)
					if err != nil {
						return fmt.Errorf("%w (known: %s)", err, strings.Join(a.registry.CategoryNames(), ", "))
					}
					cats = append(cats, c)
				}
			}

			out := cmd.OutOrStdout()
			for i, c := range cats {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%d)", c.Name, c.Len())))
				if c.Len() == 0 {
					fmt.Fprintln(out, mutedStyle.Render("(empty)"))
					continue
				}
				fmt.Fprintln(out, wordwrap.String(strings.Join(c.Items, ", "), a.cfg.ListWidth))
			}
			return nil
		},
	}
}
