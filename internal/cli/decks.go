package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/eldritch-assets/pkg/cards"
)

func (a *app) decksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decks [deck]",
		Short: "Show the card composition of the item decks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decks := cards.Decks
			if len(args) == 1 {
				d, err := cards.ParseDeck(args[0])
				if err != nil {
					return err
				}
				decks = []cards.Deck{d}
			}

			out := cmd.OutOrStdout()
			for i, d := range decks {
				pile, err := cards.BuildDeck(d)
				if err != nil {
					return err
				}
				copies, err := cards.Copies(d)
				if err != nil {
					return err
				}

				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%d cards)", d, len(pile))))

				// BuildDeck keeps copies adjacent, so printing on change preserves deck order.
				prev := ""
				for _, name := range pile {
					if name == prev {
						continue
					}
					prev = name
					fmt.Fprintf(out, "  %dx %s\n", copies[name], name)
				}

				catalogNames, err := cards.Names(d)
				if err != nil {
					return err
				}
				for _, name := range catalogNames {
					if copies[name] == 0 {
						fmt.Fprintln(out, mutedStyle.Render("  not shuffled in: "+name))
					}
				}
			}
			return nil
		},
	}
}
