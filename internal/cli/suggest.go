package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SuggestCmd creates the suggest command.
func SuggestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <partial>",
		Short: "Autocomplete a partial query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			items, err := a.search.Suggest(ctx, args[0], limit)
			if err != nil {
				return fmt.Errorf("suggest failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if outputJSON(cmd) {
				return printJSON(out, items)
			}
			for _, s := range items {
				if s.Subtitle != "" {
					fmt.Fprintf(out, "%s %s  (%s)\n", s.Icon, s.Text, s.Subtitle)
				} else {
					fmt.Fprintf(out, "%s %s\n", s.Icon, s.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 8, "Maximum number of suggestions")
	return cmd
}
