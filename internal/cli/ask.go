package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AskCmd creates the ask command.
func AskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant in natural language",
		Long: `Parses a natural-language request into filters and answers with matching places.

Examples:
  placectl ask "مطعم رخيص في العليا"
  placectl ask "افضل 3 كافيهات للعوائل"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			reply, err := a.intent.Ask(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("ask failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if outputJSON(cmd) {
				return printJSON(out, reply)
			}
			fmt.Fprintln(out, reply.Message)
			if len(reply.Intent.MatchedFilters) > 0 {
				fmt.Fprintf(out, "[%s]\n", strings.Join(reply.Intent.MatchedFilters, "، "))
			}
			for i := range reply.Places {
				fmt.Fprintf(out, "%d. %s\n", i+1, placeLine(&reply.Places[i]))
			}
			return nil
		},
	}
}
