package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// SimilarCmd creates the similar command.
func SimilarCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "similar <id>",
		Short: "List places like the given one",
		Long: `Lists places in the same category or neighborhood, closest first.

Examples:
  placectl similar p-102
  placectl similar p-102 -n 3 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			similar, err := a.search.Similar(ctx, args[0], limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputJSON(cmd) {
				type item struct {
					ID    string  `json:"id"`
					Name  string  `json:"name"`
					Score float64 `json:"score"`
				}
				items := make([]item, len(similar))
				for i := range similar {
					items[i] = item{ID: similar[i].ID(), Name: similar[i].Place().NameAr, Score: similar[i].Score()}
				}
				return printJSON(out, map[string]any{"place_id": args[0], "items": items})
			}

			if len(similar) == 0 {
				fmt.Fprintln(out, "No similar places.")
				return nil
			}
			for i := range similar {
				r := &similar[i]
				fmt.Fprintf(out, "%d. %s\n   ID: %s\n", i+1, placeLine(r.Place()), r.ID())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", searchUC.DefaultSimilarLimit, "Maximum number of places")
	return cmd
}
