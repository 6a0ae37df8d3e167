package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/wainnrooh/internal/domain/search/filter"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/order"
	"github.com/kailas-cloud/wainnrooh/internal/domain/search/request"
)

// SearchCmd creates the search command.
func SearchCmd() *cobra.Command {
	var (
		params filter.Params
		sort   string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search places",
		Long: `Searches the catalog by free text and structured filters.

Examples:
  placectl search "كافيه حطين"
  placectl search --category مطعم --sort rating-desc -n 5
  placectl search --free --neighborhood العليا`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runSearch(cmd, query, params, order.Key(sort), limit)
		},
	}

	cmd.Flags().StringVar(&params.Category, "category", "", "Category code or label")
	cmd.Flags().StringVar(&params.Neighborhood, "neighborhood", "", "Neighborhood (Arabic or English)")
	cmd.Flags().StringVar(&params.Price, "price", "", "Price tier ($ to $$$$, or free)")
	cmd.Flags().StringVar(&params.Audience, "audience", "", "Audience tag")
	cmd.Flags().StringVar(&params.PerfectFor, "perfect-for", "", "Occasion tag")
	cmd.Flags().BoolVar(&params.FreeOnly, "free", false, "Only free places")
	cmd.Flags().Float64Var(&params.MinRating, "min-rating", 0, "Minimum rating (0-5)")
	cmd.Flags().StringVarP(&sort, "sort", "s", string(order.Relevance), fmt.Sprintf("Sort order %v", order.Keys))
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, params filter.Params, key order.Key, limit int) error {
	filters, err := filter.NewSet(params)
	if err != nil {
		return err
	}
	req, err := request.New(query, filters, key, limit, request.Limits{})
	if err != nil {
		return err
	}

	ctx, a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	page, err := a.search.Search(ctx, &req, "")
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputJSON(cmd) {
		type item struct {
			ID    string  `json:"id"`
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		}
		items := make([]item, len(page.Results))
		for i := range page.Results {
			items[i] = item{ID: page.Results[i].ID(), Name: page.Results[i].Place().NameAr, Score: page.Results[i].Score()}
		}
		return printJSON(out, map[string]any{"total": page.Total, "items": items})
	}

	if len(page.Results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}
	fmt.Fprintf(out, "Found %d results, showing %d:\n\n", page.Total, len(page.Results))
	for i := range page.Results {
		r := &page.Results[i]
		fmt.Fprintf(out, "%d. %s (%.1f)\n   ID: %s\n", i+1, placeLine(r.Place()), r.Score(), r.ID())
	}
	return nil
}
