package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// FacetsCmd creates the facets command.
func FacetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "List filter values present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			facets, err := a.search.Facets(ctx)
			if err != nil {
				return fmt.Errorf("facets failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if outputJSON(cmd) {
				return printJSON(out, facets)
			}
			printFacetGroup(out, "Categories", facets.Categories)
			printFacetGroup(out, "Neighborhoods", facets.Neighborhoods)
			printFacetGroup(out, "Audiences", facets.Audiences)
			printFacetGroup(out, "Perfect for", facets.PerfectFor)
			fmt.Fprintln(out, "Price levels:")
			for _, l := range facets.PriceLevels {
				fmt.Fprintf(out, "  %s %s\n", l, l.Label())
			}
			return nil
		},
	}
}

func printFacetGroup(w io.Writer, title string, values []searchUC.FacetValue) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, v := range values {
		name := v.Value
		if v.Label != "" && v.Label != v.Value {
			name = v.Label + " (" + v.Value + ")"
		}
		fmt.Fprintf(w, "  %-24s %d\n", name, v.Count)
	}
}
