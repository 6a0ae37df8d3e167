// Package cli implements placectl, a command-line client that queries a
// catalog file directly without a running server.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/wainnrooh/internal/version"
)

// Flag names shared by every subcommand.
const (
	flagCatalog = "catalog"
	flagJSON    = "json"
)

// DefaultCatalogPath is used when --catalog and PLACES_CATALOG are unset.
const DefaultCatalogPath = "data/places.json"

// NewRootCmd creates the placectl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "placectl",
		Short: "Query a places catalog from the terminal",
		Long: `placectl loads a catalog JSON file and runs the same search, suggest,
assistant and facet logic as the API server.

Environment variables:
  PLACES_CATALOG   catalog path (overridden by --catalog)`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagCatalog, "", "Catalog JSON file (default: $PLACES_CATALOG or "+DefaultCatalogPath+")")
	rootCmd.PersistentFlags().Bool(flagJSON, false, "Output as JSON")

	rootCmd.AddCommand(SearchCmd())
	rootCmd.AddCommand(SuggestCmd())
	rootCmd.AddCommand(AskCmd())
	rootCmd.AddCommand(FacetsCmd())
	rootCmd.AddCommand(ShowCmd())
	rootCmd.AddCommand(SimilarCmd())

	return rootCmd
}
