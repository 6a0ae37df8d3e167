package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/wainnrooh/internal/logger"
	catalogrepo "github.com/kailas-cloud/wainnrooh/internal/repository/catalog"
	catalogUC "github.com/kailas-cloud/wainnrooh/internal/usecase/catalog"
	intentUC "github.com/kailas-cloud/wainnrooh/internal/usecase/intent"
	searchUC "github.com/kailas-cloud/wainnrooh/internal/usecase/search"
)

// app is the in-process service graph a command runs against.
type app struct {
	catalog *catalogUC.Service
	search  *searchUC.Service
	intent  *intentUC.Service
}

// catalogPath resolves --catalog, then PLACES_CATALOG, then the default.
func catalogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString(flagCatalog); p != "" {
		return p
	}
	if p := os.Getenv("PLACES_CATALOG"); p != "" {
		return p
	}
	return DefaultCatalogPath
}

func outputJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool(flagJSON)
	return v
}

// loadApp reads the catalog and wires the services. Recent searches are not
// recorded: a CLI process has no client to remember them for.
func loadApp(cmd *cobra.Command) (context.Context, *app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.NewLogger("cli")
	if err != nil {
		return nil, nil, err
	}
	ctx = logger.ContextWithLogger(ctx, log)

	path := catalogPath(cmd)
	catalog := catalogUC.New(catalogrepo.NewFileLoader(path))
	if _, err := catalog.Reload(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	log.Debug("catalog ready", zap.String("path", path))

	return ctx, &app{
		catalog: catalog,
		search:  searchUC.New(catalog, nil),
		intent:  intentUC.New(catalog, nil),
	}, nil
}
