package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dpizetta/mrdiagram/internal/server"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		catalogPath string
		addr        string
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and icons over HTTP",
		Long: `Serve the catalog and icons over HTTP.

Endpoints:
  GET /api/shapes           catalog entries (filter with ?category=)
  GET /api/shapes/{id}      one entry with its generated samples
  GET /icons/{id}.svg       rendered SVG icon
  GET /icons/{id}.png       rendered PNG icon

Icon endpoints accept width, height, size, points and stroke query
parameters. Rendered icons share the CLI's local cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(cat, runner, c.Logger).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			c.Logger.Info("serving", "addr", addr, "shapes", len(cat.Shapes))
			printInfo("Listening on %s", addr)
			printNextStep("Browse the catalog", fmt.Sprintf("curl http://%s/api/shapes", listenHost(addr)))

			select {
			case err := <-errCh:
				return fmt.Errorf("serve: %w", err)
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("shutdown: %w", err)
			}
			c.Logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "shape catalog JSON file (default: built-in catalog)")
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable icon caching")

	return cmd
}

// listenHost makes a bare ":8080" address usable in an example URL.
func listenHost(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
