package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/countrydir/internal/directory"
	"github.com/ziadkadry99/countrydir/internal/server"
	"github.com/ziadkadry99/countrydir/internal/web"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the country directory web server",
	Long: `Starts an HTTP server with the searchable country list, country detail
pages, the light/dark theme toggle and a JSON API under /api.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port := cfg.Server.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	themes, database, err := openThemes(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	client := newClient(cfg)
	catalog := directory.NewCatalog(client,
		directory.WithLocale(cfg.LocaleTag()),
		directory.WithLogger(logger),
	)
	resolver := directory.NewResolver(client, logger)

	handler, err := web.New(catalog, resolver, themes, logger)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           port,
		AllowAll:       cfg.Server.AllowAllOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second,
	}, logger)
	handler.RegisterRoutes(srv.Router())

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	// Warm the catalog so the first visitor does not wait for the fetch.
	go func() {
		if _, err := catalog.Ensure(ctx); err != nil {
			logger.Warn("preloading countries failed", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "countrydir %s starting on port %d\n", Version, port)
	fmt.Fprintf(os.Stderr, "  API: %s\n", cfg.APIBaseURL)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())

	return srv.Start()
}
