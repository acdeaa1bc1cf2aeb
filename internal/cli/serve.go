package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/config"
	"github.com/cmlabs-hris/biztime-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/biztime-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/database/migrations"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/observability"
	companyService "github.com/cmlabs-hris/biztime-backend-go/internal/service/company"
	invoiceService "github.com/cmlabs-hris/biztime-backend-go/internal/service/invoice"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	store   string
	migrate bool
	seed    bool
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, opts)
		},
	}
	cmd.Flags().StringVar(&opts.store, "store", storePostgres, "storage backend: postgres or memory")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "apply pending migrations before serving (postgres only)")
	cmd.Flags().BoolVar(&opts.seed, "seed", false, "insert the sample companies and invoices before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, opts serveOptions) error {
	logger, level, err := newLogger(os.Stdout, cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if opts.migrate && opts.store == storePostgres {
		if err := migrateUp(cfg.DatabaseURL()); err != nil {
			return err
		}
	}

	repos, err := openRepositories(ctx, cfg, opts.store)
	if err != nil {
		return err
	}
	defer repos.close()

	if opts.seed {
		if _, err := fixtures.Seed(ctx, repos.companies, repos.invoices, time.Now()); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHandler(cfg, logger, level, repos),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr), slog.String("store", opts.store))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newHandler(cfg *config.Config, logger *slog.Logger, level slog.Level, repos repositories) http.Handler {
	opts := appHTTP.RouterOptions{
		LogLevel:       level,
		AllowedOrigins: cfg.Origins(),
		Metrics:        observability.NewMetrics(),
	}
	if !cfg.IsTest() {
		opts.Logger = logger
	}

	return appHTTP.NewRouter(
		opts,
		appHTTP.NewCompanyHandler(companyService.NewCompanyService(repos.companies, repos.invoices)),
		appHTTP.NewInvoiceHandler(invoiceService.NewInvoiceService(repos.invoices, time.Now)),
	)
}

func migrateUp(dsn string) error {
	m, err := migrations.New(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
