// Package server assembles the tokenlocker server: it opens the database,
// applies migrations, builds the lock and auth services and serves them
// over gRPC next to a Prometheus metrics endpoint.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/tokenlocker/internal/logging"
	"github.com/dmitrijs2005/tokenlocker/internal/server/config"
	"github.com/dmitrijs2005/tokenlocker/internal/server/metrics"
	"github.com/dmitrijs2005/tokenlocker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenlocker/internal/server/services"
	"github.com/dmitrijs2005/tokenlocker/internal/timex"

	gs "github.com/dmitrijs2005/tokenlocker/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	registry *prometheus.Registry
	grpc     *gs.GRPCServer
}

// NewApp connects to the database, migrates it and wires the services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return newApp(c, logger, db, rm), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	mx := metrics.New()
	reg := metrics.NewRegistry()
	mx.Register(reg)

	clock := timex.SystemClock{}
	locks := services.NewLockService(db, rm, c, clock, logger, mx)
	auth := services.NewAuthService(c, clock)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		registry: reg,
		grpc:     gs.NewGRPCServer(c.EndpointAddrGRPC, logger, locks, auth),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// metricsServer serves the registry on /metrics; nil when disabled.
func (app *App) metricsServer() *http.Server {
	if app.config.MetricsAddr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	return &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}

// Run serves until a signal arrives, ctx is cancelled or a server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.grpc.Run(ctx)
	})

	if srv := app.metricsServer(); srv != nil {
		g.Go(func() error {
			app.logger.Info(ctx, "metrics server started", "address", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close", "error", cerr)
	}
	app.logger.Info(ctx, "stopped")
	return err
}
