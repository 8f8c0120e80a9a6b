package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/competitive-price-monitor/api/openapi"
	"github.com/donaldgifford/competitive-price-monitor/internal/api/handlers"
	"github.com/donaldgifford/competitive-price-monitor/internal/api/middleware"
	"github.com/donaldgifford/competitive-price-monitor/internal/engine"
)

const (
	shutdownTimeout = 10 * time.Second
	apiTitle        = "Competitive Price Monitor API"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	var sched *engine.Scheduler
	if a.cfg.Schedule.Enabled {
		sched, err = engine.NewScheduler(a.engine, a.store, engine.ScheduleIntervals{
			Monitoring: a.cfg.Schedule.MonitoringInterval,
			Cleanup:    a.cfg.Schedule.CleanupInterval,
			Notify:     a.cfg.Schedule.NotifyInterval,
		}, a.runConfig(), a.log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.RecoverStaleJobRuns(ctx)
		sched.Start()
		a.log.Info("schedule enabled",
			"monitoring_interval", a.cfg.Schedule.MonitoringInterval,
			"cleanup_interval", a.cfg.Schedule.CleanupInterval,
			"notify_interval", a.cfg.Schedule.NotifyInterval,
		)
	}

	var nextRuns handlers.NextRunReporter
	if sched != nil {
		nextRuns = sched
	}
	e := newServer(a, nextRuns)

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	a.log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	a.log.Info("shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}

// newServer wires middleware, the Huma API and every route onto Echo.
// nextRuns is nil when the scheduler is disabled.
func newServer(a *app, nextRuns handlers.NextRunReporter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(a.log))
	e.Use(middleware.RequestLog(a.log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Tracing(a.cfg.Telemetry.ServiceName, nil))

	health := handlers.NewHealthHandler(a.store, Version)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig(apiTitle, Version)
	api := humaecho.New(e, humaCfg)

	handlers.RegisterObservationRoutes(api, handlers.NewObservationsHandler(a.engine))
	handlers.RegisterMappingRoutes(api, handlers.NewMappingsHandler(a.engine))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(a.engine))
	handlers.RegisterSnapshotRoutes(api, handlers.NewSnapshotsHandler(a.engine))
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(a.engine))
	handlers.RegisterMonitoringRoutes(api, handlers.NewMonitoringHandler(a.engine, a.runConfig(), a.cfg.Server.CronSecret))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(a.store, nextRuns))

	if err := openapi.RegisterRoutes(e, openapi.UI{Title: apiTitle, SpecPath: humaCfg.OpenAPIPath + ".json"}); err != nil {
		a.log.Warn("swagger ui disabled", "error", err)
	}

	return e
}
