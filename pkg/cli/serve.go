package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/launchdash/pkg/cli/config"
	controller "github.com/secmon-lab/launchdash/pkg/controller/http"
	"github.com/secmon-lab/launchdash/pkg/service/metrics"
	"github.com/secmon-lab/launchdash/pkg/service/render"
	"github.com/secmon-lab/launchdash/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		datasetCfg   config.Dataset
		dashboardCfg config.Dashboard
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
		dashboardCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting launchdash server",
				slog.Any("server", serverCfg),
				slog.Any("dataset", datasetCfg),
				slog.Any("dashboard", dashboardCfg),
			)

			ds, sites, err := datasetCfg.Configure(ctx)
			if err != nil {
				return err
			}

			layout, err := dashboardCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "invalid dashboard configuration")
			}

			dashboardOpts := []usecase.DashboardOption{
				usecase.WithSites(sites),
				usecase.WithLayout(layout),
			}
			var serverOpts []controller.ServerOption

			if serverCfg.EnableMetrics {
				collector := metrics.New()
				collector.SetDataset(ds)
				dashboardOpts = append(dashboardOpts, usecase.WithObserver(collector))
				serverOpts = append(serverOpts, controller.WithMetrics(collector.Handler()))
			}

			dashboard, err := usecase.NewDashboard(ds, dashboardOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create dashboard")
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, dashboard, render.New(), serverOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
