package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory_management/internal/config"
	"inventory_management/internal/handlers"
	"inventory_management/internal/logger"
	"inventory_management/internal/metrics"
	"inventory_management/internal/repository"
	"inventory_management/internal/server"
	"inventory_management/internal/service"

	_ "inventory_management/docs"
)

func runServe(ctx context.Context, cfgPath string) error {
	cfg, log, conn, err := bootstrap(ctx, cfgPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
		_ = log.Sync()
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, cfg)
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithMetrics(metrics.New()),
		handlers.WithHealthCheck(conn),
		handlers.WithAllowedOrigins(cfg.CORS.AllowedOrigins),
		handlers.WithVersion(version),
	)

	srv := server.New(cfg.Server)
	errc := runHTTPServer(srv, apiHandler, log, cfg.Server.Port)

	return waitForShutdown(srv, errc, log, cfg.Server)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, handler *handlers.Handler, log *logger.Logger, port string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "port", port)
		errc <- srv.Run(handler.InitRoutes())
	}()
	return errc
}

// waitForShutdown blocks until a termination signal or a server failure,
// then drains in-flight requests.
func waitForShutdown(srv *server.Server, errc <-chan error, log *logger.Logger, cfg config.ServerConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errc:
		return err
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	return <-errc
}
