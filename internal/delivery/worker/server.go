// Package worker serves the mail worker: Pub/Sub pushes outgoing mail to it and
// it hands each message to the SMTP relay.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"contactbook/config"
	"contactbook/internal/delivery"
	"contactbook/internal/delivery/middleware"
	"contactbook/internal/delivery/worker/handler"
	"contactbook/internal/domain/lifecycle"
	"contactbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// PushPath receives Pub/Sub push deliveries.
	PushPath = "/push"

	// pushBodyLimit caps a push envelope. Rendered mail never comes close.
	pushBodyLimit = "1M"
)

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server receiving mail pushed by Pub/Sub
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		port:   listenPort(params.Cfg),
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker's routes: health, optional metrics and the push endpoint.
func NewEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metricsEnabled := cfg.Metrics != nil && cfg.Metrics.Enabled

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	if metricsEnabled {
		e.Use(middleware.NewMetricsMiddleware(cfg.Metrics.Path).Handle)
	}
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(pushBodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if metricsEnabled {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(metrics.Handler(metrics.NewRegistry())))
	}
	e.POST(PushPath, push.HandlePush)

	return e
}

// listenPort prefers worker.port so the API and the worker can share a host.
func listenPort(cfg *config.Config) int {
	if cfg.Worker != nil && cfg.Worker.Port != 0 {
		return cfg.Worker.Port
	}

	return cfg.HTTP.Port
}

// Serve blocks until the server stops. A graceful shutdown is not an error.
func (s *workerServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting mail worker", slog.String("hostPort", hostPort))

	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down mail worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
