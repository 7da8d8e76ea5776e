package internal

import (
	"context"
	"fmt"
	"moodtracker/internal/controllers"
	"moodtracker/internal/providers"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server
	core      *Core
}

func NewApp(core *Core, apiController *controllers.ApiController, healthController *controllers.HealthController, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) *App {
	conf := core.Conf

	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		providers.RegisterServiceGauges(conf, core.Service)
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      providers.RequestIDMiddleware(core.Logger, mux),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		core: core,
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// the server down and writes a final snapshot.
func (a *App) Run(ctx context.Context) error {
	conf := a.core.Conf
	logger := a.core.Logger

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	a.core.Scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := a.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case <-ctx.Done():
		logger.Infof(providers.TypeApp, "Context cancelled")
	case err := <-serverErr:
		a.core.Scheduler.Stop()
		return fmt.Errorf("server error: %w", err)
	}

	a.core.Scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.WebServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := a.core.Persist(); err != nil {
		return err
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}
