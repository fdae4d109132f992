package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fpt/internal/controllers"
	"fpt/internal/providers"
	"fpt/internal/scrape"
	"fpt/internal/store"
	"fpt/internal/structures"
	"fpt/internal/trend/interfaces"
)

type App struct {
	WebServer *http.Server
}

// NewApp wires the HTTP surface, starts the scheduler and blocks until
// shutdown. With --once the full search cycle runs a single time and the
// process exits without serving HTTP, which suits cron-driven deployments.
func NewApp(
	flags *structures.CliFlags,
	apiController *controllers.ApiController,
	healthController *controllers.HealthController,
	scheduler interfaces.SchedulerInterface,
	conf *structures.Config,
	logger providers.Logger,
	router providers.RouterProviderInterface,
	metrics providers.MetricsProviderInterface,
	st store.StoreInterface,
	archive *scrape.BlockArchive,
) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	if flags.RunOnce {
		scheduler.RunAll()
		closeAll(st, archive, logger)
		return &App{}, nil
	}

	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	// Wrap API routes with metrics middleware
	instrumentedAPI := providers.MetricsMiddleware(metrics, router.GetRoutes(), apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return nil, fmt.Errorf("server error: %w", err)
	}

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return nil, err
	}

	closeAll(st, archive, logger)
	return app, nil
}

func closeAll(st store.StoreInterface, archive *scrape.BlockArchive, logger providers.Logger) {
	if err := st.Close(); err != nil {
		logger.Errorf(providers.TypeStore, "Store close: %s", err)
	}
	archive.Close()
	logger.Infof(providers.TypeApp, "gracefully stopped")
	logger.Close()
}
