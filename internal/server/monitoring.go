package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/HovsepH/northwind-employee-store/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartMonitoringServer serves /healthz and /metrics on the given address
// until ctx is cancelled. It blocks for the lifetime of the server.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	db DBPinger,
	address string,
) {
	const shutdownTimeout = 5 * time.Second

	mux := http.NewServeMux()
	mux.Handle("/healthz", NewHealthChecker(db, log))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down monitoring server", sl.Err(err))
		}
	}()

	log.Info("Monitoring server listening", "address", address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Monitoring server failed", sl.Err(err))
	}
}
