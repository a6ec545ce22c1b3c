package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// serveMetrics exposes /metrics in the background and returns its shutdown.
func serveMetrics(addr string) closeFunc {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	logger.Info("metrics server started", zap.String("addr", addr))

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
