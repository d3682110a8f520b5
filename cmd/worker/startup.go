// cmd/worker/startup.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"storefront-backend/pkg/container"
)

const workerServiceName = "storefront-worker"

// startServices chạy health check lúc khởi động rồi mở health endpoint
func startServices(c *container.Container) error {
	log.Info().Msg("============================================")
	log.Info().Msg("🚀 Storefront Worker Starting...")
	log.Info().Msg("============================================")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for name, status := range c.HealthCheck(ctx) {
		if status != "ok" {
			// worker không chạy được khi thiếu Redis (broker) hoặc Mongo
			return fmt.Errorf("%s: %s", name, status)
		}
		log.Info().Str("service", name).Msg("✓ OK")
	}

	go startHealthCheckServer(c)
	return nil
}

func startHealthCheckServer(c *container.Container) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthCheckHandler(c))
	mux.HandleFunc("/ready", readyCheckHandler)

	addr := ":" + c.Config.Cron.WorkerHealthPort
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("[Health] Starting health check server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("[Health] Failed to start")
	}
}

func healthCheckHandler(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		services := c.HealthCheck(ctx)
		status, code := "UP", http.StatusOK
		for _, s := range services {
			if s != "ok" {
				status, code = "DOWN", http.StatusServiceUnavailable
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   status,
			"service":  workerServiceName,
			"services": services,
		})
	}
}

// readyCheckHandler - Kubernetes readiness probe
func readyCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"READY"}`))
}
