package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// HealthService provides health check and version information.
type HealthService struct {
	version   string
	buildTime string
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus is the health check response body.
type HealthStatus struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Runtime   map[string]any `json:"runtime,omitempty"`
}

// NewHealthService creates a health service.
func NewHealthService(version, buildTime string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		buildTime: buildTime,
		startTime: time.Now(),
		logger:    logger.With(slog.String("service", "health")),
	}
}

// HealthCheck reports overall process health.
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   hs.version,
		Runtime: map[string]any{
			"go_version":     runtime.Version(),
			"goroutines":     runtime.NumGoroutine(),
			"uptime_seconds": time.Since(hs.startTime).Seconds(),
		},
	}
}

// Version reports the build information.
func (hs *HealthService) Version() map[string]any {
	return map[string]any{
		"version":    hs.version,
		"build_time": hs.buildTime,
	}
}
