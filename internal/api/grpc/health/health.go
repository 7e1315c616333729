// Package health publishes database readiness through the standard gRPC
// health service.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/agreement-server/internal/logger"
)

// Service is the health service name reported alongside the overall status.
const Service = "agreements.v1.Agreements"

const (
	defaultInterval = 10 * time.Second
	probeTimeout    = 2 * time.Second
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker probes the database and updates the gRPC health server.
type Checker struct {
	db       Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

// NewChecker creates a Checker. interval <= 0 selects the default.
func NewChecker(db Pinger, interval time.Duration, logger *logger.Logger) *Checker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Checker{
		db:       db,
		server:   health.NewServer(),
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health server to register on a gRPC server.
func (c *Checker) Server() healthpb.HealthServer {
	return c.server
}

// Check probes the database once and publishes the result.
func (c *Checker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := c.db.Ping(ctx); err != nil {
		c.logger.Warn("gRPC health: database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(Service, status)
	return status
}

// Run probes on every interval until ctx is done, then marks the server
// as shutting down.
func (c *Checker) Run(ctx context.Context) {
	c.Check(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
