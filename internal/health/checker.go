package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check is the health of a single dependency.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Result is the top-level health response.
type Result struct {
	Status string           `json:"status"`
	Checks map[string]Check `json:"checks,omitempty"`
}

// Checker reports whether the service and its dependencies are usable.
type Checker struct {
	db     Pinger
	logger *slog.Logger
	gauge  *prometheus.GaugeVec
}

// NewChecker creates a health checker and registers its Prometheus gauge.
func NewChecker(db Pinger, logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "taskboard",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		db:     db,
		logger: logger.With("component", "health"),
		gauge:  gauge,
	}
}

// Liveness reports that the process itself is running.
func (c *Checker) Liveness(_ context.Context) Result {
	return Result{Status: "up"}
}

// Readiness pings the database and reports per-dependency status. The
// overall status is "down" if any dependency is unreachable.
func (c *Checker) Readiness(ctx context.Context) Result {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	result := Result{
		Status: "up",
		Checks: make(map[string]Check),
	}

	if err := c.db.Ping(pingCtx); err != nil {
		c.logger.WarnContext(ctx, "postgres health check failed", "error", err)
		result.Status = "down"
		result.Checks["postgres"] = Check{Status: "down", Error: err.Error()}
		c.gauge.WithLabelValues("postgres").Set(0)
		return result
	}

	result.Checks["postgres"] = Check{Status: "up"}
	c.gauge.WithLabelValues("postgres").Set(1)
	return result
}
