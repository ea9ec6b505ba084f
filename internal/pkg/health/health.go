package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/database"
	"github.com/deveshjhaq/gaddi24x7/internal/pkg/logger"
	natspkg "github.com/deveshjhaq/gaddi24x7/internal/pkg/nats"
)

// Checker reports whether a single dependency is reachable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker pings the PostgreSQL connection pool
type PostgresChecker struct {
	client *database.PostgresClient
}

func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker pings the Redis server
type RedisChecker struct {
	client *database.RedisClient
}

func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	return r.client.GetClient().Ping(ctx).Err()
}

// NATSChecker verifies the NATS connection is still up
type NATSChecker struct {
	client *natspkg.Client
}

func NewNATSChecker(client *natspkg.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if !n.client.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}
	return nil
}

// Service runs health checks against all registered dependencies
type Service struct {
	checkers map[string]Checker
}

func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a dependency under the given name
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Response is the detailed health check payload
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo holds the outcome of one dependency check
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll runs every registered checker and aggregates the results
func (s *Service) CheckAll(ctx context.Context) Response {
	response := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			response.Status = "unhealthy"
		} else {
			response.Dependencies[name] = DependencyInfo{Status: "healthy"}
		}
	}
	return response
}

// RegisterHealthEndpoints wires the health probes onto the router
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *Service) {
	group := e.Group("/health")

	// basic check for load balancers
	group.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	group.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := service.CheckAll(ctx)
		response.Service = serviceName
		response.Version = version

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		return c.JSON(statusCode, response)
	})

	// readiness probe
	group.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := service.CheckAll(ctx)
		response.Service = serviceName
		if response.Status == "unhealthy" {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	})

	// liveness probe
	group.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
