package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestCheckAll_AggregatesDependencyFailures(t *testing.T) {
	service := NewService()
	service.AddChecker("postgres", stubChecker{})
	service.AddChecker("redis", stubChecker{err: errors.New("connection refused")})

	response := service.CheckAll(context.Background())

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", response.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["redis"].Error)
}

func TestHealthEndpoints(t *testing.T) {
	e := echo.New()
	service := NewService()
	service.AddChecker("postgres", stubChecker{})
	RegisterHealthEndpoints(e, "gaddi24x7", "1.0.0", service)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var detailed Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detailed))
	assert.Equal(t, "healthy", detailed.Status)
	assert.Equal(t, "gaddi24x7", detailed.Service)
	assert.Equal(t, "1.0.0", detailed.Version)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyEndpoint_UnhealthyDependency(t *testing.T) {
	e := echo.New()
	service := NewService()
	service.AddChecker("nats", stubChecker{err: errors.New("not connected")})
	RegisterHealthEndpoints(e, "gaddi24x7", "1.0.0", service)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
