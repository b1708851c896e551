package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/infrastructure/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeDB struct {
	err error
}

func (f fakeDB) HealthCheck(ctx context.Context) error { return f.err }

func (f fakeDB) Stats() (*database.PoolStats, error) {
	return &database.PoolStats{TotalConns: 3, MaxConns: 25}, nil
}

func get(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealth_OK(t *testing.T) {
	r := newRouter("http://localhost:8080", "1.2.3", fakeDB{})

	w, body := get(t, r, "/api/v1/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	status := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "ok", status["database"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.Equal(t, float64(3), status["pool"].(map[string]interface{})["totalConns"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	r := newRouter("http://localhost:8080", "1.2.3", fakeDB{err: errors.New("connection refused")})

	w, body := get(t, r, "/api/v1/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Database unavailable", body["error"])
}

type fakeRoutes struct{}

func (fakeRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/author/findAll", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
}

func TestRouter_MountsDomainRoutesUnderV1(t *testing.T) {
	r := newRouter("http://localhost:8080", "1.2.3", fakeDB{}, fakeRoutes{})

	w, _ := get(t, r, "/api/v1/author/findAll")
	assert.Equal(t, http.StatusOK, w.Code)
}
