package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worksuite/backend/internal/interfaces/http/dto"
)

type stubHealthChecker struct {
	err error
}

func (s *stubHealthChecker) Ping() error {
	return s.err
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler(nil)

	router := gin.New()
	router.GET("/system/info", h.GetSystemInfo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/system/info", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "WorkSuite Backend API", data["name"])
	assert.NotEmpty(t, data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy when database is reachable", func(t *testing.T) {
		h := NewSystemHandler(&stubHealthChecker{})

		router := gin.New()
		router.GET("/health", h.Health)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
	})

	t.Run("degraded when database is unreachable", func(t *testing.T) {
		h := NewSystemHandler(&stubHealthChecker{err: errors.New("connection refused")})

		router := gin.New()
		router.GET("/health", h.Health)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
		assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
	})

	t.Run("healthy when no checker is configured", func(t *testing.T) {
		h := NewSystemHandler(nil)

		router := gin.New()
		router.GET("/health", h.Health)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
