package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware())
	router.GET("/api/designs/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/designs/42", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	ObserveStoreError("get design")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `route="/api/designs/:id"`))
	assert.True(t, strings.Contains(body, `status_class="4xx"`))
	assert.True(t, strings.Contains(body, `designhub_store_errors_total{operation="get design"}`))
}
