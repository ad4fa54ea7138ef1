package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"designhub/internal/api/middleware"
	"designhub/internal/metrics"
	"designhub/internal/schema"
)

const internalErrorMessage = "Internal Server Error"

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func BadRequest(c *gin.Context, msg string)   { Error(c, http.StatusBadRequest, msg) }
func Unauthorized(c *gin.Context, msg string) { Error(c, http.StatusUnauthorized, msg) }
func NotFound(c *gin.Context, msg string)     { Error(c, http.StatusNotFound, msg) }
func TooManyRequests(c *gin.Context, msg string) {
	Error(c, http.StatusTooManyRequests, msg)
}

// Invalid 返回第一个未通过校验的字段。
func Invalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, schema.Describe(err))
}

// Internal 记录持久层或下游错误，并以统一的 500 响应。
func Internal(c *gin.Context, op string, err error) {
	middleware.LoggerFromContext(c).Error(op+" failed", slog.Any("error", err))
	metrics.ObserveStoreError(op)
	Error(c, http.StatusInternalServerError, internalErrorMessage)
}
