package utils

import (
	"log/slog"
	"net/http"

	"c4knives-backend/middleware"

	"github.com/gin-gonic/gin"
)

// JSONMessage writes the {"msg": ...} body used for every expected outcome
// that is not a record.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"msg": message})
}

// ServerError logs err and answers with a plain 500 that leaks nothing.
func ServerError(c *gin.Context, log *slog.Logger, err error) {
	ctx := c.Request.Context()
	attrs := []slog.Attr{
		slog.String("request_id", middleware.RequestID(c)),
		slog.String("method", c.Request.Method),
		slog.String("route", c.FullPath()),
		slog.Any("err", err),
	}
	if id, ok := middleware.AdminIDFromContext(ctx); ok {
		attrs = append(attrs, slog.Uint64("admin_id", uint64(id)))
	}
	log.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
	c.String(http.StatusInternalServerError, "Server Error")
}
