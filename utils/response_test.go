package utils

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"c4knives-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fixedAuth uint

func (a fixedAuth) Authenticate(_ context.Context, _ string) (uint, error) {
	return uint(a), nil
}

func TestServerErrorLogsAdminAndHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.Logger(slog.New(slog.DiscardHandler)))
	r.GET("/fail", middleware.RequireAdmin(fixedAuth(9)), func(c *gin.Context) {
		ServerError(c, log, errors.New("db gone"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server Error", w.Body.String())
	assert.Contains(t, buf.String(), "admin_id=9")
	assert.Contains(t, buf.String(), `err="db gone"`)
	assert.Contains(t, buf.String(), "route=/fail")
}

func TestJSONMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONMessage(c, http.StatusNotFound, "Product not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Product not found"}`, w.Body.String())
}
