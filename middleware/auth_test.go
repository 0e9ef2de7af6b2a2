package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth map[string]uint

func (s stubAuth) Authenticate(_ context.Context, token string) (uint, error) {
	id, ok := s[token]
	if !ok {
		return 0, errors.New("bad token")
	}
	return id, nil
}

func newGuardedEngine(t *testing.T, called *bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Logger(testLogger()))
	r.POST("/guarded", RequireAdmin(stubAuth{"good": 7}), func(c *gin.Context) {
		*called = true
		id, ok := AdminID(c)
		require.True(t, ok)
		ctxID, ok := AdminIDFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id, "ctx": ctxID})
	})
	return r
}

func TestRequireAdminRejects(t *testing.T) {
	for _, token := range []string{"", "garbage", "expired"} {
		t.Run("token="+token, func(t *testing.T) {
			called := false
			r := newGuardedEngine(t, &called)

			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			if token != "" {
				req.Header.Set(TokenHeader, token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"msg":"Token is not valid"}`, w.Body.String())
			assert.False(t, called)
		})
	}
}

func TestRequireAdminAccepts(t *testing.T) {
	called := false
	r := newGuardedEngine(t, &called)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(TokenHeader, "good")
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
	assert.JSONEq(t, `{"id":7,"ctx":7}`, w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestLoggerAssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(testLogger()), Metrics())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())
}
