package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/voucher_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) (*gin.Engine, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(handlers...)
	return r, &buf
}

func TestStructuredLogging_PropagatesRequestID(t *testing.T) {
	r, buf := newRouter()
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromContext(c).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), "inside handler")
	assert.Contains(t, buf.String(), "Request completed")
}

func TestStructuredLogging_GeneratesRequestID(t *testing.T) {
	r, _ := newRouter()
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))
}

func TestUserIdentity(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "header wins", header: "cashier-1", want: "cashier-1"},
		{name: "header trimmed", header: "  keeper-2 ", want: "keeper-2"},
		{name: "default when absent", header: "", want: "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRouter(middleware.UserIdentity("admin"))
			var got string
			var found bool
			r.GET("/who", func(c *gin.Context) {
				got, found = middleware.GetUserIDFromContext(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tt.header != "" {
				req.Header.Set(middleware.UserIDHeader, tt.header)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			require.True(t, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRateLimiter_RejectsMalformedRate(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)

	l, err := middleware.NewRateLimiter("10-S")
	require.NoError(t, err)
	assert.EqualValues(t, 10, l.Rate.Limit)
}
