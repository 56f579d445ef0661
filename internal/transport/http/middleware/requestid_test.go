package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/requestid"
	"taskboard/internal/transport/http/middleware"
)

func requestIDEngine(captured *string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		*captured = requestid.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var fromCtx string
	w := httptest.NewRecorder()
	requestIDEngine(&fromCtx).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	echoed := w.Header().Get(requestid.Header)
	if echoed == "" {
		t.Fatal("response is missing a request ID header")
	}
	if fromCtx != echoed {
		t.Errorf("context ID = %q, header ID = %q", fromCtx, echoed)
	}
}

func TestRequestID_PreservesCallerID(t *testing.T) {
	var fromCtx string
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "upstream-id-42")
	requestIDEngine(&fromCtx).ServeHTTP(w, req)

	if got := w.Header().Get(requestid.Header); got != "upstream-id-42" {
		t.Errorf("echoed ID = %q, want caller's", got)
	}
	if fromCtx != "upstream-id-42" {
		t.Errorf("context ID = %q, want caller's", fromCtx)
	}
}
