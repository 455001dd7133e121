package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	engine := gin.New()
	engine.Use(RequestID())
	engine.Use(RequestLogger())
	engine.GET("/ping", func(ctx *gin.Context) {
		seen, _ = GetRequestIDFromContext(ctx)
		ctx.Status(http.StatusOK)
	})
	return engine, &seen
}

func TestRequestID_AssignsAndEchoesIdentifier(t *testing.T) {
	engine, seen := newTestEngine()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(rec, req)

	header := rec.Header().Get(RequestIDHeader)
	if header == "" {
		t.Fatal("expected a generated request identifier on the response")
	}
	if *seen != header {
		t.Errorf("expected handler to see %q, got %q", header, *seen)
	}
}

func TestRequestID_HonorsClientIdentifier(t *testing.T) {
	engine, seen := newTestEngine()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "client-supplied" {
		t.Errorf("expected client identifier echoed, got %q", got)
	}
	if *seen != "client-supplied" {
		t.Errorf("expected handler to see the client identifier, got %q", *seen)
	}
}

func TestGetRequestIDFromContext_MissingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	if id, ok := GetRequestIDFromContext(ctx); ok || id != "" {
		t.Errorf("expected no identifier, got %q ok=%v", id, ok)
	}
}
