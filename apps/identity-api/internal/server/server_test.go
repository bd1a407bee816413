package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/handler"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/usecase"
	"github.com/astrixforge/Device-Masker-sub000/pkg/engine"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/httputil"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng := engine.New(refdata.Default(), generator.NewSeededRand(7))
	h := handler.NewHandler(usecase.NewIdentityUseCase(eng), nil, func(context.Context) bool { return true })
	return New(&config.Config{ListenAddr: ":0", GinMode: gin.TestMode}, h)
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/health", http.StatusOK},
		{"/api/v1/generate/IMEI?preset=galaxy_s24_ultra", http.StatusOK},
		{"/api/v1/generate/FAX", http.StatusBadRequest},
		{"/api/v1/bundles/SIM_CARD?country=IN", http.StatusOK},
		{"/api/v1/carriers/44010", http.StatusOK},
		{"/api/v1/countries/zz", http.StatusNotFound},
		{"/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d (body=%s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestTraceIDMiddleware(t *testing.T) {
	srv := newTestServer(t)

	t.Run("propagates header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(traceIDHeader, "trace-abc")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		if got := w.Header().Get(traceIDHeader); got != "trace-abc" {
			t.Errorf("X-Trace-ID = %q, want trace-abc", got)
		}
	})

	t.Run("generates id when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if got := w.Header().Get(traceIDHeader); len(got) != 36 {
			t.Errorf("X-Trace-ID = %q, want generated UUID", got)
		}
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if ct := w.Header().Get("Content-Type"); ct != httputil.ContentType {
		t.Errorf("Content-Type = %q, want %q", ct, httputil.ContentType)
	}
}
