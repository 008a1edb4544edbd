package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "mdc-dispatch/internal/http/middleware"

	"github.com/stretchr/testify/assert"
)

func TestCORS_AttachesHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/units", nil)
	rr := httptest.NewRecorder()

	mw.CORS(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-User-Id", rr.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", rr.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run on preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/units", nil)
	rr := httptest.NewRecorder()

	mw.CORS(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
