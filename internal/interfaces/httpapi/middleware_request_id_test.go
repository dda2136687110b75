package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/football-cache/internal/platform/logging"
)

type fixedIDs struct {
	id  string
	err error
}

func (f fixedIDs) NewID() (string, error) { return f.id, f.err }

func TestRequestLogging_AssignsRequestID(t *testing.T) {
	h := RequestLogging(logging.NewNop(), fixedIDs{id: "generated"}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams/42", nil))

	if got := rec.Header().Get(requestIDHeader); got != "generated" {
		t.Fatalf("expected generated request id, got %q", got)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status passthrough, got %d", rec.Code)
	}
}

func TestRequestLogging_EchoesInboundRequestID(t *testing.T) {
	h := RequestLogging(logging.NewNop(), fixedIDs{id: "generated"}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/42", nil)
	req.Header.Set(requestIDHeader, "edge-abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "edge-abc123" {
		t.Fatalf("expected inbound request id, got %q", got)
	}
}

func TestRequestLogging_GeneratorFailureStillServes(t *testing.T) {
	called := false
	h := RequestLogging(logging.NewNop(), fixedIDs{err: errors.New("entropy")}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !called {
		t.Fatalf("expected next handler to run")
	}
	if got := rec.Header().Get(requestIDHeader); got != "" {
		t.Fatalf("expected no request id header, got %q", got)
	}
}
