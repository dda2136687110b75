package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-cache/internal/usecase"
)

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["error"].(string); got != "invalid input: bad payload" {
		t.Fatalf("unexpected error message %q", got)
	}
	if got, _ := body["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected status INVALID_ARGUMENT, got %v", body["status"])
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("did not expect data key in error response")
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "invalid", err: fmt.Errorf("%w: season", usecase.ErrInvalidInput), status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "not found", err: fmt.Errorf("%w: team 7", usecase.ErrNotFound), status: http.StatusNotFound, reason: "notFound"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, status: http.StatusServiceUnavailable, reason: "dependencyUnavailable"},
		{name: "upstream", err: fmt.Errorf("fetch fixtures: %w", usecase.ErrUpstream), status: http.StatusInternalServerError, reason: "upstreamFailure"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, reason: "internalError"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Reason != tc.reason {
				t.Fatalf("mapError(%v) = %+v, want status=%d reason=%s", tc.err, got, tc.status, tc.reason)
			}
		})
	}
}
