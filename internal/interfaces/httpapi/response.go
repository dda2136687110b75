package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-cache/internal/usecase"
)

const apiVersion = "2.0"

type successEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data"`
}

type errorEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Error      string `json:"error"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, successEnvelope{APIVersion: apiVersion, Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope{
		APIVersion: apiVersion,
		Error:      err.Error(),
		Reason:     mapped.Reason,
		Status:     mapped.Status,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		APIVersion: apiVersion,
		Error:      "internal server error",
		Reason:     "internalError",
		Status:     "INTERNAL",
	})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	case errors.Is(err, usecase.ErrUpstream):
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "upstreamFailure", Status: "INTERNAL"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
	}
}
