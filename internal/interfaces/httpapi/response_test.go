package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/usecase"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Length"); got != strconv.Itoa(rec.Body.Len()) {
		t.Fatalf("expected Content-Length %d, got %q", rec.Body.Len(), got)
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

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.Newf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "invalid input", err: errors.Newf("%w: x", usecase.ErrInvalidInput), status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{name: "invalid set score", err: errors.Wrap(match.ErrInvalidSetScore, "set 2"), status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{name: "email taken", err: account.ErrEmailTaken, status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{name: "not found", err: errors.Newf("%w: match=9", usecase.ErrNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, status: http.StatusUnauthorized, code: "UNAUTHENTICATED"},
		{name: "forbidden", err: usecase.ErrForbidden, status: http.StatusForbidden, code: "PERMISSION_DENIED"},
		{name: "duplicate genre", err: errors.Wrap(category.ErrDuplicateGenre, "M"), status: http.StatusConflict, code: "ALREADY_EXISTS"},
		{name: "duplicate period", err: season.ErrDuplicatePeriod, status: http.StatusConflict, code: "ALREADY_EXISTS"},
		{name: "genre in use", err: category.ErrGenreInUse, status: http.StatusConflict, code: "FAILED_PRECONDITION"},
		{name: "rate limited", err: errRateLimited, status: http.StatusTooManyRequests, code: "RESOURCE_EXHAUSTED"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, status: http.StatusServiceUnavailable, code: "UNAVAILABLE"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			require.Equal(t, tt.status, got.HTTPStatus)
			require.Equal(t, tt.code, got.Status)
		})
	}
}

func TestWriteError_UnauthorizedPointsAtLogin(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, usecase.ErrUnauthorized)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, loginLocation, rec.Header().Get("Location"))
	require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestWriteError_InternalMasksMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "password authentication")
	require.Contains(t, rec.Body.String(), internalErrorMsg)
}

func TestWriteRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	writeRedirect(context.Background(), rec, loginLocation, "log in again")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, loginLocation, rec.Header().Get("Location"))
	require.Contains(t, rec.Body.String(), "log in again")
}
