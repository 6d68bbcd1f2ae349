package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"sortcheck/internal/modulus"
	"sortcheck/internal/platform/middleware"
	"sortcheck/internal/validation"
	"sortcheck/internal/validation/cache"
)

func newValidateRouter(t *testing.T) chi.Router {
	t.Helper()

	service := validation.NewService(modulus.DefaultTable(), cache.NewMemory(), nil, nil, slog.Default())
	h := New(service, slog.Default())

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Route("/v1", h.Register)
	return router
}

func postValidate(t *testing.T, router chi.Router, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestValidateEndpoint(t *testing.T) {
	router := newValidateRouter(t)

	rec := postValidate(t, router, map[string]string{
		"sort_code":      "01-23-45",
		"account_number": "07924402",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ValidateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Verdict != "valid" {
		t.Fatalf("expected verdict valid, got %q", resp.Verdict)
	}
	if resp.SortCode != "012345" {
		t.Fatalf("expected normalized sort code 012345, got %q", resp.SortCode)
	}
	if resp.Attempts != 1 || len(resp.Trace) != 1 {
		t.Fatalf("expected 1 attempt with 1 trace entry, got %d/%d", resp.Attempts, len(resp.Trace))
	}
	if resp.Trace[0].Method != "MOD11" || resp.Trace[0].Result != "PASS" {
		t.Fatalf("unexpected trace entry: %+v", resp.Trace[0])
	}
	if resp.Cached {
		t.Fatalf("first lookup must not be served from cache")
	}
}

func TestValidateEndpointInvalidVerdict(t *testing.T) {
	router := newValidateRouter(t)

	rec := postValidate(t, router, map[string]string{
		"sort_code":      "012345",
		"account_number": "90786666",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a checksum failure, got %d", rec.Code)
	}

	var resp ValidateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Verdict != "invalid" {
		t.Fatalf("expected verdict invalid, got %q", resp.Verdict)
	}
}

func TestValidateEndpointCachedFlag(t *testing.T) {
	router := newValidateRouter(t)

	payload := map[string]string{"sort_code": "203099", "account_number": "67938144"}
	if rec := postValidate(t, router, payload); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on first call, got %d", rec.Code)
	}

	rec := postValidate(t, router, payload)
	var resp ValidateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Cached {
		t.Fatalf("expected second identical lookup to be cached")
	}
}

func TestValidateEndpointMissingFields(t *testing.T) {
	router := newValidateRouter(t)

	rec := postValidate(t, router, map[string]string{"sort_code": "012345"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing account_number, got %d", rec.Code)
	}

	var errResp struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error != "validation_error" {
		t.Fatalf("expected validation_error, got %q", errResp.Error)
	}
}

func TestValidateEndpointMalformedInput(t *testing.T) {
	router := newValidateRouter(t)

	rec := postValidate(t, router, map[string]string{
		"sort_code":      "12345x",
		"account_number": "12345678",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric sort code, got %d", rec.Code)
	}
}

func TestValidateEndpointBadJSON(t *testing.T) {
	router := newValidateRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}
