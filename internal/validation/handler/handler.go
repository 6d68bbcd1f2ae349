package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sortcheck/internal/validation"
	"sortcheck/pkg/platform/httputil"
	"sortcheck/pkg/requestcontext"
)

// Service defines the interface for validation operations.
type Service interface {
	Validate(ctx context.Context, rawSortCode, rawAccount string) (*validation.Result, error)
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate", h.HandleValidate)
}

// HandleValidate handles POST /v1/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Validate(ctx, req.SortCode, req.AccountNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "validation rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "account validated",
		"request_id", requestID,
		"sort_code", result.SortCode,
		"verdict", result.Verdict,
		"attempts", result.Attempts,
		"cached", result.Cached,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
