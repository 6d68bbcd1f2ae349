package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"sortcheck/internal/audit"
	dErrors "sortcheck/pkg/domain-errors"
	"sortcheck/pkg/platform/httputil"
	"sortcheck/pkg/requestcontext"
)

const defaultRecentLimit = 50

// Service defines the interface for audit queries.
type Service interface {
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler exposes the audit trail to operators.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts audit endpoints on the router. The router is expected
// to already enforce the admin token.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/recent", h.HandleListRecent)
}

// EventResponse is one audit event in the response.
type EventResponse struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	SortCode    string    `json:"sort_code"`
	AccountHash string    `json:"account_hash"`
	Verdict     string    `json:"verdict"`
	Attempts    int       `json:"attempts"`
	RequestID   string    `json:"request_id,omitempty"`
	ClientIP    string    `json:"client_ip,omitempty"`
}

// ListRecentResponse is the HTTP response for GET /admin/audit/recent.
type ListRecentResponse struct {
	Events []EventResponse `json:"events"`
}

// HandleListRecent handles GET /admin/audit/recent requests.
func (h *Handler) HandleListRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be an integer between 1 and 1000"))
			return
		}
		limit = parsed
	}

	events, err := h.service.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit listing failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "failed to list audit events", err))
		return
	}

	resp := ListRecentResponse{Events: make([]EventResponse, 0, len(events))}
	for _, event := range events {
		resp.Events = append(resp.Events, EventResponse{
			ID:          event.ID.String(),
			Timestamp:   event.Timestamp,
			SortCode:    event.SortCode,
			AccountHash: event.AccountHash,
			Verdict:     event.Verdict,
			Attempts:    event.Attempts,
			RequestID:   event.RequestID,
			ClientIP:    event.ClientIP,
		})
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
