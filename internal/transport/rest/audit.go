package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/peakline/commission-backend/internal/domain"
	"github.com/peakline/commission-backend/internal/service/exclusion"
)

// auditService defines the minimal interface needed by AuditHandler.
type auditService interface {
	ListAudit(ctx context.Context, input exclusion.ListAuditInput) ([]domain.AuditEntry, error)
}

// AuditHandler serves the exclusion audit trail.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

type auditEntryResponse struct {
	ID            string    `json:"id"`
	RefereeLogin  string    `json:"refereeLogin"`
	Action        string    `json:"action"`
	ActionBy      string    `json:"actionBy"`
	Details       string    `json:"details"`
	PreviousState string    `json:"previousState"`
	NewState      string    `json:"newState"`
	ActionDate    time.Time `json:"actionDate"`
}

// List handles GET /v1/audit?login=&limit=.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	input := exclusion.ListAuditInput{}

	if login := r.URL.Query().Get("login"); login != "" {
		input.Login = &login
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}

	entries, err := h.svc.ListAudit(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryResponse{
			ID:            e.ID.String(),
			RefereeLogin:  e.RefereeLogin,
			Action:        e.Action.String(),
			ActionBy:      e.ActionBy,
			Details:       e.Details,
			PreviousState: e.PreviousState,
			NewState:      e.NewState,
			ActionDate:    e.ActionDate,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
