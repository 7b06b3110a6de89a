package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/peakline/commission-backend/internal/domain"
	"github.com/peakline/commission-backend/internal/service/exclusion"
)

// exclusionService defines the minimal interface needed by ExclusionHandler.
type exclusionService interface {
	Add(ctx context.Context, input exclusion.AddInput) (domain.ExclusionRecord, error)
	Update(ctx context.Context, input exclusion.UpdateInput) (domain.ExclusionRecord, error)
	List(ctx context.Context, activeOnly bool) ([]domain.ExclusionRecord, error)
	Get(ctx context.Context, id uuid.UUID) (domain.ExclusionRecord, error)
}

// ExclusionHandler serves exclusion registry REST endpoints.
type ExclusionHandler struct {
	svc exclusionService
	log *slog.Logger
}

// NewExclusionHandler creates an ExclusionHandler.
func NewExclusionHandler(svc exclusionService, logger *slog.Logger) *ExclusionHandler {
	return &ExclusionHandler{svc: svc, log: logger.With("handler", "exclusions")}
}

type addExclusionRequest struct {
	RefereeLogin string  `json:"refereeLogin"`
	Reason       *string `json:"reason,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
}

type updateExclusionRequest struct {
	IsActive *bool   `json:"isActive,omitempty"`
	Reason   *string `json:"reason,omitempty"`
	EndDate  *string `json:"endDate,omitempty"`
}

type exclusionResponse struct {
	ID            string    `json:"id"`
	RefereeLogin  string    `json:"refereeLogin"`
	ExcludedBy    string    `json:"excludedBy"`
	Reason        *string   `json:"reason,omitempty"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	ExclusionDate time.Time `json:"exclusionDate"`
	IsActive      bool      `json:"isActive"`
}

// Add handles POST /v1/exclusions.
func (h *ExclusionHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addExclusionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rng, err := domain.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Add(r.Context(), exclusion.AddInput{
		RefereeLogin: req.RefereeLogin,
		Reason:       req.Reason,
		StartDate:    rng.Start,
		EndDate:      rng.End,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExclusionResponse(rec))
}

// List handles GET /v1/exclusions?active=true.
func (h *ExclusionHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	recs, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]exclusionResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toExclusionResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /v1/exclusions/{id}.
func (h *ExclusionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exclusion id")
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toExclusionResponse(rec))
}

// Update handles PATCH /v1/exclusions/{id}.
func (h *ExclusionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exclusion id")
		return
	}

	var req updateExclusionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := exclusion.UpdateInput{
		ID:       id,
		IsActive: req.IsActive,
		Reason:   req.Reason,
	}
	if req.EndDate != nil {
		end, err := domain.ParseDate(*req.EndDate)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("endDate", err.Error()))
			return
		}
		input.EndDate = &end
	}

	rec, err := h.svc.Update(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toExclusionResponse(rec))
}

func toExclusionResponse(rec domain.ExclusionRecord) exclusionResponse {
	return exclusionResponse{
		ID:            rec.ID.String(),
		RefereeLogin:  rec.RefereeLogin,
		ExcludedBy:    rec.ExcludedBy,
		Reason:        rec.Reason,
		StartDate:     rec.StartDate.Format(domain.DateFormat),
		EndDate:       rec.EndDate.Format(domain.DateFormat),
		ExclusionDate: rec.ExclusionDate,
		IsActive:      rec.IsActive,
	}
}
