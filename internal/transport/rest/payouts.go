package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/peakline/commission-backend/internal/domain"
	"github.com/peakline/commission-backend/internal/service/payout"
)

// payoutService defines the minimal interface needed by PayoutHandler.
type payoutService interface {
	Regenerate(ctx context.Context, rng domain.DateRange) (payout.Result, error)
	Submit(ctx context.Context, rng domain.DateRange) (payout.SubmitResult, error)
	Status(ctx context.Context, rng domain.DateRange) (payout.Status, error)
	Entries(ctx context.Context, rng domain.DateRange) ([]domain.PayoutEntry, error)
	Ledger(ctx context.Context, rng domain.DateRange, filter domain.LedgerFilter) ([]domain.LedgerRow, error)
}

// PayoutHandler serves payout generation and submission REST endpoints.
type PayoutHandler struct {
	svc payoutService
	log *slog.Logger
}

// NewPayoutHandler creates a PayoutHandler.
func NewPayoutHandler(svc payoutService, logger *slog.Logger) *PayoutHandler {
	return &PayoutHandler{svc: svc, log: logger.With("handler", "payouts")}
}

type payoutEntryResponse struct {
	PeriodStart string    `json:"periodStart"`
	PeriodEnd   string    `json:"periodEnd"`
	MemberID    int64     `json:"memberId"`
	MemberLogin string    `json:"memberLogin"`
	Currency    string    `json:"currency"`
	Total       string    `json:"total"`
	GeneratedAt time.Time `json:"generatedAt"`
	SubmittedBy *string   `json:"submittedBy,omitempty"`
	Verified    bool      `json:"verified"`
}

type regenerateResponse struct {
	Entries       []payoutEntryResponse `json:"entries"`
	ExcludedCount int                   `json:"excludedCount"`
}

type submissionResponse struct {
	PeriodStart   string                `json:"periodStart"`
	PeriodEnd     string                `json:"periodEnd"`
	SubmittedBy   string                `json:"submittedBy"`
	SubmittedAt   time.Time             `json:"submittedAt"`
	ExcludedCount int                   `json:"excludedCount"`
	Entries       []payoutEntryResponse `json:"entries"`
}

type statusResponse struct {
	IsSubmitted bool       `json:"isSubmitted"`
	SubmittedBy *string    `json:"submittedBy,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

type ledgerRowResponse struct {
	PeriodStart  string `json:"periodStart"`
	PeriodEnd    string `json:"periodEnd"`
	MemberID     int64  `json:"memberId"`
	MemberLogin  string `json:"memberLogin"`
	Currency     string `json:"currency"`
	Level        int    `json:"level"`
	RefereeLogin string `json:"refereeLogin"`
	Amount       string `json:"amount"`
}

// periodFromPath parses the {start}/{end} path segments.
func periodFromPath(r *http.Request) (domain.DateRange, error) {
	return domain.ParseDateRange(r.PathValue("start"), r.PathValue("end"))
}

// Regenerate handles POST /v1/payouts/{start}/{end}/regenerate.
func (h *PayoutHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	rng, err := periodFromPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Regenerate(r.Context(), rng)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, regenerateResponse{
		Entries:       toEntryResponses(result.Entries),
		ExcludedCount: result.ExcludedCount,
	})
}

// Submit handles POST /v1/payouts/{start}/{end}/submit.
func (h *PayoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	rng, err := periodFromPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Submit(r.Context(), rng)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	sub := result.Submission
	writeJSON(w, http.StatusCreated, submissionResponse{
		PeriodStart:   sub.PeriodStart.Format(domain.DateFormat),
		PeriodEnd:     sub.PeriodEnd.Format(domain.DateFormat),
		SubmittedBy:   sub.SubmittedBy,
		SubmittedAt:   sub.SubmittedAt,
		ExcludedCount: sub.ExcludedCount,
		Entries:       toEntryResponses(result.Entries),
	})
}

// Status handles GET /v1/payouts/{start}/{end}/status.
func (h *PayoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	rng, err := periodFromPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	st, err := h.svc.Status(r.Context(), rng)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		IsSubmitted: st.Submitted,
		SubmittedBy: st.SubmittedBy,
		SubmittedAt: st.SubmittedAt,
	})
}

// Entries handles GET /v1/payouts/{start}/{end}/entries.
func (h *PayoutHandler) Entries(w http.ResponseWriter, r *http.Request) {
	rng, err := periodFromPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.Entries(r.Context(), rng)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Ledger handles GET /v1/payouts/{start}/{end}/ledger?currency=&member=.
func (h *PayoutHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	rng, err := periodFromPath(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var filter domain.LedgerFilter
	if v := r.URL.Query().Get("currency"); v != "" {
		filter.Currency = &v
	}
	if v := r.URL.Query().Get("member"); v != "" {
		filter.MemberLogin = &v
	}

	rows, err := h.svc.Ledger(r.Context(), rng, filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]ledgerRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ledgerRowResponse{
			PeriodStart:  row.PeriodStart.Format(domain.DateFormat),
			PeriodEnd:    row.PeriodEnd.Format(domain.DateFormat),
			MemberID:     row.MemberID,
			MemberLogin:  row.MemberLogin,
			Currency:     row.Currency,
			Level:        row.Level,
			RefereeLogin: row.RefereeLogin,
			Amount:       row.Amount.String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func toEntryResponses(entries []domain.PayoutEntry) []payoutEntryResponse {
	out := make([]payoutEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, payoutEntryResponse{
			PeriodStart: e.PeriodStart.Format(domain.DateFormat),
			PeriodEnd:   e.PeriodEnd.Format(domain.DateFormat),
			MemberID:    e.MemberID,
			MemberLogin: e.MemberLogin,
			Currency:    e.Currency,
			Total:       e.Total.String(),
			GeneratedAt: e.GeneratedAt,
			SubmittedBy: e.SubmittedBy,
			Verified:    e.Verified,
		})
	}
	return out
}
