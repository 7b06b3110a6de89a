package rest

import "net/http"

// NewRouter wires all REST endpoints onto a ServeMux using Go 1.22 method
// patterns. Middleware is applied by the caller around the returned mux.
func NewRouter(
	exclusions *ExclusionHandler,
	audit *AuditHandler,
	payouts *PayoutHandler,
	health *HealthHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/exclusions", exclusions.Add)
	mux.HandleFunc("GET /v1/exclusions", exclusions.List)
	mux.HandleFunc("GET /v1/exclusions/{id}", exclusions.Get)
	mux.HandleFunc("PATCH /v1/exclusions/{id}", exclusions.Update)

	mux.HandleFunc("GET /v1/audit", audit.List)

	mux.HandleFunc("POST /v1/payouts/{start}/{end}/regenerate", payouts.Regenerate)
	mux.HandleFunc("POST /v1/payouts/{start}/{end}/submit", payouts.Submit)
	mux.HandleFunc("GET /v1/payouts/{start}/{end}/status", payouts.Status)
	mux.HandleFunc("GET /v1/payouts/{start}/{end}/entries", payouts.Entries)
	mux.HandleFunc("GET /v1/payouts/{start}/{end}/ledger", payouts.Ledger)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
