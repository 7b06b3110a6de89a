//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/peakline/commission-backend/internal/adapter/postgres"
	auditrepo "github.com/peakline/commission-backend/internal/adapter/postgres/audit"
	exclusionrepo "github.com/peakline/commission-backend/internal/adapter/postgres/exclusion"
	ledgerrepo "github.com/peakline/commission-backend/internal/adapter/postgres/ledger"
	payoutrepo "github.com/peakline/commission-backend/internal/adapter/postgres/payout"
	"github.com/peakline/commission-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/peakline/commission-backend/internal/auth"
	"github.com/peakline/commission-backend/internal/config"
	exclusionsvc "github.com/peakline/commission-backend/internal/service/exclusion"
	payoutsvc "github.com/peakline/commission-backend/internal/service/payout"
	"github.com/peakline/commission-backend/internal/transport/middleware"
	"github.com/peakline/commission-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	exclusions := exclusionrepo.New(pool)
	auditLog := auditrepo.New(pool)
	ledger := ledgerrepo.New(pool)
	payouts := payoutrepo.New(pool)

	payoutCfg := config.PayoutConfig{
		MaxPeriodDays:     31,
		AuditDefaultLimit: 50,
		AuditMaxLimit:     500,
	}

	exclusionService := exclusionsvc.NewService(logger, payoutCfg, exclusions, auditLog)
	payoutService := payoutsvc.NewService(logger, payoutCfg, ledger, payouts, exclusionService, txm)

	jwtMgr := authpkg.NewJWTManager(
		"test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute,
	)

	router := rest.NewRouter(
		rest.NewExclusionHandler(exclusionService, logger),
		rest.NewAuditHandler(exclusionService, logger),
		rest.NewPayoutHandler(payoutService, logger),
		rest.NewHealthHandler(pool, "test-version"),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// actorToken mints a signed token for the given compliance login.
func (ts *testServer) actorToken(t *testing.T, login string) string {
	t.Helper()
	token, err := ts.jwt.GenerateToken(login)
	require.NoError(t, err)
	return token
}

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status plus the decoded response body (nil for empty bodies).
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		result = nil
	}
	return resp.StatusCode, result
}

// doJSONList is doJSON for endpoints that return a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		result = nil
	}
	return resp.StatusCode, result
}

// seedLedgerRow inserts one raw commission row for the given period.
func (ts *testServer) seedLedgerRow(t *testing.T, start, end string, memberID int64, member, currency, referee, amount string) {
	t.Helper()

	_, err := ts.Pool.Exec(context.Background(), `
		INSERT INTO raw_commission_rows
			(period_start, period_end, member_id, member_login, currency,
			 relative_level, referee_login, commission_amount, is_latest)
		VALUES ($1, $2, $3, $4, $5, 1, $6, $7, true)`,
		start, end, memberID, member, currency, referee, amount)
	require.NoError(t, err)
}
