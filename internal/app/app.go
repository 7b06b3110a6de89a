// Package app wires configuration, storage, services, and transport into a
// runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/peakline/commission-backend/internal/adapter/postgres"
	auditrepo "github.com/peakline/commission-backend/internal/adapter/postgres/audit"
	exclusionrepo "github.com/peakline/commission-backend/internal/adapter/postgres/exclusion"
	ledgerrepo "github.com/peakline/commission-backend/internal/adapter/postgres/ledger"
	payoutrepo "github.com/peakline/commission-backend/internal/adapter/postgres/payout"
	"github.com/peakline/commission-backend/internal/auth"
	"github.com/peakline/commission-backend/internal/config"
	exclusionsvc "github.com/peakline/commission-backend/internal/service/exclusion"
	payoutsvc "github.com/peakline/commission-backend/internal/service/payout"
	"github.com/peakline/commission-backend/internal/transport/middleware"
	"github.com/peakline/commission-backend/internal/transport/rest"
)

const rateLimitPerMinute = 300

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	exclusions := exclusionrepo.New(pool)
	auditLog := auditrepo.New(pool)
	ledger := ledgerrepo.New(pool)
	payouts := payoutrepo.New(pool)

	exclusionService := exclusionsvc.NewService(logger, cfg.Payout, exclusions, auditLog)
	payoutService := payoutsvc.NewService(logger, cfg.Payout, ledger, payouts, exclusionService, txm)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	router := rest.NewRouter(
		rest.NewExclusionHandler(exclusionService, logger),
		rest.NewAuditHandler(exclusionService, logger),
		rest.NewPayoutHandler(payoutService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(rateLimitPerMinute),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
