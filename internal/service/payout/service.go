// Package payout implements the commission finalization state machine: it
// aggregates raw ledger rows into per-member payout totals, applies the
// active exclusion set, and drives a period from open through submitted.
package payout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peakline/commission-backend/internal/config"
	"github.com/peakline/commission-backend/internal/domain"
	"github.com/peakline/commission-backend/pkg/keylock"
)

type ledgerRepo interface {
	ListForPeriod(ctx context.Context, rng domain.DateRange, filter domain.LedgerFilter) ([]domain.LedgerRow, error)
}

type payoutRepo interface {
	ReplaceEntries(ctx context.Context, rng domain.DateRange, entries []domain.PayoutEntry) error
	ListEntries(ctx context.Context, rng domain.DateRange) ([]domain.PayoutEntry, error)
	CreateSubmission(ctx context.Context, sub domain.Submission) (domain.Submission, error)
	GetSubmission(ctx context.Context, rng domain.DateRange) (domain.Submission, error)
}

type exclusionLister interface {
	ActiveLoginsFor(ctx context.Context, rng domain.DateRange) (domain.ExcludedLogins, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides payout generation and submission operations.
type Service struct {
	ledger     ledgerRepo
	payouts    payoutRepo
	exclusions exclusionLister
	txm        txManager
	cfg        config.PayoutConfig
	locks      *keylock.KeyLock
	log        *slog.Logger
}

// NewService creates a new Payout service.
func NewService(
	log *slog.Logger,
	cfg config.PayoutConfig,
	ledger ledgerRepo,
	payouts payoutRepo,
	exclusions exclusionLister,
	txm txManager,
) *Service {
	return &Service{
		ledger:     ledger,
		payouts:    payouts,
		exclusions: exclusions,
		txm:        txm,
		cfg:        cfg,
		locks:      keylock.New(),
		log:        log.With("service", "payout"),
	}
}

// validatePeriod checks range ordering and the configured length bound.
func (s *Service) validatePeriod(rng domain.DateRange) error {
	if err := rng.Validate(); err != nil {
		return err
	}
	days := int(rng.End.Sub(rng.Start).Hours()/24) + 1
	if days > s.cfg.MaxPeriodDays {
		return domain.NewValidationError("period", fmt.Sprintf("max %d days", s.cfg.MaxPeriodDays))
	}
	return nil
}
