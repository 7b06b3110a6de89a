package payout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/peakline/commission-backend/internal/domain"
)

// Result is the outcome of a regeneration or submission: the stored entry
// set and how many logins were excluded while computing it.
type Result struct {
	Entries       []domain.PayoutEntry
	ExcludedCount int
}

// Regenerate recomputes and rewrites a period's payout entries from the
// current ledger and exclusion state. It is idempotent: an unchanged period
// regenerates to the identical entry set. A submitted period can never be
// regenerated.
func (s *Service) Regenerate(ctx context.Context, rng domain.DateRange) (Result, error) {
	if err := s.validatePeriod(rng); err != nil {
		return Result{}, err
	}

	unlock := s.locks.Lock(rng.Key())
	defer unlock()

	if _, err := s.payouts.GetSubmission(ctx, rng); err == nil {
		return Result{}, fmt.Errorf("period %s: %w", rng, domain.ErrAlreadyFinalized)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return Result{}, fmt.Errorf("check submission: %w", err)
	}

	entries, excluded, err := s.compute(ctx, rng, time.Now().UTC())
	if err != nil {
		return Result{}, err
	}

	if err := s.payouts.ReplaceEntries(ctx, rng, entries); err != nil {
		return Result{}, fmt.Errorf("replace payout entries: %w", err)
	}

	s.log.InfoContext(ctx, "payout entries regenerated",
		slog.String("period", rng.Key()),
		slog.Int("entries", len(entries)),
		slog.Int("excluded_logins", len(excluded)),
	)

	return Result{Entries: entries, ExcludedCount: len(excluded)}, nil
}

// compute aggregates the latest ledger rows for the period under the active
// exclusion set.
func (s *Service) compute(ctx context.Context, rng domain.DateRange, generatedAt time.Time) ([]domain.PayoutEntry, domain.ExcludedLogins, error) {
	excluded, err := s.exclusions.ActiveLoginsFor(ctx, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve excluded logins: %w", err)
	}

	rows, err := s.ledger.ListForPeriod(ctx, rng, domain.LedgerFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("list ledger rows: %w", err)
	}

	return computeTotals(rng, rows, excluded, generatedAt), excluded, nil
}
