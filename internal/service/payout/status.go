package payout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peakline/commission-backend/internal/domain"
)

// Status describes where a period sits in the finalization state machine.
type Status struct {
	Submitted   bool
	SubmittedBy *string
	SubmittedAt *time.Time
}

// Status reports whether a period has been submitted, and by whom.
func (s *Service) Status(ctx context.Context, rng domain.DateRange) (Status, error) {
	if err := s.validatePeriod(rng); err != nil {
		return Status{}, err
	}

	sub, err := s.payouts.GetSubmission(ctx, rng)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Status{}, nil
		}
		return Status{}, fmt.Errorf("get submission: %w", err)
	}

	return Status{
		Submitted:   true,
		SubmittedBy: &sub.SubmittedBy,
		SubmittedAt: &sub.SubmittedAt,
	}, nil
}

// Entries returns the stored payout entries for a period, in the engine's
// deterministic order. Provisional and finalized entries read identically.
func (s *Service) Entries(ctx context.Context, rng domain.DateRange) ([]domain.PayoutEntry, error) {
	if err := s.validatePeriod(rng); err != nil {
		return nil, err
	}

	entries, err := s.payouts.ListEntries(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("list payout entries: %w", err)
	}
	return entries, nil
}

// Ledger returns the latest-revision raw ledger rows feeding a period,
// optionally narrowed by currency or member login. Intended for inspecting
// input data before finalization; exclusions are not applied here.
func (s *Service) Ledger(ctx context.Context, rng domain.DateRange, filter domain.LedgerFilter) ([]domain.LedgerRow, error) {
	if err := s.validatePeriod(rng); err != nil {
		return nil, err
	}

	rows, err := s.ledger.ListForPeriod(ctx, rng, filter)
	if err != nil {
		return nil, fmt.Errorf("list ledger rows: %w", err)
	}
	return rows, nil
}
