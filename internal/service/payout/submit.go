package payout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/peakline/commission-backend/internal/domain"
	"github.com/peakline/commission-backend/pkg/ctxutil"
)

// SubmitResult pairs the submission record with the finalized entry set it
// locked.
type SubmitResult struct {
	Submission domain.Submission
	Entries    []domain.PayoutEntry
}

// Submit finalizes a period: it recomputes the payout entries from current
// state, stores them marked verified with the submitting actor, and writes
// the one-per-period submission record. The entry rewrite and the submission
// insert run in one transaction with the insert last, so its unique
// constraint is the authoritative at-most-once gate; a duplicate key from a
// concurrent submitter rolls back the rewrite and surfaces as
// ErrAlreadySubmitted.
func (s *Service) Submit(ctx context.Context, rng domain.DateRange) (SubmitResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return SubmitResult{}, domain.ErrUnauthorized
	}

	if err := s.validatePeriod(rng); err != nil {
		return SubmitResult{}, err
	}

	unlock := s.locks.Lock(rng.Key())
	defer unlock()

	if existing, err := s.payouts.GetSubmission(ctx, rng); err == nil {
		return SubmitResult{}, fmt.Errorf("period %s submitted by %s at %s: %w",
			rng, existing.SubmittedBy, existing.SubmittedAt.Format(time.RFC3339), domain.ErrAlreadySubmitted)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return SubmitResult{}, fmt.Errorf("check submission: %w", err)
	}

	now := time.Now().UTC()
	entries, excluded, err := s.compute(ctx, rng, now)
	if err != nil {
		return SubmitResult{}, err
	}

	for i := range entries {
		entries[i].SubmittedBy = &actor
		entries[i].Verified = true
	}

	var sub domain.Submission
	err = s.txm.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.payouts.ReplaceEntries(ctx, rng, entries); err != nil {
			return fmt.Errorf("replace payout entries: %w", err)
		}

		sub, err = s.payouts.CreateSubmission(ctx, domain.Submission{
			PeriodStart:   rng.Start,
			PeriodEnd:     rng.End,
			SubmittedBy:   actor,
			SubmittedAt:   now,
			ExcludedCount: len(excluded),
		})
		if err != nil {
			return fmt.Errorf("create submission: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return SubmitResult{}, fmt.Errorf("period %s: %w", rng, domain.ErrAlreadySubmitted)
		}
		return SubmitResult{}, err
	}

	s.log.InfoContext(ctx, "period submitted",
		slog.String("period", rng.Key()),
		slog.String("by", actor),
		slog.Int("entries", len(entries)),
		slog.Int("excluded_logins", sub.ExcludedCount),
	)

	return SubmitResult{Submission: sub, Entries: entries}, nil
}
