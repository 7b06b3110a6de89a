package exclusion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/peakline/commission-backend/internal/domain"
)

// List returns exclusion records, optionally restricted to active ones.
// Active records come back newest first.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.ExclusionRecord, error) {
	var (
		recs []domain.ExclusionRecord
		err  error
	)
	if activeOnly {
		recs, err = s.repo.ListActive(ctx)
	} else {
		recs, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list exclusions: %w", err)
	}
	return recs, nil
}

// Get returns a single exclusion record by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.ExclusionRecord, error) {
	if id == uuid.Nil {
		return domain.ExclusionRecord{}, domain.NewValidationError("id", "required")
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ExclusionRecord{}, fmt.Errorf("get exclusion: %w", err)
	}
	return rec, nil
}

// ActiveLoginsFor returns the set of logins with an active exclusion
// overlapping the given period. The payout service consumes this set when
// aggregating commissions.
func (s *Service) ActiveLoginsFor(ctx context.Context, rng domain.DateRange) (domain.ExcludedLogins, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	recs, err := s.repo.ActiveForRange(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("list exclusions for range: %w", err)
	}

	set := domain.ExcludedLogins{}
	for _, rec := range recs {
		set[rec.RefereeLogin] = struct{}{}
	}
	return set, nil
}

// ListAudit returns audit trail entries, newest first, optionally filtered
// by referee login. A zero limit falls back to the default page size.
func (s *Service) ListAudit(ctx context.Context, input ListAuditInput) ([]domain.AuditEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	switch {
	case limit == 0:
		limit = s.cfg.AuditDefaultLimit
	case limit > s.cfg.AuditMaxLimit:
		return nil, domain.NewValidationError("limit", fmt.Sprintf("max %d", s.cfg.AuditMaxLimit))
	}

	login := trimOrNil(input.Login)
	entries, err := s.audit.List(ctx, login, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
