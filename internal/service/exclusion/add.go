package exclusion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peakline/commission-backend/internal/domain"
	"github.com/peakline/commission-backend/pkg/ctxutil"
)

// Add registers a new active exclusion for a referee login. Two active
// exclusions for the same login must never overlap: the service checks the
// registry under a per-login lock, and the database exclusion constraint
// catches whatever slips past it.
func (s *Service) Add(ctx context.Context, input AddInput) (domain.ExclusionRecord, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ExclusionRecord{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ExclusionRecord{}, err
	}

	login := strings.TrimSpace(input.RefereeLogin)
	rng := domain.NewDateRange(input.StartDate, input.EndDate)
	if err := rng.Validate(); err != nil {
		return domain.ExclusionRecord{}, err
	}

	unlock := s.locks.Lock(login)
	defer unlock()

	existing, err := s.repo.ActiveOverlapping(ctx, login, rng)
	if err != nil {
		return domain.ExclusionRecord{}, fmt.Errorf("check overlapping exclusions: %w", err)
	}
	if len(existing) > 0 {
		return domain.ExclusionRecord{}, fmt.Errorf(
			"%s already excluded over %s: %w", login, existing[0].Range(), domain.ErrOverlapConflict)
	}

	created, err := s.repo.Create(ctx, domain.ExclusionRecord{
		ID:            uuid.New(),
		RefereeLogin:  login,
		ExcludedBy:    actor,
		Reason:        trimOrNil(input.Reason),
		StartDate:     rng.Start,
		EndDate:       rng.End,
		ExclusionDate: time.Now().UTC(),
		IsActive:      true,
	})
	if err != nil {
		return domain.ExclusionRecord{}, fmt.Errorf("create exclusion: %w", err)
	}

	s.writeAudit(ctx, domain.AuditEntry{
		ID:            uuid.New(),
		RefereeLogin:  login,
		Action:        domain.AuditActionCreate,
		ActionBy:      actor,
		Details:       fmt.Sprintf("Exclusion created for period %s", created.Range()),
		PreviousState: domain.NotExcludedState,
		NewState:      created.StateString(),
		ActionDate:    time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "exclusion created",
		slog.String("login", login),
		slog.String("id", created.ID.String()),
		slog.String("period", created.Range().Key()),
		slog.String("by", actor),
	)

	return created, nil
}
