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

// Update patches an exclusion record. Nil input fields are untouched. When
// nothing effectively changes, the record is returned as-is and no audit
// entry is written.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.ExclusionRecord, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ExclusionRecord{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ExclusionRecord{}, err
	}

	current, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return domain.ExclusionRecord{}, fmt.Errorf("get exclusion: %w", err)
	}

	unlock := s.locks.Lock(current.RefereeLogin)
	defer unlock()

	// Re-read under the lock so the diff is against the committed state.
	current, err = s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return domain.ExclusionRecord{}, fmt.Errorf("get exclusion: %w", err)
	}

	next, changes := applyPatch(current, input)
	if len(changes) == 0 {
		return current, nil
	}

	if err := next.Range().Validate(); err != nil {
		return domain.ExclusionRecord{}, err
	}

	// A widened range or a reactivation may collide with another active
	// exclusion for the same login.
	if next.IsActive && (!next.EndDate.Equal(current.EndDate) || !current.IsActive) {
		existing, err := s.repo.ActiveOverlapping(ctx, next.RefereeLogin, next.Range())
		if err != nil {
			return domain.ExclusionRecord{}, fmt.Errorf("check overlapping exclusions: %w", err)
		}
		for _, rec := range existing {
			if rec.ID != next.ID {
				return domain.ExclusionRecord{}, fmt.Errorf(
					"%s already excluded over %s: %w", next.RefereeLogin, rec.Range(), domain.ErrOverlapConflict)
			}
		}
	}

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return domain.ExclusionRecord{}, fmt.Errorf("update exclusion: %w", err)
	}

	s.writeAudit(ctx, domain.AuditEntry{
		ID:            uuid.New(),
		RefereeLogin:  updated.RefereeLogin,
		Action:        domain.AuditActionUpdate,
		ActionBy:      actor,
		Details:       strings.Join(changes, "; "),
		PreviousState: current.StateString(),
		NewState:      updated.StateString(),
		ActionDate:    time.Now().UTC(),
	})

	s.log.InfoContext(ctx, "exclusion updated",
		slog.String("login", updated.RefereeLogin),
		slog.String("id", updated.ID.String()),
		slog.String("changes", strings.Join(changes, "; ")),
		slog.String("by", actor),
	)

	return updated, nil
}

// applyPatch overlays the input onto the current record and describes each
// field that effectively changed. Same-value patches produce no change.
func applyPatch(current domain.ExclusionRecord, input UpdateInput) (domain.ExclusionRecord, []string) {
	next := current
	var changes []string

	if input.IsActive != nil && *input.IsActive != current.IsActive {
		next.IsActive = *input.IsActive
		changes = append(changes, fmt.Sprintf("is_active: %t -> %t", current.IsActive, next.IsActive))
	}

	if input.Reason != nil {
		reason := trimOrNil(input.Reason)
		if !equalPtr(reason, current.Reason) {
			next.Reason = reason
			changes = append(changes, fmt.Sprintf("reason: %s -> %s", strOrDash(current.Reason), strOrDash(reason)))
		}
	}

	if input.EndDate != nil {
		end := domain.ToDate(*input.EndDate)
		if !end.Equal(current.EndDate) {
			next.EndDate = end
			changes = append(changes, fmt.Sprintf("end_date: %s -> %s",
				current.EndDate.Format(domain.DateFormat), end.Format(domain.DateFormat)))
		}
	}

	return next, changes
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
