// Package exclusion implements the exclusion registry: time-boxed removal of
// referee logins from commission payouts, with an append-only audit trail of
// every mutation.
package exclusion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/peakline/commission-backend/internal/config"
	"github.com/peakline/commission-backend/internal/domain"
	"github.com/peakline/commission-backend/pkg/keylock"
)

type exclusionRepo interface {
	Create(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.ExclusionRecord, error)
	Update(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error)
	ListAll(ctx context.Context) ([]domain.ExclusionRecord, error)
	ListActive(ctx context.Context) ([]domain.ExclusionRecord, error)
	ActiveOverlapping(ctx context.Context, login string, rng domain.DateRange) ([]domain.ExclusionRecord, error)
	ActiveForRange(ctx context.Context, rng domain.DateRange) ([]domain.ExclusionRecord, error)
}

type auditLog interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
	List(ctx context.Context, login *string, limit int) ([]domain.AuditEntry, error)
}

// Service provides exclusion registry operations.
type Service struct {
	repo  exclusionRepo
	audit auditLog
	cfg   config.PayoutConfig
	locks *keylock.KeyLock
	log   *slog.Logger
}

// NewService creates a new Exclusion service.
func NewService(
	log *slog.Logger,
	cfg config.PayoutConfig,
	repo exclusionRepo,
	audit auditLog,
) *Service {
	return &Service{
		repo:  repo,
		audit: audit,
		cfg:   cfg,
		locks: keylock.New(),
		log:   log.With("service", "exclusion"),
	}
}

// writeAudit appends an audit entry. A failed append is logged but never
// fails the mutation that produced it; the registry row is already durable.
func (s *Service) writeAudit(ctx context.Context, entry domain.AuditEntry) {
	if err := s.audit.Log(ctx, entry); err != nil {
		s.log.ErrorContext(ctx, "audit append failed",
			slog.String("login", entry.RefereeLogin),
			slog.String("action", entry.Action.String()),
			slog.Any("error", err),
		)
	}
}
