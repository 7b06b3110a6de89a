package exclusion

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peakline/commission-backend/internal/domain"
)

const maxReasonLen = 1000

// AddInput holds the parameters for creating an exclusion record.
type AddInput struct {
	RefereeLogin string
	Reason       *string
	StartDate    time.Time
	EndDate      time.Time
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.RefereeLogin) == "" {
		errs = append(errs, domain.FieldError{Field: "referee_login", Message: "required"})
	}
	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.EndDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "required"})
	}
	if i.Reason != nil && len(strings.TrimSpace(*i.Reason)) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for patching an exclusion record. Nil
// fields are left untouched.
type UpdateInput struct {
	ID       uuid.UUID
	IsActive *bool
	Reason   *string
	EndDate  *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Reason != nil && len(strings.TrimSpace(*i.Reason)) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListAuditInput holds the parameters for reading the audit trail.
type ListAuditInput struct {
	Login *string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListAuditInput) Validate() error {
	if i.Limit < 0 {
		return domain.NewValidationError("limit", "must be non-negative")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
