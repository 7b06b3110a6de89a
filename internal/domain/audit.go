package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the kind of exclusion mutation being recorded.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate:
		return true
	}
	return false
}

// AuditEntry is one immutable record of an exclusion mutation. Entries are
// written exactly once per mutation and never updated or deleted.
type AuditEntry struct {
	ID            uuid.UUID
	RefereeLogin  string
	Action        AuditAction
	ActionBy      string
	Details       string
	PreviousState string
	NewState      string
	ActionDate    time.Time
}
