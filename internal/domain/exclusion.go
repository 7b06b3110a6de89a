package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExclusionRecord is a time-boxed ban of one login from commission payouts.
// While active and overlapping a payout period, the login neither earns
// commission as a referrer nor generates commission for others as a referee.
//
// Records are never deleted; "removal" is deactivation via IsActive=false.
type ExclusionRecord struct {
	ID            uuid.UUID
	RefereeLogin  string
	ExcludedBy    string
	Reason        *string
	StartDate     time.Time
	EndDate       time.Time
	ExclusionDate time.Time
	IsActive      bool
}

// Range returns the record's validity window as a DateRange.
func (e ExclusionRecord) Range() DateRange {
	return DateRange{Start: e.StartDate, End: e.EndDate}
}

// StateString renders the record's exclusion window for audit snapshots,
// e.g. "Excluded from 2024-01-01 to 2024-01-07".
func (e ExclusionRecord) StateString() string {
	s := "Excluded from " + e.StartDate.Format(DateFormat) + " to " + e.EndDate.Format(DateFormat)
	if !e.IsActive {
		s += " (inactive)"
	}
	return s
}

// NotExcludedState is the audit previous-state snapshot for a fresh record.
const NotExcludedState = "Not excluded"
