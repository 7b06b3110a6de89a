package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one raw line from the external commission ledger. The ledger
// is append-only and read-only from this engine's perspective; rows carry an
// IsLatest flag and superseded revisions are never counted.
type LedgerRow struct {
	PeriodStart  time.Time
	PeriodEnd    time.Time
	MemberID     int64
	MemberLogin  string
	Currency     string
	Level        int
	RefereeLogin string
	Amount       decimal.Decimal
	IsLatest     bool
}

// LedgerFilter narrows a ledger listing. Nil fields are ignored.
type LedgerFilter struct {
	Currency    *string
	MemberLogin *string
}

// PayoutEntry is one row of a period's payout list: the summed commission of
// a member in one currency. The full set for a period is rewritten on every
// regeneration until the period is submitted, after which it is immutable.
type PayoutEntry struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	MemberID    int64
	MemberLogin string
	Currency    string
	Total       decimal.Decimal
	GeneratedAt time.Time
	SubmittedBy *string
	Verified    bool
}

// Submission is the one-per-period proof of finalization. At most one
// Submission may ever exist per (PeriodStart, PeriodEnd) pair.
type Submission struct {
	PeriodStart   time.Time
	PeriodEnd     time.Time
	SubmittedBy   string
	SubmittedAt   time.Time
	ExcludedCount int
}

// Period returns the submission's payout period.
func (s Submission) Period() DateRange {
	return DateRange{Start: s.PeriodStart, End: s.PeriodEnd}
}

// ExcludedLogins is the active-exclusion set for a payout period.
type ExcludedLogins map[string]struct{}

// NewExcludedLogins builds a set from login strings.
func NewExcludedLogins(logins ...string) ExcludedLogins {
	set := make(ExcludedLogins, len(logins))
	for _, l := range logins {
		set[l] = struct{}{}
	}
	return set
}

// Contains reports whether the login is excluded.
func (s ExcludedLogins) Contains(login string) bool {
	_, ok := s[login]
	return ok
}

// ExcludesRow applies the symmetric exclusion rule: a ledger row is dropped
// when its earning referrer OR its generating referee is excluded. A set
// keyed by referee logins must still be checked against the referrer field
// of every row.
func (s ExcludedLogins) ExcludesRow(row LedgerRow) bool {
	return s.Contains(row.MemberLogin) || s.Contains(row.RefereeLogin)
}

// Logins returns the set members as a slice (order unspecified).
func (s ExcludedLogins) Logins() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	return out
}
