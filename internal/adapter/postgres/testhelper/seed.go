package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/peakline/commission-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedExclusion inserts an active exclusion record for login over rng.
// Returns the stored domain.ExclusionRecord.
func SeedExclusion(t *testing.T, pool *pgxpool.Pool, login string, rng domain.DateRange) domain.ExclusionRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.ExclusionRecord{
		ID:            uuid.New(),
		RefereeLogin:  login,
		ExcludedBy:    "seed-" + uniqueSuffix(),
		StartDate:     rng.Start,
		EndDate:       rng.End,
		ExclusionDate: time.Now().UTC().Truncate(time.Microsecond),
		IsActive:      true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO exclusion_records (id, referee_login, excluded_by, reason, start_date, end_date, exclusion_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.RefereeLogin, rec.ExcludedBy, rec.Reason,
		rec.StartDate, rec.EndDate, rec.ExclusionDate, rec.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExclusion insert: %v", err)
	}

	return rec
}

// SeedLedgerRow inserts one latest-revision raw commission row for the period.
func SeedLedgerRow(t *testing.T, pool *pgxpool.Pool, rng domain.DateRange, member, referee, currency string, amount string) domain.LedgerRow {
	t.Helper()
	ctx := context.Background()

	row := domain.LedgerRow{
		PeriodStart:  rng.Start,
		PeriodEnd:    rng.End,
		MemberID:     int64(uuid.New().ID()),
		MemberLogin:  member,
		Currency:     currency,
		Level:        1,
		RefereeLogin: referee,
		Amount:       decimal.RequireFromString(amount),
		IsLatest:     true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO raw_commission_rows (period_start, period_end, member_id, member_login, currency,
		                                  relative_level, referee_login, commission_amount, is_latest)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		row.PeriodStart, row.PeriodEnd, row.MemberID, row.MemberLogin, row.Currency,
		row.Level, row.RefereeLogin, row.Amount, row.IsLatest,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLedgerRow insert: %v", err)
	}

	return row
}

// SeedStaleLedgerRow inserts a superseded (is_latest = false) revision; the
// aggregator must never count it.
func SeedStaleLedgerRow(t *testing.T, pool *pgxpool.Pool, rng domain.DateRange, member, referee, currency string, amount string) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO raw_commission_rows (period_start, period_end, member_id, member_login, currency,
		                                  relative_level, referee_login, commission_amount, is_latest)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false)`,
		rng.Start, rng.End, int64(uuid.New().ID()), member, currency,
		1, referee, decimal.RequireFromString(amount),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStaleLedgerRow insert: %v", err)
	}
}

// UniquePeriod returns a date range unlikely to collide with other tests'
// periods, anchored off a random day offset.
func UniquePeriod(t *testing.T) domain.DateRange {
	t.Helper()
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	offset := int(uuid.New().ID() % 100000)
	start := base.AddDate(0, 0, offset*7)
	return domain.DateRange{Start: start, End: start.AddDate(0, 0, 6)}
}
