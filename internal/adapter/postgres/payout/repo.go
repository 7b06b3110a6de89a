// Package payout implements persistence for finalized payout entries and
// submission records.
//
// The submissions table has a primary key over (period_start, period_end):
// that constraint, not the service-level period lock, is what makes a
// period's finalization at-most-once under concurrent callers.
package payout

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peakline/commission-backend/internal/adapter/postgres"
	"github.com/peakline/commission-backend/internal/domain"
)

// Repo provides payout entry and submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new payout repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const deleteEntriesSQL = `
DELETE FROM payout_entries
WHERE period_start = $1 AND period_end = $2`

const insertEntrySQL = `
INSERT INTO payout_entries (period_start, period_end, member_id, member_login, currency,
                            total_commission, generated_at, submitted_by, verified)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const listEntriesSQL = `
SELECT period_start, period_end, member_id, member_login, currency,
       total_commission, generated_at, submitted_by, verified
FROM payout_entries
WHERE period_start = $1 AND period_end = $2
ORDER BY member_login, currency`

const createSubmissionSQL = `
INSERT INTO submissions (period_start, period_end, submitted_by, submitted_at, excluded_count)
VALUES ($1, $2, $3, $4, $5)
RETURNING period_start, period_end, submitted_by, submitted_at, excluded_count`

const getSubmissionSQL = `
SELECT period_start, period_end, submitted_by, submitted_at, excluded_count
FROM submissions
WHERE period_start = $1 AND period_end = $2`

// ReplaceEntries atomically rewrites the payout entry set for a period:
// delete of the previous set and insert of the new one run in a single
// batch on one connection. Entries must all belong to the given period.
func (r *Repo) ReplaceEntries(ctx context.Context, rng domain.DateRange, entries []domain.PayoutEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	batch.Queue(deleteEntriesSQL, rng.Start, rng.End)
	for _, e := range entries {
		batch.Queue(insertEntrySQL,
			e.PeriodStart, e.PeriodEnd, e.MemberID, e.MemberLogin, e.Currency,
			e.Total, e.GeneratedAt, e.SubmittedBy, e.Verified,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "payout_entries", rng.Key())
		}
	}
	return nil
}

// ListEntries returns the stored payout entries for a period, ordered by
// member login then currency (the engine's deterministic output order).
func (r *Repo) ListEntries(ctx context.Context, rng domain.DateRange) ([]domain.PayoutEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listEntriesSQL, rng.Start, rng.End)
	if err != nil {
		return nil, postgres.MapError(err, "payout_entries", rng.Key())
	}
	defer rows.Close()

	entries := []domain.PayoutEntry{}
	for rows.Next() {
		var e domain.PayoutEntry
		if err := rows.Scan(
			&e.PeriodStart, &e.PeriodEnd, &e.MemberID, &e.MemberLogin, &e.Currency,
			&e.Total, &e.GeneratedAt, &e.SubmittedBy, &e.Verified,
		); err != nil {
			return nil, fmt.Errorf("scan payout_entry: %w", err)
		}
		e.PeriodStart = domain.ToDate(e.PeriodStart)
		e.PeriodEnd = domain.ToDate(e.PeriodEnd)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list payout_entries: %w", err)
	}
	return entries, nil
}

// CreateSubmission inserts the one-per-period submission record. A second
// insert for the same period violates the primary key and surfaces as
// domain.ErrAlreadyExists; the service maps it to ErrAlreadySubmitted.
func (r *Repo) CreateSubmission(ctx context.Context, sub domain.Submission) (domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSubmissionSQL,
		sub.PeriodStart, sub.PeriodEnd, sub.SubmittedBy, sub.SubmittedAt, sub.ExcludedCount,
	)

	var out domain.Submission
	if err := row.Scan(
		&out.PeriodStart, &out.PeriodEnd, &out.SubmittedBy, &out.SubmittedAt, &out.ExcludedCount,
	); err != nil {
		return domain.Submission{}, postgres.MapError(err, "submission", sub.Period().Key())
	}
	out.PeriodStart = domain.ToDate(out.PeriodStart)
	out.PeriodEnd = domain.ToDate(out.PeriodEnd)
	return out, nil
}

// GetSubmission returns the submission record for a period, or
// domain.ErrNotFound when the period is still open.
func (r *Repo) GetSubmission(ctx context.Context, rng domain.DateRange) (domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var sub domain.Submission
	err := q.QueryRow(ctx, getSubmissionSQL, rng.Start, rng.End).Scan(
		&sub.PeriodStart, &sub.PeriodEnd, &sub.SubmittedBy, &sub.SubmittedAt, &sub.ExcludedCount,
	)
	if err != nil {
		return domain.Submission{}, postgres.MapError(err, "submission", rng.Key())
	}
	sub.PeriodStart = domain.ToDate(sub.PeriodStart)
	sub.PeriodEnd = domain.ToDate(sub.PeriodEnd)
	return sub, nil
}
