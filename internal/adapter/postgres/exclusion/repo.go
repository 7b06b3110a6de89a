// Package exclusion implements the ExclusionRecord repository using
// PostgreSQL. Records are append-and-update only; there is no delete.
//
// The exclusion_records table carries a gist exclusion constraint over
// (referee_login, daterange) restricted to active rows; it is the
// authoritative guard against overlapping active exclusions for the same
// login, regardless of what the service layer checked first.
package exclusion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peakline/commission-backend/internal/adapter/postgres"
	"github.com/peakline/commission-backend/internal/domain"
)

// Repo provides exclusion record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exclusion repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const exclusionColumns = `id, referee_login, excluded_by, reason, start_date, end_date, exclusion_date, is_active`

const createSQL = `
INSERT INTO exclusion_records (id, referee_login, excluded_by, reason, start_date, end_date, exclusion_date, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + exclusionColumns

const getByIDSQL = `
SELECT ` + exclusionColumns + `
FROM exclusion_records
WHERE id = $1`

const updateSQL = `
UPDATE exclusion_records
SET is_active = $2, reason = $3, end_date = $4
WHERE id = $1
RETURNING ` + exclusionColumns

const listSQL = `
SELECT ` + exclusionColumns + `
FROM exclusion_records
ORDER BY exclusion_date DESC`

const listActiveSQL = `
SELECT ` + exclusionColumns + `
FROM exclusion_records
WHERE is_active
ORDER BY exclusion_date DESC`

const activeOverlappingSQL = `
SELECT ` + exclusionColumns + `
FROM exclusion_records
WHERE referee_login = $1
  AND is_active
  AND start_date <= $3
  AND end_date >= $2
ORDER BY start_date`

const activeForRangeSQL = `
SELECT ` + exclusionColumns + `
FROM exclusion_records
WHERE is_active
  AND start_date <= $2
  AND end_date >= $1
ORDER BY exclusion_date DESC`

// Create inserts a new exclusion record and returns the persisted row.
// An overlap with another active record for the same login surfaces as
// domain.ErrOverlapConflict via the gist constraint.
func (r *Repo) Create(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		rec.ID, rec.RefereeLogin, rec.ExcludedBy, rec.Reason,
		rec.StartDate, rec.EndDate, rec.ExclusionDate, rec.IsActive,
	)
	created, err := scanExclusion(row)
	if err != nil {
		return domain.ExclusionRecord{}, postgres.MapError(err, "exclusion_record", rec.RefereeLogin)
	}
	return created, nil
}

// GetByID returns an exclusion record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.ExclusionRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanExclusion(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.ExclusionRecord{}, postgres.MapError(err, "exclusion_record", id.String())
	}
	return rec, nil
}

// Update persists the mutable fields (is_active, reason, end_date) of an
// existing record. Widening the range into another active exclusion for the
// same login surfaces as domain.ErrOverlapConflict.
func (r *Repo) Update(ctx context.Context, rec domain.ExclusionRecord) (domain.ExclusionRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanExclusion(q.QueryRow(ctx, updateSQL,
		rec.ID, rec.IsActive, rec.Reason, rec.EndDate,
	))
	if err != nil {
		return domain.ExclusionRecord{}, postgres.MapError(err, "exclusion_record", rec.ID.String())
	}
	return updated, nil
}

// ListAll returns every exclusion record, newest exclusion_date first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.ExclusionRecord, error) {
	return r.list(ctx, listSQL)
}

// ListActive returns active records only, newest exclusion_date first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.ExclusionRecord, error) {
	return r.list(ctx, listActiveSQL)
}

// ActiveOverlapping returns the active records for login whose inclusive
// date range overlaps rng, ordered by start_date.
func (r *Repo) ActiveOverlapping(ctx context.Context, login string, rng domain.DateRange) ([]domain.ExclusionRecord, error) {
	return r.list(ctx, activeOverlappingSQL, login, rng.Start, rng.End)
}

// ActiveForRange returns every active record overlapping rng; the service
// derives the period's excluded-login set from it.
func (r *Repo) ActiveForRange(ctx context.Context, rng domain.DateRange) ([]domain.ExclusionRecord, error) {
	return r.list(ctx, activeForRangeSQL, rng.Start, rng.End)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.ExclusionRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list exclusion_records: %w", err)
	}
	defer rows.Close()

	recs := []domain.ExclusionRecord{}
	for rows.Next() {
		rec, err := scanExclusion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exclusion_record: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exclusion_records: %w", err)
	}
	return recs, nil
}

func scanExclusion(row pgx.Row) (domain.ExclusionRecord, error) {
	var rec domain.ExclusionRecord
	err := row.Scan(
		&rec.ID, &rec.RefereeLogin, &rec.ExcludedBy, &rec.Reason,
		&rec.StartDate, &rec.EndDate, &rec.ExclusionDate, &rec.IsActive,
	)
	if err != nil {
		return domain.ExclusionRecord{}, err
	}
	rec.StartDate = domain.ToDate(rec.StartDate)
	rec.EndDate = domain.ToDate(rec.EndDate)
	return rec, nil
}
