// Package ledger reads raw commission rows from the ledger table. The
// ledger is an external, append-only store from the engine's perspective:
// this repository exposes no write operations.
package ledger

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peakline/commission-backend/internal/adapter/postgres"
	"github.com/peakline/commission-backend/internal/domain"
)

// Repo provides read-only access to raw commission rows.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListForPeriod returns the latest-revision ledger rows whose period matches
// rng exactly. Superseded rows (is_latest = false) never count toward a
// payout and are filtered here.
func (r *Repo) ListForPeriod(ctx context.Context, rng domain.DateRange, filter domain.LedgerFilter) ([]domain.LedgerRow, error) {
	builder := sq.Select(
		"period_start", "period_end", "member_id", "member_login",
		"currency", "relative_level", "referee_login", "commission_amount", "is_latest",
	).
		From("raw_commission_rows").
		Where(sq.Eq{"period_start": rng.Start}).
		Where(sq.Eq{"period_end": rng.End}).
		Where(sq.Eq{"is_latest": true}).
		OrderBy("member_login", "currency", "referee_login").
		PlaceholderFormat(sq.Dollar)

	if filter.Currency != nil {
		builder = builder.Where(sq.Eq{"currency": *filter.Currency})
	}
	if filter.MemberLogin != nil {
		builder = builder.Where(sq.Eq{"member_login": *filter.MemberLogin})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ledger query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "ledger_rows", rng.Key())
	}
	defer rows.Close()

	out := []domain.LedgerRow{}
	for rows.Next() {
		var lr domain.LedgerRow
		if err := rows.Scan(
			&lr.PeriodStart, &lr.PeriodEnd, &lr.MemberID, &lr.MemberLogin,
			&lr.Currency, &lr.Level, &lr.RefereeLogin, &lr.Amount, &lr.IsLatest,
		); err != nil {
			return nil, fmt.Errorf("scan ledger_row: %w", err)
		}
		lr.PeriodStart = domain.ToDate(lr.PeriodStart)
		lr.PeriodEnd = domain.ToDate(lr.PeriodEnd)
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger_rows: %w", err)
	}
	return out, nil
}
