// Package audit implements the audit log repository using PostgreSQL.
// The table is append-only: no update or delete statements exist here,
// and none may ever be added.
package audit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peakline/commission-backend/internal/adapter/postgres"
	"github.com/peakline/commission-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO audit_log (id, referee_login, action, action_by, details, previous_state, new_state, action_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, referee_login, action, action_by, details, previous_state, new_state, action_date`

// Create appends a new audit entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		entry.ID, entry.RefereeLogin, string(entry.Action), entry.ActionBy,
		entry.Details, entry.PreviousState, entry.NewState, entry.ActionDate,
	)

	var out domain.AuditEntry
	if err := row.Scan(
		&out.ID, &out.RefereeLogin, &out.Action, &out.ActionBy,
		&out.Details, &out.PreviousState, &out.NewState, &out.ActionDate,
	); err != nil {
		return domain.AuditEntry{}, postgres.MapError(err, "audit_entry", entry.RefereeLogin)
	}
	return out, nil
}

// Log appends an audit entry without returning it (fire-and-forget).
// Satisfies the exclusion service's auditWriter interface.
func (r *Repo) Log(ctx context.Context, entry domain.AuditEntry) error {
	_, err := r.Create(ctx, entry)
	return err
}

// List returns audit entries ordered by action_date DESC, limited to limit
// rows. When login is non-nil, only entries for that referee login are
// returned.
func (r *Repo) List(ctx context.Context, login *string, limit int) ([]domain.AuditEntry, error) {
	builder := sq.Select("id", "referee_login", "action", "action_by", "details", "previous_state", "new_state", "action_date").
		From("audit_log").
		OrderBy("action_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	if login != nil {
		builder = builder.Where(sq.Eq{"referee_login": *login})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_log: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(
			&e.ID, &e.RefereeLogin, &e.Action, &e.ActionBy,
			&e.Details, &e.PreviousState, &e.NewState, &e.ActionDate,
		); err != nil {
			return nil, fmt.Errorf("scan audit_entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit_log: %w", err)
	}
	return entries, nil
}
