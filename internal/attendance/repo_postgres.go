package attendance

import (
	"context"
	"database/sql"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

const attendanceColumns = `id, member_id, day, status, created_at, updated_at`

func (r *PostgresRepo) Upsert(ctx context.Context, rec Record) (Record, error) {
	const q = `
INSERT INTO attendance (id, member_id, day, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (member_id, day)
DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
RETURNING ` + attendanceColumns + `
`
	var out Record
	err := r.db.QueryRowContext(ctx, q,
		rec.ID, rec.MemberID, rec.Day, rec.Status, rec.CreatedAt, rec.UpdatedAt).
		Scan(&out.ID, &out.MemberID, &out.Day, &out.Status, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return Record{}, err
	}
	return out, nil
}

func (r *PostgresRepo) ListByMember(ctx context.Context, memberID string) ([]Record, error) {
	const q = `SELECT ` + attendanceColumns + ` FROM attendance WHERE member_id = $1 ORDER BY day`
	rows, err := r.db.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.MemberID, &rec.Day, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
