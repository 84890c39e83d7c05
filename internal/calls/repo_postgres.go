package calls

import (
	"context"
	"database/sql"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

const callColumns = `id, name, phone, date, time, duration, time_spent, dialer, called_received_by,
disposition, remarks, notes, list_id, team_id, member_id, template, recording`

func (r *PostgresRepo) Create(ctx context.Context, cr CallResponse) error {
	const q = `
INSERT INTO call_responses (` + callColumns + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
`
	_, err := r.db.ExecContext(ctx, q,
		cr.ID, cr.Name, cr.Phone, cr.Date, cr.Time, cr.Duration, cr.TimeSpent,
		cr.Dialer, cr.CalledReceivedBy, cr.Disposition, cr.Remarks, cr.Notes,
		cr.ListID, cr.TeamID, cr.MemberID, cr.Template, cr.Recording)
	return err
}

func (r *PostgresRepo) ListByTeam(ctx context.Context, teamID string) ([]CallResponse, error) {
	const q = `SELECT ` + callColumns + ` FROM call_responses WHERE team_id = $1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, q, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CallResponse, 0)
	for rows.Next() {
		var cr CallResponse
		if err := rows.Scan(
			&cr.ID, &cr.Name, &cr.Phone, &cr.Date, &cr.Time, &cr.Duration, &cr.TimeSpent,
			&cr.Dialer, &cr.CalledReceivedBy, &cr.Disposition, &cr.Remarks, &cr.Notes,
			&cr.ListID, &cr.TeamID, &cr.MemberID, &cr.Template, &cr.Recording); err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}
