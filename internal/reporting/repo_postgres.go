package reporting

import (
	"context"
	"database/sql"
	"time"

	"dialdesk/internal/calls"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) ListCallsByTeam(ctx context.Context, teamID string, from, to time.Time) ([]calls.CallResponse, error) {
	const q = `
SELECT id, name, phone, date, time, duration, time_spent, dialer, called_received_by,
disposition, remarks, notes, list_id, team_id, member_id, template, recording
FROM call_responses
WHERE team_id = $1 AND date >= $2 AND date < $3
ORDER BY date
`
	rows, err := r.db.QueryContext(ctx, q, teamID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]calls.CallResponse, 0)
	for rows.Next() {
		var cr calls.CallResponse
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
