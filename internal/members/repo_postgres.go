package members

import (
	"context"
	"database/sql"
	"errors"

	"dialdesk/pkg/utils"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

const memberColumns = `
id, name, login_id, email, password_hash, role, phone, is_logged_in,
last_activity, created_at, updated_at`

func scanMember(row interface{ Scan(...any) error }) (Member, error) {
	var m Member
	err := row.Scan(
		&m.ID, &m.Name, &m.LoginID, &m.Email, &m.PasswordHash, &m.Role,
		&m.Phone, &m.IsLoggedIn, &m.LastActivity, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PostgresRepo) Create(ctx context.Context, m Member) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		const q = `
INSERT INTO members (
  id, name, login_id, email, password_hash, role, phone, is_logged_in,
  last_activity, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`
		if _, err := tx.ExecContext(ctx, q,
			m.ID, m.Name, m.LoginID, m.Email, m.PasswordHash, m.Role, m.Phone,
			m.IsLoggedIn, m.LastActivity, m.CreatedAt, m.UpdatedAt,
		); err != nil {
			return err
		}
		for _, teamID := range m.TeamIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO team_members (team_id, member_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
				teamID, m.ID,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Member, bool, error) {
	return r.get(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
}

func (r *PostgresRepo) GetByLoginID(ctx context.Context, loginID string) (Member, bool, error) {
	return r.get(ctx, `SELECT `+memberColumns+` FROM members WHERE login_id = $1`, loginID)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (Member, bool, error) {
	return r.get(ctx, `SELECT `+memberColumns+` FROM members WHERE email = $1`, email)
}

func (r *PostgresRepo) get(ctx context.Context, q string, arg any) (Member, bool, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Member{}, false, nil
		}
		return Member{}, false, err
	}
	if err := r.loadTeams(ctx, &m); err != nil {
		return Member{}, false, err
	}
	return m, true, nil
}

func (r *PostgresRepo) loadTeams(ctx context.Context, m *Member) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT team_id FROM team_members WHERE member_id = $1 ORDER BY team_id`, m.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	m.TeamIDs = make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		m.TeamIDs = append(m.TeamIDs, id)
	}
	return rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context) ([]Member, error) {
	return r.query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY created_at`)
}

func (r *PostgresRepo) ListByTeam(ctx context.Context, teamID string) ([]Member, error) {
	q := `SELECT ` + memberColumns + `
FROM members m
JOIN team_members tm ON tm.member_id = m.id
WHERE tm.team_id = $1
ORDER BY m.created_at`
	return r.query(ctx, q, teamID)
}

func (r *PostgresRepo) Update(ctx context.Context, m Member) error {
	const q = `
UPDATE members SET name = $2, phone = $3, is_logged_in = $4, last_activity = $5, updated_at = $6
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Name, m.Phone, m.IsLoggedIn, m.LastActivity, m.UpdatedAt)
	return err
}

func (r *PostgresRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const q = `UPDATE members SET password_hash = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, passwordHash)
	return err
}

func (r *PostgresRepo) DeleteByLoginID(ctx context.Context, loginID string) (Member, bool, error) {
	m, ok, err := r.GetByLoginID(ctx, loginID)
	if err != nil || !ok {
		return Member{}, ok, err
	}

	err = utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE member_id = $1`, m.ID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, m.ID)
		return err
	})
	if err != nil {
		return Member{}, false, err
	}
	return m, true, nil
}

func (r *PostgresRepo) DeleteAll(ctx context.Context) (int, error) {
	var n int
	err := utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM team_members`); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM members`)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		n = int(affected)
		return nil
	})
	return n, err
}

func (r *PostgresRepo) query(ctx context.Context, q string, args ...any) ([]Member, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.loadTeams(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MemberExists implements the existence check the list manager depends on.
func (r *PostgresRepo) MemberExists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
