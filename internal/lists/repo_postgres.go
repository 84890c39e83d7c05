package lists

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

const listColumns = `id, name, team_id, COALESCE(assigned_to, ''), created_at, updated_at`

func (r *PostgresRepo) Create(ctx context.Context, l List) error {
	const q = `
INSERT INTO lists (id, name, team_id, assigned_to, created_at, updated_at)
VALUES ($1,$2,$3,NULLIF($4,''),$5,$6)
`
	_, err := r.db.ExecContext(ctx, q, l.ID, l.Name, l.TeamID, l.AssignedTo, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (List, bool, error) {
	q := `SELECT ` + listColumns + ` FROM lists WHERE id = $1`
	return r.get(ctx, q, id)
}

func (r *PostgresRepo) GetByName(ctx context.Context, name string) (List, bool, error) {
	q := `SELECT ` + listColumns + ` FROM lists WHERE name = $1`
	return r.get(ctx, q, name)
}

func (r *PostgresRepo) get(ctx context.Context, q string, arg any) (List, bool, error) {
	var l List
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&l.ID, &l.Name, &l.TeamID, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return List{}, false, nil
		}
		return List{}, false, err
	}
	return l, true, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]List, error) {
	q := `SELECT ` + listColumns + ` FROM lists ORDER BY created_at`
	return r.query(ctx, q)
}

func (r *PostgresRepo) ListByTeam(ctx context.Context, teamID string) ([]List, error) {
	q := `SELECT ` + listColumns + ` FROM lists WHERE team_id = $1 ORDER BY created_at`
	return r.query(ctx, q, teamID)
}

func (r *PostgresRepo) ListAssignedTo(ctx context.Context, memberID string) ([]List, error) {
	q := `SELECT ` + listColumns + ` FROM lists WHERE assigned_to = $1 ORDER BY created_at`
	return r.query(ctx, q, memberID)
}

func (r *PostgresRepo) Update(ctx context.Context, l List) error {
	const q = `
UPDATE lists SET name = $2, assigned_to = NULLIF($3,''), updated_at = $4
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, q, l.ID, l.Name, l.AssignedTo, l.UpdatedAt)
	return err
}

func (r *PostgresRepo) DeleteCascade(ctx context.Context, id string) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE list_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = $1`, id)
		return err
	})
}

func (r *PostgresRepo) DeleteByTeam(ctx context.Context, teamID string) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM contacts WHERE list_id IN (SELECT id FROM lists WHERE team_id = $1)`, teamID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE team_id = $1`, teamID)
		return err
	})
}

func (r *PostgresRepo) Empty(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE list_id = $1`, id)
	return err
}

func (r *PostgresRepo) Assign(ctx context.Context, listID, memberID string) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE lists SET assigned_to = $2, updated_at = now() WHERE id = $1`, listID, memberID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE contacts SET assigned_to = $2 WHERE list_id = $1`, listID, memberID)
		return err
	})
}

func (r *PostgresRepo) Unassign(ctx context.Context, listID string) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE lists SET assigned_to = NULL, updated_at = now() WHERE id = $1`, listID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE contacts SET assigned_to = NULL WHERE list_id = $1`, listID)
		return err
	})
}

func (r *PostgresRepo) ClearAssignee(ctx context.Context, memberID string) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE lists SET assigned_to = NULL, updated_at = now() WHERE assigned_to = $1`, memberID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE contacts SET assigned_to = NULL WHERE assigned_to = $1`, memberID)
		return err
	})
}

func (r *PostgresRepo) ClearAllAssignees(ctx context.Context) error {
	return utils.WithTx(ctx, r.db, &sql.TxOptions{}, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE lists SET assigned_to = NULL, updated_at = now() WHERE assigned_to IS NOT NULL`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE contacts SET assigned_to = NULL WHERE assigned_to IS NOT NULL`)
		return err
	})
}

func (r *PostgresRepo) query(ctx context.Context, q string, args ...any) ([]List, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]List, 0)
	for rows.Next() {
		var l List
		if err := rows.Scan(&l.ID, &l.Name, &l.TeamID, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
