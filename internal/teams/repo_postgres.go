package teams

import (
	"context"
	"database/sql"
	"errors"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

const teamColumns = `id, name, account_id, created_at, updated_at`

func (r *PostgresRepo) Create(ctx context.Context, t Team) error {
	const q = `
INSERT INTO teams (id, name, account_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5)
`
	_, err := r.db.ExecContext(ctx, q, t.ID, t.Name, t.AccountID, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Team, bool, error) {
	return r.get(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
}

func (r *PostgresRepo) GetByName(ctx context.Context, name string) (Team, bool, error) {
	return r.get(ctx, `SELECT `+teamColumns+` FROM teams WHERE name = $1`, name)
}

func (r *PostgresRepo) get(ctx context.Context, q string, arg any) (Team, bool, error) {
	var t Team
	err := r.db.QueryRowContext(ctx, q, arg).Scan(&t.ID, &t.Name, &t.AccountID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Team{}, false, nil
		}
		return Team{}, false, err
	}
	return t, true, nil
}

func (r *PostgresRepo) ListByAccount(ctx context.Context, accountID string) ([]Team, error) {
	const q = `SELECT ` + teamColumns + ` FROM teams WHERE account_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, q, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Team, 0)
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.AccountID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, t Team) error {
	const q = `UPDATE teams SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, t.ID, t.Name, t.UpdatedAt)
	return err
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	return err
}

func (r *PostgresRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	const q = `SELECT name FROM teams WHERE id = $1`
	for _, id := range ids {
		var name string
		err := r.db.QueryRowContext(ctx, q, id).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[id] = name
	}
	return out, nil
}

// TeamExists implements the existence checks other packages depend on.
func (r *PostgresRepo) TeamExists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM teams WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
