package accounts

import (
	"context"
	"database/sql"
	"errors"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

const accountColumns = `id, first_name, last_name, company_name, contact_number, email, password_hash, created_at, updated_at`

func (r *PostgresRepo) Create(ctx context.Context, a Account) error {
	const q = `
INSERT INTO accounts (id, first_name, last_name, company_name, contact_number, email, password_hash, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.FirstName, a.LastName, a.CompanyName, a.ContactNumber, a.Email, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Account, bool, error) {
	return r.get(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (Account, bool, error) {
	return r.get(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
}

func (r *PostgresRepo) get(ctx context.Context, q string, arg any) (Account, bool, error) {
	var a Account
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.CompanyName, &a.ContactNumber, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, false, nil
		}
		return Account{}, false, err
	}
	return a, true, nil
}

func (r *PostgresRepo) Update(ctx context.Context, a Account) error {
	const q = `
UPDATE accounts
SET first_name = $2, last_name = $3, company_name = $4, contact_number = $5, updated_at = $6
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, q, a.ID, a.FirstName, a.LastName, a.CompanyName, a.ContactNumber, a.UpdatedAt)
	return err
}

func (r *PostgresRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const q = `UPDATE accounts SET password_hash = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, passwordHash)
	return err
}
