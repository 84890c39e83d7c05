package accounts

import "context"

type Repository interface {
	Create(ctx context.Context, a Account) error
	GetByID(ctx context.Context, id string) (Account, bool, error)
	GetByEmail(ctx context.Context, email string) (Account, bool, error)
	Update(ctx context.Context, a Account) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
