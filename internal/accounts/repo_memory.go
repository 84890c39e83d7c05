package accounts

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory account repository for tests and early development.
type MemoryRepo struct {
	mu sync.Mutex

	Accounts []Account
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Create(ctx context.Context, a Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Accounts = append(r.Accounts, a)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Account, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.Accounts {
		if a.ID == id {
			return a, true, nil
		}
	}
	return Account{}, false, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Account, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.Accounts {
		if a.Email == email {
			return a, true, nil
		}
	}
	return Account{}, false, nil
}

func (r *MemoryRepo) Update(ctx context.Context, a Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Accounts {
		if r.Accounts[i].ID == a.ID {
			r.Accounts[i] = a
			return nil
		}
	}
	return nil
}

func (r *MemoryRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Accounts {
		if r.Accounts[i].ID == id {
			r.Accounts[i].PasswordHash = passwordHash
			r.Accounts[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return nil
}
