package members

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory member repository for tests and early development.
type MemoryRepo struct {
	mu sync.Mutex

	Members []Member
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Create(ctx context.Context, m Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Members = append(r.Members, m)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Member, bool, error) {
	return r.find(func(m Member) bool { return m.ID == id })
}

func (r *MemoryRepo) GetByLoginID(ctx context.Context, loginID string) (Member, bool, error) {
	return r.find(func(m Member) bool { return m.LoginID == loginID })
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Member, bool, error) {
	return r.find(func(m Member) bool { return m.Email == email })
}

func (r *MemoryRepo) find(match func(Member) bool) (Member, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.Members {
		if match(m) {
			return m, true, nil
		}
	}
	return Member{}, false, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Member, len(r.Members))
	copy(out, r.Members)
	return out, nil
}

func (r *MemoryRepo) ListByTeam(ctx context.Context, teamID string) ([]Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Member, 0)
	for _, m := range r.Members {
		for _, id := range m.TeamIDs {
			if id == teamID {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, m Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Members {
		if r.Members[i].ID == m.ID {
			r.Members[i] = m
			return nil
		}
	}
	return nil
}

func (r *MemoryRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Members {
		if r.Members[i].ID == id {
			r.Members[i].PasswordHash = passwordHash
			return nil
		}
	}
	return nil
}

func (r *MemoryRepo) DeleteByLoginID(ctx context.Context, loginID string) (Member, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.Members {
		if m.LoginID == loginID {
			r.Members = append(r.Members[:i], r.Members[i+1:]...)
			return m, true, nil
		}
	}
	return Member{}, false, nil
}

func (r *MemoryRepo) DeleteAll(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.Members)
	r.Members = nil
	return n, nil
}

func (r *MemoryRepo) MemberExists(ctx context.Context, id string) (bool, error) {
	_, ok, err := r.GetByID(ctx, id)
	return ok, err
}
