package teams

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory team repository for tests and early development.
type MemoryRepo struct {
	mu sync.Mutex

	Teams []Team
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Create(ctx context.Context, t Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Teams = append(r.Teams, t)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.Teams {
		if t.ID == id {
			return t, true, nil
		}
	}
	return Team{}, false, nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, name string) (Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.Teams {
		if t.Name == name {
			return t, true, nil
		}
	}
	return Team{}, false, nil
}

func (r *MemoryRepo) ListByAccount(ctx context.Context, accountID string) ([]Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Team, 0)
	for _, t := range r.Teams {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, t Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Teams {
		if r.Teams[i].ID == t.ID {
			r.Teams[i] = t
			return nil
		}
	}
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.Teams[:0]
	for _, t := range r.Teams {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.Teams = kept
	return nil
}

func (r *MemoryRepo) NamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		for _, t := range r.Teams {
			if t.ID == id {
				out[id] = t.Name
			}
		}
	}
	return out, nil
}

func (r *MemoryRepo) TeamExists(ctx context.Context, id string) (bool, error) {
	_, ok, err := r.GetByID(ctx, id)
	return ok, err
}
