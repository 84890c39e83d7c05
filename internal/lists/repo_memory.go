package lists

import (
	"context"
	"sync"

	"dialdesk/internal/contacts"
)

// MemoryRepo is an in-memory list repository for tests and early development.
// It cascades into a shared contacts.MemoryRepo the way the Postgres
// implementation cascades inside one transaction.
type MemoryRepo struct {
	mu sync.Mutex

	Lists    []List
	Contacts *contacts.MemoryRepo
}

func NewMemoryRepo(contactRepo *contacts.MemoryRepo) *MemoryRepo {
	return &MemoryRepo{Contacts: contactRepo}
}

func (r *MemoryRepo) Create(ctx context.Context, l List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lists = append(r.Lists, l)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (List, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.Lists {
		if l.ID == id {
			return l, true, nil
		}
	}
	return List{}, false, nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, name string) (List, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.Lists {
		if l.Name == name {
			return l, true, nil
		}
	}
	return List{}, false, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]List, len(r.Lists))
	copy(out, r.Lists)
	return out, nil
}

func (r *MemoryRepo) ListByTeam(ctx context.Context, teamID string) ([]List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]List, 0)
	for _, l := range r.Lists {
		if l.TeamID == teamID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *MemoryRepo) ListAssignedTo(ctx context.Context, memberID string) ([]List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]List, 0)
	for _, l := range r.Lists {
		if l.AssignedTo == memberID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, l List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Lists {
		if r.Lists[i].ID == l.ID {
			r.Lists[i] = l
			return nil
		}
	}
	return nil
}

func (r *MemoryRepo) DeleteCascade(ctx context.Context, id string) error {
	if _, err := r.Contacts.DeleteByList(ctx, id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.Lists[:0]
	for _, l := range r.Lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	r.Lists = kept
	return nil
}

func (r *MemoryRepo) DeleteByTeam(ctx context.Context, teamID string) error {
	r.mu.Lock()
	ids := make([]string, 0)
	for _, l := range r.Lists {
		if l.TeamID == teamID {
			ids = append(ids, l.ID)
		}
	}
	r.mu.Unlock()

	for _, id := range ids {
		if err := r.DeleteCascade(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryRepo) Empty(ctx context.Context, id string) error {
	_, err := r.Contacts.DeleteByList(ctx, id)
	return err
}

func (r *MemoryRepo) Assign(ctx context.Context, listID, memberID string) error {
	r.mu.Lock()
	for i := range r.Lists {
		if r.Lists[i].ID == listID {
			r.Lists[i].AssignedTo = memberID
		}
	}
	r.mu.Unlock()
	_, err := r.Contacts.SetAssigneeByList(ctx, listID, memberID)
	return err
}

func (r *MemoryRepo) Unassign(ctx context.Context, listID string) error {
	return r.Assign(ctx, listID, "")
}

func (r *MemoryRepo) ClearAssignee(ctx context.Context, memberID string) error {
	r.mu.Lock()
	for i := range r.Lists {
		if r.Lists[i].AssignedTo == memberID {
			r.Lists[i].AssignedTo = ""
		}
	}
	r.mu.Unlock()
	_, err := r.Contacts.ClearAssignee(ctx, memberID)
	return err
}

func (r *MemoryRepo) ClearAllAssignees(ctx context.Context) error {
	r.mu.Lock()
	for i := range r.Lists {
		r.Lists[i].AssignedTo = ""
	}
	r.mu.Unlock()
	_, err := r.Contacts.ClearAllAssignees(ctx)
	return err
}
