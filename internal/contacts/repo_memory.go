package contacts

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory contact repository for tests and early
// development.
type MemoryRepo struct {
	mu sync.Mutex

	Contacts []Contact
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Create(ctx context.Context, c Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Contacts = append(r.Contacts, c)
	return nil
}

func (r *MemoryRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Contacts {
		if c.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Contact, len(r.Contacts))
	copy(out, r.Contacts)
	return out, nil
}

func (r *MemoryRepo) ListByList(ctx context.Context, listID string) ([]Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Contact, 0)
	for _, c := range r.Contacts {
		if c.ListID == listID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemoryRepo) CountByList(ctx context.Context, listID string) (int, error) {
	cs, _ := r.ListByList(ctx, listID)
	return len(cs), nil
}

func (r *MemoryRepo) NumbersInList(ctx context.Context, listID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0)
	for _, c := range r.Contacts {
		if c.ListID == listID {
			out = append(out, c.Number)
		}
	}
	return out, nil
}

func (r *MemoryRepo) BulkInsert(ctx context.Context, batch []Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Contacts = append(r.Contacts, batch...)
	return nil
}

// DeleteByList removes every contact referencing the list. Used by the list
// cascade in tests.
func (r *MemoryRepo) DeleteByList(ctx context.Context, listID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.Contacts[:0]
	removed := 0
	for _, c := range r.Contacts {
		if c.ListID == listID {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.Contacts = kept
	return removed, nil
}

// SetAssigneeByList overwrites assigned_to on every contact in the list.
func (r *MemoryRepo) SetAssigneeByList(ctx context.Context, listID, memberID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	updated := 0
	for i := range r.Contacts {
		if r.Contacts[i].ListID == listID {
			r.Contacts[i].AssignedTo = memberID
			updated++
		}
	}
	return updated, nil
}

// ClearAssignee releases every contact currently assigned to the member.
func (r *MemoryRepo) ClearAssignee(ctx context.Context, memberID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cleared := 0
	for i := range r.Contacts {
		if r.Contacts[i].AssignedTo == memberID {
			r.Contacts[i].AssignedTo = ""
			cleared++
		}
	}
	return cleared, nil
}

// ClearAllAssignees releases every contact assignment.
func (r *MemoryRepo) ClearAllAssignees(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cleared := 0
	for i := range r.Contacts {
		if r.Contacts[i].AssignedTo != "" {
			r.Contacts[i].AssignedTo = ""
			cleared++
		}
	}
	return cleared, nil
}
