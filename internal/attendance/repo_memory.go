package attendance

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory attendance store for tests.
type MemoryRepo struct {
	mu sync.Mutex

	Records []Record
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Upsert(ctx context.Context, rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Records {
		if r.Records[i].MemberID == rec.MemberID && r.Records[i].Day.Equal(rec.Day) {
			r.Records[i].Status = rec.Status
			r.Records[i].UpdatedAt = rec.UpdatedAt
			return r.Records[i], nil
		}
	}
	r.Records = append(r.Records, rec)
	return rec, nil
}

func (r *MemoryRepo) ListByMember(ctx context.Context, memberID string) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, 0)
	for _, rec := range r.Records {
		if rec.MemberID == memberID {
			out = append(out, rec)
		}
	}
	return out, nil
}
