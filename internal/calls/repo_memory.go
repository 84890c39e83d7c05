package calls

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory call-response log for tests.
type MemoryRepo struct {
	mu sync.Mutex

	Responses []CallResponse
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Create(ctx context.Context, cr CallResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Responses = append(r.Responses, cr)
	return nil
}

func (r *MemoryRepo) ListByTeam(ctx context.Context, teamID string) ([]CallResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CallResponse, 0)
	for _, cr := range r.Responses {
		if cr.TeamID == teamID {
			out = append(out, cr)
		}
	}
	return out, nil
}
