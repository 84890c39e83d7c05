package reporting

import (
	"context"
	"errors"
	"sync"
	"time"

	"dialdesk/internal/calls"
)

// MemoryRepo is an in-memory reporting source for tests and early development.
type MemoryRepo struct {
	mu sync.Mutex

	Calls []calls.CallResponse
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) ListCallsByTeam(ctx context.Context, teamID string, from, to time.Time) ([]calls.CallResponse, error) {
	if teamID == "" {
		return nil, errors.New("teamId required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]calls.CallResponse, 0)
	for _, cr := range r.Calls {
		if cr.TeamID != teamID {
			continue
		}
		if cr.Date.Before(from) || !cr.Date.Before(to) {
			continue
		}
		out = append(out, cr)
	}
	return out, nil
}
