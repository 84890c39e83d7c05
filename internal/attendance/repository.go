package attendance

import "context"

type Repository interface {
	// Upsert marks the (member, day) row, creating it if absent. Repeated
	// calls for the same day touch the same row.
	Upsert(ctx context.Context, rec Record) (Record, error)
	ListByMember(ctx context.Context, memberID string) ([]Record, error)
}
