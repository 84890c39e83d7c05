package calls

import "context"

type Repository interface {
	Create(ctx context.Context, cr CallResponse) error
	ListByTeam(ctx context.Context, teamID string) ([]CallResponse, error)
}
