package teams

import "context"

type Repository interface {
	Create(ctx context.Context, t Team) error
	GetByID(ctx context.Context, id string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	ListByAccount(ctx context.Context, accountID string) ([]Team, error)
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, id string) error

	// NamesByIDs resolves team names for a set of ids. Unknown ids are
	// simply absent from the result.
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
