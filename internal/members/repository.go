package members

import "context"

// Repository abstracts member persistence, including the team_members
// roster rows a member carries. Create and DeleteByLoginID must keep the
// roster consistent atomically.
type Repository interface {
	Create(ctx context.Context, m Member) error
	GetByID(ctx context.Context, id string) (Member, bool, error)
	GetByLoginID(ctx context.Context, loginID string) (Member, bool, error)
	GetByEmail(ctx context.Context, email string) (Member, bool, error)
	List(ctx context.Context) ([]Member, error)
	ListByTeam(ctx context.Context, teamID string) ([]Member, error)
	Update(ctx context.Context, m Member) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// DeleteByLoginID removes the member and pulls them from every team
	// roster. Returns the deleted member.
	DeleteByLoginID(ctx context.Context, loginID string) (Member, bool, error)
	// DeleteAll wipes every member and roster row; returns the count.
	DeleteAll(ctx context.Context) (int, error)
}
