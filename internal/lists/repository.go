package lists

import "context"

// Repository abstracts list persistence, including the cascades over the
// contacts a list contains. Implementations must make each cascade atomic.
type Repository interface {
	Create(ctx context.Context, l List) error
	GetByID(ctx context.Context, id string) (List, bool, error)
	GetByName(ctx context.Context, name string) (List, bool, error)
	List(ctx context.Context) ([]List, error)
	ListByTeam(ctx context.Context, teamID string) ([]List, error)
	ListAssignedTo(ctx context.Context, memberID string) ([]List, error)
	Update(ctx context.Context, l List) error

	// DeleteCascade removes the list and every contact referencing it.
	DeleteCascade(ctx context.Context, id string) error
	// DeleteByTeam removes every list the team owns, contacts included.
	DeleteByTeam(ctx context.Context, teamID string) error
	// Empty removes the contacts but keeps the list row.
	Empty(ctx context.Context, id string) error

	// Assign sets assigned_to on the list and on all its contacts.
	// Last writer wins; a previous assignee is overwritten silently.
	Assign(ctx context.Context, listID, memberID string) error
	// Unassign clears assigned_to on the list and on all its contacts.
	Unassign(ctx context.Context, listID string) error
	// ClearAssignee nulls assigned_to wherever it points at the member,
	// on lists and on contacts.
	ClearAssignee(ctx context.Context, memberID string) error
	// ClearAllAssignees nulls every assigned_to on lists and contacts.
	ClearAllAssignees(ctx context.Context) error
}
