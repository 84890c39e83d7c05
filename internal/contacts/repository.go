package contacts

import "context"

// Repository abstracts contact persistence.
// All reads that take a list id must filter strictly by that list.
type Repository interface {
	Create(ctx context.Context, c Contact) error
	NumberExists(ctx context.Context, number string) (bool, error)
	List(ctx context.Context) ([]Contact, error)
	ListByList(ctx context.Context, listID string) ([]Contact, error)
	CountByList(ctx context.Context, listID string) (int, error)

	// NumbersInList returns every phone number already present in the list.
	// The import pipeline loads this once per request, not per row.
	NumbersInList(ctx context.Context, listID string) ([]string, error)

	// BulkInsert inserts all staged contacts in one call.
	BulkInsert(ctx context.Context, batch []Contact) error
}
