package history

import "context"

type Repository interface {
	// Upsert writes the entry keyed by (user, year, month), overwriting an
	// existing snapshot for that month.
	Upsert(ctx context.Context, e *Entry) error
	// ListByUserID returns the user's snapshots in chronological order.
	ListByUserID(ctx context.Context, userID string) ([]Entry, error)
}
