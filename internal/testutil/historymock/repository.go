package historymock

import (
	"context"

	domain "creditwise-backend/internal/domain/history"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	UpsertFn       func(ctx context.Context, e *domain.Entry) error
	ListByUserIDFn func(ctx context.Context, userID string) ([]domain.Entry, error)
}

func (m *Repo) Upsert(ctx context.Context, e *domain.Entry) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Entry, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}
