package profilemock

import (
	"context"

	domain "creditwise-backend/internal/domain/profile"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, p *domain.FinancialProfile) error
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.FinancialProfile, error)
	SaveFn        func(ctx context.Context, p *domain.FinancialProfile) error
	DeleteFn      func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.FinancialProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.FinancialProfile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.FinancialProfile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil
}
