package profile

import "context"

type Repository interface {
	Create(ctx context.Context, p *FinancialProfile) error
	GetByUserID(ctx context.Context, userID string) (*FinancialProfile, error)
	Save(ctx context.Context, p *FinancialProfile) error
	// Delete is administrative only; it is never routed publicly.
	Delete(ctx context.Context, userID string) error
}
