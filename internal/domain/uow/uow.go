package uow

import (
	"context"

	"creditwise-backend/internal/domain/history"
	"creditwise-backend/internal/domain/profile"
)

type Repos struct {
	Profiles profile.Repository
	History  history.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
