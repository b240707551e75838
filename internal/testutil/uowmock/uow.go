package uowmock

import (
	"context"

	"creditwise-backend/internal/domain/uow"
)

// UoW runs the transactional body against the supplied repos, with no real
// transaction semantics.
type UoW struct {
	Repos      uow.Repos
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
