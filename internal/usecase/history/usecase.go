package history

import (
	"context"
	"time"

	domain "creditwise-backend/internal/domain/history"
)

// SimulatedMonths is how much history gets synthesized for users with no
// recorded snapshots yet.
const SimulatedMonths = 6

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Record upserts the score snapshot for the calendar month of `when`.
func (u *Usecase) Record(ctx context.Context, userID string, score int, category string, when time.Time) (*domain.Entry, error) {
	e := &domain.Entry{
		UserID:       userID,
		Year:         when.UTC().Year(),
		Month:        int(when.UTC().Month()),
		Score:        score,
		Category:     category,
		CalculatedAt: when.UTC(),
	}
	if err := u.repo.Upsert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns the user's chronological history. Users with no recorded
// snapshots get a synthesized series instead (simulated=true); synthesized
// rows are never persisted.
func (u *Usecase) List(ctx context.Context, userID string) ([]domain.Entry, bool, error) {
	entries, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if len(entries) == 0 {
		return Synthesize(SimulatedMonths, time.Now().UTC()), true, nil
	}
	return entries, false, nil
}

// Latest returns the most recent recorded snapshot, or nil when there is
// none.
func (u *Usecase) Latest(ctx context.Context, userID string) (*domain.Entry, error) {
	entries, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[len(entries)-1], nil
}
