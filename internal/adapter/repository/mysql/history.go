package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	historyDomain "creditwise-backend/internal/domain/history"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

// Upsert relies on the unique (user_id, year, month) index: writing an
// existing month overwrites the score, category, and timestamp.
func (r *HistoryRepository) Upsert(ctx context.Context, e *historyDomain.Entry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "category", "calculated_at"}),
	}).Create(e).Error
}

func (r *HistoryRepository) ListByUserID(ctx context.Context, userID string) ([]historyDomain.Entry, error) {
	var out []historyDomain.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year ASC, month ASC").
		Find(&out).Error
	return out, err
}
