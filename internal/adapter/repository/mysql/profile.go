package mysql

import (
	"context"

	"gorm.io/gorm"

	profileDomain "creditwise-backend/internal/domain/profile"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) Create(ctx context.Context, p *profileDomain.FinancialProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) Save(ctx context.Context, p *profileDomain.FinancialProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*profileDomain.FinancialProfile, error) {
	var out profileDomain.FinancialProfile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&profileDomain.FinancialProfile{}).Error
}
