package score

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"creditwise-backend/internal/domain/history"
	"creditwise-backend/internal/domain/profile"
)

const (
	ProfileUsedExisting = "existing"
	ProfileUsedCustom   = "custom"
)

type Usecase struct {
	profiles profile.Repository
	snaps    history.Repository
	log      *logrus.Logger
}

func NewUsecase(profiles profile.Repository, snaps history.Repository, log *logrus.Logger) *Usecase {
	return &Usecase{profiles: profiles, snaps: snaps, log: log}
}

type CalculateInput struct {
	UseExisting bool   `json:"useExisting"`
	Custom      *Input `json:"customProfile"`
}

type CalculationDTO struct {
	Result
	CalculatedAt time.Time `json:"calculated_at"`
	ProfileUsed  string    `json:"profile_used"`
}

// Calculate scores either the stored profile or a caller-supplied one.
// Scores computed from the stored profile are snapshotted into the monthly
// history; a snapshot failure is logged, never surfaced.
func (u *Usecase) Calculate(ctx context.Context, userID string, in CalculateInput) (*CalculationDTO, error) {
	var engineIn Input
	used := ProfileUsedCustom

	switch {
	case in.UseExisting:
		p, err := u.profiles.GetByUserID(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		engineIn = FromProfile(p)
		used = ProfileUsedExisting
	case in.Custom != nil:
		engineIn = *in.Custom
	default:
		return nil, fmt.Errorf("%w: either useExisting must be true or customProfile must be provided", ErrInvalidProfile)
	}

	res, err := ComputeScore(engineIn)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if used == ProfileUsedExisting && u.snaps != nil {
		snap := &history.Entry{
			UserID:       userID,
			Year:         now.Year(),
			Month:        int(now.Month()),
			Score:        res.Score,
			Category:     res.Category,
			CalculatedAt: now,
		}
		if err := u.snaps.Upsert(ctx, snap); err != nil && u.log != nil {
			u.log.WithError(err).WithField("user_id", userID).Warn("failed to snapshot credit score")
		}
	}

	return &CalculationDTO{Result: *res, CalculatedAt: now, ProfileUsed: used}, nil
}

// WhatIf scores a hypothetical profile. Never touches the profile store and
// never snapshots.
func (u *Usecase) WhatIf(ctx context.Context, in Input) (*CalculationDTO, error) {
	res, err := ComputeScore(in)
	if err != nil {
		return nil, err
	}
	return &CalculationDTO{Result: *res, CalculatedAt: time.Now().UTC(), ProfileUsed: ProfileUsedCustom}, nil
}

// FromProfile maps a stored profile onto the engine's input.
func FromProfile(p *profile.FinancialProfile) Input {
	return Input{
		Age:                  p.Age,
		MonthlyIncome:        p.MonthlyIncome,
		MonthlyExpenses:      p.MonthlyExpenses,
		EmploymentType:       string(p.EmploymentType),
		ExistingLoanAmount:   p.ExistingLoanAmount,
		CreditUtilizationPct: p.CreditUtilizationPct,
		PaymentHistoryStatus: string(p.PaymentHistoryStatus),
	}
}
