package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "creditwise-backend/internal/domain/profile"
	"creditwise-backend/internal/domain/uow"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type CreateInput struct {
	Age                  int     `json:"age"`
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	EmploymentType       string  `json:"employment_type"`
	ExistingLoanAmount   float64 `json:"existing_loan_amount"`
	CreditUtilizationPct float64 `json:"credit_utilization_percentage"`
	PaymentHistoryStatus string  `json:"payment_history_status"`
}

// UpdateInput carries only the fields present in the request; nil fields
// are left untouched.
type UpdateInput struct {
	Age                  *int     `json:"age"`
	MonthlyIncome        *float64 `json:"monthly_income"`
	MonthlyExpenses      *float64 `json:"monthly_expenses"`
	EmploymentType       *string  `json:"employment_type"`
	ExistingLoanAmount   *float64 `json:"existing_loan_amount"`
	CreditUtilizationPct *float64 `json:"credit_utilization_percentage"`
	PaymentHistoryStatus *string  `json:"payment_history_status"`
}

type DTO struct {
	UserID               string    `json:"user_id"`
	Age                  int       `json:"age"`
	MonthlyIncome        float64   `json:"monthly_income"`
	MonthlyExpenses      float64   `json:"monthly_expenses"`
	EmploymentType       string    `json:"employment_type"`
	ExistingLoanAmount   float64   `json:"existing_loan_amount"`
	CreditUtilizationPct float64   `json:"credit_utilization_percentage"`
	PaymentHistoryStatus string    `json:"payment_history_status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Create stores the user's profile. A user owns at most one profile; a
// second create fails with ErrAlreadyExists. The exists-check and insert
// run in one transaction.
func (u *Usecase) Create(ctx context.Context, userID string, in CreateInput) (*DTO, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if err := validateFields(in.Age, in.MonthlyIncome, in.MonthlyExpenses, in.EmploymentType, in.ExistingLoanAmount, in.CreditUtilizationPct, in.PaymentHistoryStatus); err != nil {
		return nil, err
	}

	p := &domain.FinancialProfile{
		UserID:               userID,
		Age:                  in.Age,
		MonthlyIncome:        in.MonthlyIncome,
		MonthlyExpenses:      in.MonthlyExpenses,
		EmploymentType:       domain.EmploymentType(in.EmploymentType),
		ExistingLoanAmount:   in.ExistingLoanAmount,
		CreditUtilizationPct: in.CreditUtilizationPct,
		PaymentHistoryStatus: domain.PaymentHistory(in.PaymentHistoryStatus),
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Profiles.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			return domain.ErrAlreadyExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return r.Profiles.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*DTO, error) {
	p, err := u.repo.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// Update applies a partial update and stamps UpdatedAt (via gorm).
func (u *Usecase) Update(ctx context.Context, userID string, in UpdateInput) (*DTO, error) {
	p, err := u.repo.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.MonthlyIncome != nil {
		p.MonthlyIncome = *in.MonthlyIncome
	}
	if in.MonthlyExpenses != nil {
		p.MonthlyExpenses = *in.MonthlyExpenses
	}
	if in.EmploymentType != nil {
		p.EmploymentType = domain.EmploymentType(*in.EmploymentType)
	}
	if in.ExistingLoanAmount != nil {
		p.ExistingLoanAmount = *in.ExistingLoanAmount
	}
	if in.CreditUtilizationPct != nil {
		p.CreditUtilizationPct = *in.CreditUtilizationPct
	}
	if in.PaymentHistoryStatus != nil {
		p.PaymentHistoryStatus = domain.PaymentHistory(*in.PaymentHistoryStatus)
	}

	if err := validateFields(p.Age, p.MonthlyIncome, p.MonthlyExpenses, string(p.EmploymentType), p.ExistingLoanAmount, p.CreditUtilizationPct, string(p.PaymentHistoryStatus)); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := u.repo.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete is administrative only and is not exposed on the HTTP surface.
func (u *Usecase) Delete(ctx context.Context, userID string) error {
	return u.repo.Delete(ctx, userID)
}

func validateFields(age int, income, expenses float64, employment string, loan, utilization float64, payment string) error {
	if age < 18 || age > 100 {
		return fmt.Errorf("%w: age must be an integer between 18 and 100", domain.ErrInvalidInput)
	}
	if income < 0 {
		return fmt.Errorf("%w: monthly income must be a non-negative number", domain.ErrInvalidInput)
	}
	if expenses < 0 {
		return fmt.Errorf("%w: monthly expenses must be a non-negative number", domain.ErrInvalidInput)
	}
	if !domain.ValidEmploymentType(domain.EmploymentType(employment)) {
		return fmt.Errorf("%w: invalid employment type %q", domain.ErrInvalidInput, employment)
	}
	if loan < 0 {
		return fmt.Errorf("%w: existing loan amount must be a non-negative number", domain.ErrInvalidInput)
	}
	if utilization < 0 || utilization > 100 {
		return fmt.Errorf("%w: credit utilization percentage must be between 0 and 100", domain.ErrInvalidInput)
	}
	if !domain.ValidPaymentHistory(domain.PaymentHistory(payment)) {
		return fmt.Errorf("%w: invalid payment history status %q", domain.ErrInvalidInput, payment)
	}
	return nil
}

func toDTO(p *domain.FinancialProfile) *DTO {
	return &DTO{
		UserID:               p.UserID,
		Age:                  p.Age,
		MonthlyIncome:        p.MonthlyIncome,
		MonthlyExpenses:      p.MonthlyExpenses,
		EmploymentType:       string(p.EmploymentType),
		ExistingLoanAmount:   p.ExistingLoanAmount,
		CreditUtilizationPct: p.CreditUtilizationPct,
		PaymentHistoryStatus: string(p.PaymentHistoryStatus),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
