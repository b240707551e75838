package profile

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type EmploymentType string

const (
	EmploymentSalaried      EmploymentType = "Salaried"
	EmploymentSelfEmployed  EmploymentType = "Self-Employed"
	EmploymentFreelancer    EmploymentType = "Freelancer"
	EmploymentBusinessOwner EmploymentType = "Business Owner"
	EmploymentRetired       EmploymentType = "Retired"
	EmploymentStudent       EmploymentType = "Student"
)

type PaymentHistory string

const (
	PaymentExcellent PaymentHistory = "Excellent"
	PaymentGood      PaymentHistory = "Good"
	PaymentFair      PaymentHistory = "Fair"
	PaymentPoor      PaymentHistory = "Poor"
	PaymentNoHistory PaymentHistory = "No History"
)

var (
	ErrNotFound      = errors.New("financial profile not found")
	ErrAlreadyExists = errors.New("financial profile already exists")
	ErrInvalidInput  = errors.New("invalid profile input")
)

// FinancialProfile is the single self-reported profile a user owns.
// One row per user; mutations stamp UpdatedAt.
type FinancialProfile struct {
	ID                   uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID               string         `gorm:"size:64;uniqueIndex:ux_financial_profiles_user_id" json:"user_id"`
	Age                  int            `gorm:"not null" json:"age"`
	MonthlyIncome        float64        `gorm:"type:decimal(18,2)" json:"monthly_income"`
	MonthlyExpenses      float64        `gorm:"type:decimal(18,2)" json:"monthly_expenses"`
	EmploymentType       EmploymentType `gorm:"size:32" json:"employment_type"`
	ExistingLoanAmount   float64        `gorm:"type:decimal(18,2)" json:"existing_loan_amount"`
	CreditUtilizationPct float64        `gorm:"type:decimal(5,2);column:credit_utilization_percentage" json:"credit_utilization_percentage"`
	PaymentHistoryStatus PaymentHistory `gorm:"size:16" json:"payment_history_status"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FinancialProfile) TableName() string { return "financial_profiles" }

func ValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentFreelancer,
		EmploymentBusinessOwner, EmploymentRetired, EmploymentStudent:
		return true
	}
	return false
}

func ValidPaymentHistory(s PaymentHistory) bool {
	switch s {
	case PaymentExcellent, PaymentGood, PaymentFair, PaymentPoor, PaymentNoHistory:
		return true
	}
	return false
}
