package emi

import (
	"errors"
	"fmt"
	"math"
)

// Hard limits on loan inputs. Tenure in years is converted to months
// before these apply.
const (
	MaxPrincipal    = 10_000_000
	MaxAnnualRate   = 50
	MaxTenureMonths = 600
)

var ErrInvalidLoanInput = errors.New("invalid loan input")

type TenureUnit string

const (
	UnitMonths TenureUnit = "months"
	UnitYears  TenureUnit = "years"
)

// PeriodRow is one month of the amortization table. EMI is the constant
// theoretical installment, rounded; rounding drift lands in the final
// period's effective principal.
type PeriodRow struct {
	Month     int     `json:"month"`
	EMI       float64 `json:"emi"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type Breakup struct {
	Principal           float64 `json:"principal"`
	Interest            float64 `json:"interest"`
	PrincipalPercentage float64 `json:"principal_percentage"`
	InterestPercentage  float64 `json:"interest_percentage"`
}

type Result struct {
	Principal          float64     `json:"principal"`
	AnnualInterestRate float64     `json:"annual_interest_rate"`
	TenureMonths       int         `json:"tenure_months"`
	TenureYears        float64     `json:"tenure_years"`
	MonthlyEMI         float64     `json:"monthly_emi"`
	TotalInterest      float64     `json:"total_interest"`
	TotalRepayment     float64     `json:"total_repayment"`
	Breakup            Breakup     `json:"breakup"`
	Schedule           []PeriodRow `json:"amortization_schedule"`
}

// QuickResult skips the amortization table; used for fast previews and
// comparison scenarios.
type QuickResult struct {
	Principal      float64 `json:"principal"`
	MonthlyEMI     float64 `json:"monthly_emi"`
	TotalInterest  float64 `json:"total_interest"`
	TotalRepayment float64 `json:"total_repayment"`
}

func validateInputs(principal, annualRate float64, tenureMonths int) error {
	if math.IsNaN(principal) || math.IsInf(principal, 0) || principal <= 0 {
		return fmt.Errorf("%w: principal amount must be a positive number", ErrInvalidLoanInput)
	}
	if math.IsNaN(annualRate) || annualRate < 0 {
		return fmt.Errorf("%w: annual interest rate must be a non-negative number", ErrInvalidLoanInput)
	}
	if tenureMonths <= 0 {
		return fmt.Errorf("%w: tenure must be a positive number", ErrInvalidLoanInput)
	}
	if principal > MaxPrincipal {
		return fmt.Errorf("%w: principal amount cannot exceed ₹1 Crore", ErrInvalidLoanInput)
	}
	if annualRate > MaxAnnualRate {
		return fmt.Errorf("%w: annual interest rate cannot exceed 50%%", ErrInvalidLoanInput)
	}
	if tenureMonths > MaxTenureMonths {
		return fmt.Errorf("%w: tenure cannot exceed 600 months (50 years)", ErrInvalidLoanInput)
	}
	return nil
}

// monthlyInstallment applies EMI = P·r·(1+r)^n / ((1+r)^n − 1) with
// r = annualRate/12/100. Zero-rate loans divide the principal evenly to
// avoid 0/0.
func monthlyInstallment(principal, annualRate float64, tenureMonths int) float64 {
	if annualRate == 0 {
		return principal / float64(tenureMonths)
	}
	r := annualRate / 12 / 100
	pow := math.Pow(1+r, float64(tenureMonths))
	return principal * r * pow / (pow - 1)
}

// ComputeSchedule validates the loan terms and produces the installment,
// totals, and the full period-by-period amortization table.
func ComputeSchedule(principal, annualRate float64, tenure int, unit TenureUnit) (*Result, error) {
	tenureMonths := tenure
	if unit == UnitYears {
		tenureMonths = tenure * 12
	}
	if err := validateInputs(principal, annualRate, tenureMonths); err != nil {
		return nil, err
	}

	installment := monthlyInstallment(principal, annualRate, tenureMonths)
	totalRepayment := round2(installment * float64(tenureMonths))
	totalInterest := round2(totalRepayment - principal)

	return &Result{
		Principal:          round2(principal),
		AnnualInterestRate: annualRate,
		TenureMonths:       tenureMonths,
		TenureYears:        round2(float64(tenureMonths) / 12),
		MonthlyEMI:         round2(installment),
		TotalInterest:      totalInterest,
		TotalRepayment:     totalRepayment,
		Breakup: Breakup{
			Principal:           principal,
			Interest:            totalInterest,
			PrincipalPercentage: round2(principal / totalRepayment * 100),
			InterestPercentage:  round2(totalInterest / totalRepayment * 100),
		},
		Schedule: buildSchedule(principal, annualRate, tenureMonths, installment),
	}, nil
}

// ComputeQuick returns only the installment and totals. Tenure is always in
// months here.
func ComputeQuick(principal, annualRate float64, tenureMonths int) (*QuickResult, error) {
	if err := validateInputs(principal, annualRate, tenureMonths); err != nil {
		return nil, err
	}
	installment := monthlyInstallment(principal, annualRate, tenureMonths)
	totalRepayment := installment * float64(tenureMonths)
	return &QuickResult{
		Principal:      round2(principal),
		MonthlyEMI:     round2(installment),
		TotalInterest:  round2(totalRepayment - principal),
		TotalRepayment: round2(totalRepayment),
	}, nil
}

// buildSchedule walks the balance month by month. The per-row order is
// fixed: round the interest, derive the principal from the rounded
// interest, round the new balance. The final row's balance is forced to
// exactly zero and no row ever reports a negative balance.
func buildSchedule(principal, annualRate float64, tenureMonths int, installment float64) []PeriodRow {
	r := annualRate / 12 / 100
	emi := round2(installment)
	balance := principal

	rows := make([]PeriodRow, 0, tenureMonths)
	for month := 1; month <= tenureMonths; month++ {
		interest := round2(balance * r)
		principalPart := round2(installment - interest)
		balance = round2(balance - principalPart)

		if month == tenureMonths {
			balance = 0
		}
		rows = append(rows, PeriodRow{
			Month:     month,
			EMI:       emi,
			Principal: principalPart,
			Interest:  interest,
			Balance:   math.Max(0, balance),
		})
	}
	return rows
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
