package score

import (
	"errors"
	"fmt"
	"math"
)

// Score range and base. Five weighted factors lift the base toward the cap:
// Income Stability 15%, Debt-to-Income 35%, Existing Loan 25%,
// Credit Utilization 15%, Payment History 10%. Each factor is scored on a
// 0-100 sub-scale and mapped into score points by weight x 3.5.
const (
	minScore  = 300
	maxScore  = 850
	baseScore = 550
)

var ErrInvalidProfile = errors.New("invalid financial profile")

type Input struct {
	Age                  int     `json:"age"`
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	EmploymentType       string  `json:"employment_type"`
	ExistingLoanAmount   float64 `json:"existing_loan_amount"`
	CreditUtilizationPct float64 `json:"credit_utilization_percentage"`
	PaymentHistoryStatus string  `json:"payment_history_status"`
}

type Factor struct {
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Impact      float64 `json:"impact"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

type Improvement struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type Result struct {
	Score        int           `json:"score"`
	Category     string        `json:"category"`
	Factors      []Factor      `json:"factors"`
	Summary      string        `json:"summary"`
	Improvements []Improvement `json:"improvements"`
}

const (
	StatusPositive = "positive"
	StatusNegative = "negative"
)

// ComputeScore derives a synthetic credit score from a financial profile.
// Pure and deterministic; timestamps are the caller's concern.
func ComputeScore(in Input) (*Result, error) {
	if in.MonthlyIncome <= 0 {
		return nil, fmt.Errorf("%w: valid monthly income is required", ErrInvalidProfile)
	}
	if in.MonthlyExpenses < 0 || in.MonthlyExpenses > in.MonthlyIncome*2 {
		return nil, fmt.Errorf("%w: invalid monthly expenses", ErrInvalidProfile)
	}
	if in.Age < 18 || in.Age > 100 {
		return nil, fmt.Errorf("%w: age must be between 18 and 100", ErrInvalidProfile)
	}

	total := float64(baseScore)
	factors := make([]Factor, 0, 5)

	// Income Stability (15% = up to 52.5 points)
	incomeImpact := incomeStabilitySubScore(in.MonthlyIncome, in.Age, in.EmploymentType) * 0.525
	total += incomeImpact
	factors = append(factors, Factor{
		Name:        "Income Stability",
		Weight:      15,
		Impact:      incomeImpact,
		Status:      statusFor(incomeImpact >= 30),
		Description: incomeDescription(in.MonthlyIncome, in.EmploymentType),
	})

	// Debt-to-Income Ratio (35% = up to 122.5 points)
	dtiImpact := debtToIncomeSubScore(in.MonthlyIncome, in.MonthlyExpenses) * 1.225
	total += dtiImpact
	factors = append(factors, Factor{
		Name:        "Debt-to-Income Ratio",
		Weight:      35,
		Impact:      dtiImpact,
		Status:      statusFor(dtiImpact >= 70),
		Description: debtToIncomeDescription(in.MonthlyIncome, in.MonthlyExpenses),
	})

	// Existing Loan Management (25% = up to 87.5 points)
	loanImpact := loanBurdenSubScore(in.MonthlyIncome, in.ExistingLoanAmount) * 0.875
	total += loanImpact
	factors = append(factors, Factor{
		Name:        "Existing Loan Management",
		Weight:      25,
		Impact:      loanImpact,
		Status:      statusFor(loanImpact >= 50),
		Description: loanBurdenDescription(in.MonthlyIncome, in.ExistingLoanAmount),
	})

	// Credit Utilization (15% = up to 52.5 points)
	utilImpact := creditUtilizationSubScore(in.CreditUtilizationPct) * 0.525
	total += utilImpact
	factors = append(factors, Factor{
		Name:        "Credit Utilization",
		Weight:      15,
		Impact:      utilImpact,
		Status:      statusFor(utilImpact >= 30),
		Description: creditUtilizationDescription(in.CreditUtilizationPct),
	})

	// Payment History (10% = up to 35 points)
	payImpact := paymentHistorySubScore(in.PaymentHistoryStatus) * 0.35
	total += payImpact
	factors = append(factors, Factor{
		Name:        "Payment History",
		Weight:      10,
		Impact:      payImpact,
		Status:      statusFor(payImpact >= 20),
		Description: paymentHistoryDescription(in.PaymentHistoryStatus),
	})

	final := int(math.Round(total))
	if final < minScore {
		final = minScore
	}
	if final > maxScore {
		final = maxScore
	}
	category := CategoryFromScore(final)

	return &Result{
		Score:        final,
		Category:     category,
		Factors:      factors,
		Summary:      buildSummary(final, category, factors),
		Improvements: buildImprovements(in, factors),
	}, nil
}

func statusFor(positive bool) string {
	if positive {
		return StatusPositive
	}
	return StatusNegative
}
