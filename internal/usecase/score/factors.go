package score

import (
	"fmt"
	"strings"
)

// Each sub-score is on a 0-100 scale before weighting.

func incomeStabilitySubScore(monthlyIncome float64, age int, employmentType string) float64 {
	var s float64

	switch {
	case monthlyIncome >= 150000:
		s += 40
	case monthlyIncome >= 100000:
		s += 35
	case monthlyIncome >= 50000:
		s += 30
	case monthlyIncome >= 25000:
		s += 20
	default:
		s += 10
	}

	switch employmentType {
	case "Salaried":
		s += 30
	case "Self-Employed":
		s += 20
	case "Business Owner":
		s += 18
	case "Freelancer":
		s += 12
	default:
		s += 8
	}

	// Mid-career applicants read as most stable; both ends of the range
	// score lowest.
	switch {
	case age >= 35 && age <= 55:
		s += 15
	case age >= 25 && age <= 65:
		s += 10
	default:
		s += 5
	}

	if s > 100 {
		s = 100
	}
	return s
}

func debtToIncomeSubScore(monthlyIncome, monthlyExpenses float64) float64 {
	ratio := monthlyExpenses / monthlyIncome * 100
	switch {
	case ratio <= 20:
		return 100
	case ratio <= 30:
		return 90
	case ratio <= 40:
		return 75
	case ratio <= 50:
		return 50
	case ratio <= 70:
		return 30
	default:
		return 10
	}
}

func loanBurdenSubScore(monthlyIncome, existingLoanAmount float64) float64 {
	if existingLoanAmount <= 0 {
		return 100
	}
	ratio := existingLoanAmount / (monthlyIncome * 12)
	switch {
	case ratio <= 2:
		return 95
	case ratio <= 3:
		return 85
	case ratio <= 4:
		return 70
	case ratio <= 5:
		return 50
	case ratio <= 7:
		return 30
	default:
		return 15
	}
}

func creditUtilizationSubScore(utilizationPct float64) float64 {
	switch {
	case utilizationPct <= 10:
		return 100
	case utilizationPct <= 20:
		return 95
	case utilizationPct <= 30:
		return 90
	case utilizationPct <= 50:
		return 70
	case utilizationPct <= 70:
		return 50
	case utilizationPct <= 90:
		return 25
	default:
		return 10
	}
}

func paymentHistorySubScore(status string) float64 {
	switch strings.ToLower(status) {
	case "excellent":
		return 100
	case "good":
		return 85
	case "fair":
		return 60
	case "poor":
		return 30
	case "no history":
		return 40
	default:
		return 40
	}
}

// ---- user-visible factor descriptions ----

func incomeDescription(monthlyIncome float64, employmentType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monthly Income: ₹%s. ", formatINR(monthlyIncome))

	switch {
	case monthlyIncome >= 150000:
		b.WriteString("Excellent income level - strong credit factor. ")
	case monthlyIncome >= 50000:
		b.WriteString("Good income level for most lending criteria. ")
	default:
		b.WriteString("Income is lower - may limit borrowing capacity. ")
	}

	stability := "Variable"
	if employmentType == "Salaried" {
		stability = "Stable"
	}
	fmt.Fprintf(&b, "Employment: %s (%s income).", employmentType, stability)
	return b.String()
}

func debtToIncomeDescription(monthlyIncome, monthlyExpenses float64) string {
	ratio := monthlyExpenses / monthlyIncome * 100
	switch {
	case ratio <= 30:
		return fmt.Sprintf("Your DTI of %.1f%% is excellent! You have good disposable income remaining (₹%s/month).",
			ratio, formatINR(monthlyIncome-monthlyExpenses))
	case ratio <= 40:
		return fmt.Sprintf("Your DTI of %.1f%% is acceptable. You have adequate savings capacity.", ratio)
	case ratio <= 50:
		return fmt.Sprintf("Your DTI of %.1f%% is concerning. Consider reducing expenses to improve credit score.", ratio)
	default:
		return fmt.Sprintf("Your DTI of %.1f%% is high. Monthly expenses exceed 50%% of income - immediate cost reduction needed.", ratio)
	}
}

func loanBurdenDescription(monthlyIncome, existingLoanAmount float64) string {
	if existingLoanAmount <= 0 {
		return "No existing loans - excellent for credit score! You have full borrowing capacity available."
	}
	ratio := existingLoanAmount / (monthlyIncome * 12) * 100
	switch {
	case ratio <= 2:
		return fmt.Sprintf("Loan-to-Income ratio of %.1f%% is excellent. Your loan burden is minimal.", ratio)
	case ratio <= 3:
		return fmt.Sprintf("Loan-to-Income ratio of %.1f%% is good. Manageable loan obligations.", ratio)
	case ratio <= 5:
		return fmt.Sprintf("Loan-to-Income ratio of %.1f%% is moderate. Consider paying down loans if possible.", ratio)
	default:
		return fmt.Sprintf("Loan-to-Income ratio of %.1f%% is high. High existing debt obligations.", ratio)
	}
}

func creditUtilizationDescription(utilizationPct float64) string {
	switch {
	case utilizationPct <= 30:
		return fmt.Sprintf("Credit utilization at %s%% is ideal! You're using credit responsibly.", formatPct(utilizationPct))
	case utilizationPct <= 50:
		return fmt.Sprintf("Credit utilization at %s%% is moderate. Try to keep it below 30%%.", formatPct(utilizationPct))
	case utilizationPct <= 70:
		return fmt.Sprintf("Credit utilization at %s%% is high. This negatively impacts your score.", formatPct(utilizationPct))
	default:
		return fmt.Sprintf("Credit utilization at %s%% is very high! Significantly paying down credit will improve your score.", formatPct(utilizationPct))
	}
}

func paymentHistoryDescription(status string) string {
	switch strings.ToLower(status) {
	case "excellent":
		return "Payment history is excellent! Consistent on-time payments are reflected in your credit score."
	case "good":
		return "Payment history is good. Maintain this record to keep your score strong."
	case "fair":
		return "Payment history is fair. A few missed or late payments are impacting your score."
	case "poor":
		return "Payment history is poor. Past delinquencies are significantly lowering your score."
	case "no history":
		return "No payment history available. Building a track record of on-time payments will improve your score."
	default:
		return "Payment history not specified. Consistent on-time payments are important for credit health."
	}
}
