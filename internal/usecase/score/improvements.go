package score

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

var priorityRank = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

func buildSummary(finalScore int, category string, factors []Factor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your credit score of %d (%s) is calculated based on your financial profile. ", finalScore, category)

	var positive, negative []string
	for _, f := range factors {
		if f.Status == StatusPositive {
			positive = append(positive, f.Name)
		} else {
			negative = append(negative, f.Name)
		}
	}
	if len(positive) > 0 {
		fmt.Fprintf(&b, "Your strongest areas are: %s. ", strings.Join(positive, ", "))
	}
	if len(negative) > 0 {
		fmt.Fprintf(&b, "Areas to improve: %s.", strings.Join(negative, ", "))
	}
	return b.String()
}

// buildImprovements emits one suggestion per negative factor, each with a
// fixed priority and a concrete numeric target, then a low-priority
// "maintain" suggestion when nothing is negative or at least one factor is
// positive. The result is stably sorted by priority.
func buildImprovements(in Input, factors []Factor) []Improvement {
	var out []Improvement
	anyPositive := false

	for _, f := range factors {
		if f.Status == StatusPositive {
			anyPositive = true
			continue
		}
		switch f.Name {
		case "Income Stability":
			out = append(out, Improvement{
				Priority:    PriorityHigh,
				Title:       "Increase Income",
				Description: "Seek a higher paying position or additional income sources. Each 10% income increase can improve your score by 10-15 points.",
				Action:      "Look for career advancement or side income opportunities",
			})
		case "Debt-to-Income Ratio":
			ratio := in.MonthlyExpenses / in.MonthlyIncome * 100
			cut := math.Round(in.MonthlyExpenses - in.MonthlyIncome*0.4)
			out = append(out, Improvement{
				Priority:    PriorityHigh,
				Title:       "Reduce Monthly Expenses",
				Description: fmt.Sprintf("Your DTI is %.1f%%. Aim to reduce it below 40%%. Every 5%% reduction can add 20-25 points to your score.", ratio),
				Action:      fmt.Sprintf("You need to reduce expenses by ₹%s to reach 40%% DTI", formatINR(cut)),
			})
		case "Existing Loan Management":
			out = append(out, Improvement{
				Priority:    PriorityMedium,
				Title:       "Pay Down Existing Loans",
				Description: fmt.Sprintf("Your existing loans are ₹%s. Reducing this by 20-30%% can improve your score by 15-20 points.", formatINR(in.ExistingLoanAmount)),
				Action:      fmt.Sprintf("Try to reduce loan amount to ₹%s", formatINR(in.ExistingLoanAmount*0.7)),
			})
		case "Credit Utilization":
			out = append(out, Improvement{
				Priority:    PriorityHigh,
				Title:       "Lower Credit Card Usage",
				Description: fmt.Sprintf("Your credit utilization is %s%%. Keep it below 30%% for optimal results.", formatPct(in.CreditUtilizationPct)),
				Action:      fmt.Sprintf("Reduce credit usage from %s%% to below 30%%", formatPct(in.CreditUtilizationPct)),
			})
		case "Payment History":
			out = append(out, Improvement{
				Priority:    PriorityCritical,
				Title:       "Improve Payment History",
				Description: "Make all payments on time, every time. Even one late payment can reduce your score by 50+ points.",
				Action:      "Set up automatic payments and payment reminders",
			})
		}
	}

	if len(out) == 0 || anyPositive {
		out = append(out, Improvement{
			Priority:    PriorityLow,
			Title:       "Maintain Your Financial Health",
			Description: "Continue your current good habits. Regular review and monitoring of your financial health will help maintain or improve your score.",
			Action:      "Review your credit profile quarterly",
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}
