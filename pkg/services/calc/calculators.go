package calc

import (
	"context"
	"fmt"

	"github.com/fin-tools/calc-atlas/pkg/models/domain"
	"github.com/fin-tools/calc-atlas/pkg/services/growth"
	"github.com/fin-tools/calc-atlas/pkg/services/loan"
	"github.com/fin-tools/calc-atlas/pkg/services/mortgage"
)

// Default returns a registry with the built-in calculators.
func Default() Registry {
	return NewRegistry(map[string]Factory{
		"loan":       func() Calculator { return loanCalculator{} },
		"mortgage":   func() Calculator { return mortgageCalculator{} },
		"investment": func() Calculator { return investmentCalculator{} },
	})
}

type loanCalculator struct{}

func (loanCalculator) Name() string     { return "loan" }
func (loanCalculator) Describe() string { return "Fixed-payment amortizing loan with optional extra payments" }

func (loanCalculator) Calculate(_ context.Context, inputs map[string]any) (*domain.Report, error) {
	result := loan.CalculateRaw(
		inputs["principal"],
		inputs["annual_rate_percent"],
		inputs["term_years"],
		inputs["extra_monthly_payment"],
	)

	report := &domain.Report{
		Title:       "Loan",
		TotalAmount: result.TotalPaid,
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title: "Summary",
				Summary: map[string]interface{}{
					"periodic_payment": result.PeriodicPayment,
					"total_paid":       result.TotalPaid,
					"total_interest":   result.TotalInterest,
					"payoff_periods":   result.PayoffPeriods,
					"interest_saved":   result.InterestSaved,
					"converged":        result.Converged,
				},
			},
			scheduleSection(result.Schedule),
		},
	}
	return report, nil
}

type mortgageCalculator struct{}

func (mortgageCalculator) Name() string     { return "mortgage" }
func (mortgageCalculator) Describe() string { return "Mortgage with property tax, insurance and PMI escrow" }

func (mortgageCalculator) Calculate(_ context.Context, inputs map[string]any) (*domain.Report, error) {
	result := mortgage.CalculateRaw(
		inputs["home_price"],
		inputs["down_payment"],
		inputs["annual_rate_percent"],
		inputs["term_years"],
		inputs["annual_property_tax"],
		inputs["annual_insurance"],
		inputs["annual_pmi"],
	)

	report := &domain.Report{
		Title:       "Mortgage",
		TotalAmount: result.MonthlyPayment,
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title: "Summary",
				Summary: map[string]interface{}{
					"loan_amount":            result.LoanAmount,
					"principal_and_interest": result.PeriodicPayment,
					"monthly_property_tax":   result.MonthlyPropertyTax,
					"monthly_insurance":      result.MonthlyInsurance,
					"monthly_pmi":            result.MonthlyPMI,
					"monthly_payment":        result.MonthlyPayment,
					"loan_to_value":          result.LoanToValue,
					"total_interest":         result.TotalInterest,
				},
			},
			scheduleSection(result.Schedule),
		},
	}
	return report, nil
}

type investmentCalculator struct{}

func (investmentCalculator) Name() string { return "investment" }
func (investmentCalculator) Describe() string {
	return "Compounding growth of a lump sum plus monthly contributions"
}

func (investmentCalculator) Calculate(_ context.Context, inputs map[string]any) (*domain.Report, error) {
	frequency, _ := inputs["compounding_frequency"].(string)
	result := growth.CalculateRaw(
		inputs["initial_amount"],
		inputs["periodic_contribution"],
		inputs["annual_rate_percent"],
		inputs["term_years"],
		frequency,
	)

	details := make([]domain.ReportDetail, 0, len(result.Breakdown))
	for _, entry := range result.Breakdown {
		details = append(details, domain.ReportDetail{
			Name:        fmt.Sprintf("Year %d", entry.Year),
			Value:       entry.ClosingBalance,
			Unit:        "USD",
			Description: fmt.Sprintf("contributed %.2f, grew %.2f", entry.Contributions, entry.Growth),
		})
	}

	report := &domain.Report{
		Title:       "Investment",
		TotalAmount: result.FinalAmount,
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title: "Summary",
				Summary: map[string]interface{}{
					"final_amount":              result.FinalAmount,
					"total_contributions":       result.TotalContributions,
					"total_growth":              result.TotalGrowth,
					"annualized_return_percent": result.AnnualizedReturnPercent,
				},
			},
			{
				Title:   "Yearly breakdown",
				Details: details,
			},
		},
	}
	return report, nil
}

// scheduleSection condenses an amortization schedule into report details.
// Only milestone periods are listed so long schedules stay readable.
func scheduleSection(schedule []domain.PaymentScheduleEntry) domain.ReportSection {
	section := domain.ReportSection{Title: "Schedule"}
	step := 1
	if len(schedule) > 24 {
		step = 12
	}

	for i := 0; i < len(schedule); i += step {
		entry := schedule[i]
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("Period %d", entry.Period),
			Value:       entry.EndingBalance,
			Unit:        "USD",
			Description: fmt.Sprintf("paid %.2f interest so far", entry.CumulativeInterest),
		})
	}
	if len(schedule) > 0 && step > 1 && (len(schedule)-1)%step != 0 {
		entry := schedule[len(schedule)-1]
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("Period %d", entry.Period),
			Value:       entry.EndingBalance,
			Unit:        "USD",
			Description: fmt.Sprintf("paid %.2f interest so far", entry.CumulativeInterest),
		})
	}
	return section
}
