package mortgage

import (
	"math"

	"github.com/fin-tools/calc-atlas/pkg/models/domain"
	"github.com/fin-tools/calc-atlas/pkg/services/loan"
	"github.com/fin-tools/calc-atlas/pkg/services/numeric"
)

const monthsPerYear = 12

// Calculate amortizes the financed portion of a home purchase and layers flat
// monthly escrow on top. A down payment at or above the price is a valid
// all-cash purchase: empty schedule, zero totals, not an error.
func Calculate(p domain.MortgageParameters) domain.MortgageResult {
	price := numeric.Normalize(p.HomePrice)
	down := numeric.Normalize(p.DownPayment)
	loanAmount := math.Max(0, price-down)

	principalAndInterest := loan.Calculate(domain.LoanParameters{
		Principal:         loanAmount,
		AnnualRatePercent: p.AnnualRatePercent,
		TermYears:         p.TermYears,
	})

	monthlyTax := numeric.RoundCurrency(numeric.Normalize(p.AnnualPropertyTax) / monthsPerYear)
	monthlyInsurance := numeric.RoundCurrency(numeric.Normalize(p.AnnualInsurance) / monthsPerYear)
	monthlyPMI := numeric.RoundCurrency(numeric.Normalize(p.AnnualPMI) / monthsPerYear)

	return domain.MortgageResult{
		LoanResult:         principalAndInterest,
		LoanAmount:         numeric.RoundCurrency(loanAmount),
		MonthlyPropertyTax: monthlyTax,
		MonthlyInsurance:   monthlyInsurance,
		MonthlyPMI:         monthlyPMI,
		MonthlyPayment: numeric.RoundCurrency(
			principalAndInterest.PeriodicPayment + monthlyTax + monthlyInsurance + monthlyPMI,
		),
		LoanToValue: numeric.RoundCurrency(numeric.SafeDivide(loanAmount, price, 0) * 100),
	}
}

// CalculateRaw accepts raw form-field values and normalizes them before
// calculating.
func CalculateRaw(homePrice, downPayment, annualRatePercent, termYears, annualPropertyTax, annualInsurance, annualPMI any) domain.MortgageResult {
	return Calculate(domain.MortgageParameters{
		HomePrice:         numeric.Normalize(homePrice),
		DownPayment:       numeric.Normalize(downPayment),
		AnnualRatePercent: numeric.Normalize(annualRatePercent),
		TermYears:         numeric.Normalize(termYears),
		AnnualPropertyTax: numeric.Normalize(annualPropertyTax),
		AnnualInsurance:   numeric.Normalize(annualInsurance),
		AnnualPMI:         numeric.Normalize(annualPMI),
	})
}
