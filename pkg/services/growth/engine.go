package growth

import (
	"math"

	"github.com/fin-tools/calc-atlas/pkg/models/domain"
	"github.com/fin-tools/calc-atlas/pkg/services/numeric"
)

const monthsPerYear = 12

// MaxTermYears caps the simulation horizon. Century-scale terms still
// terminate in bounded work.
const MaxTermYears = 200

// Calculate simulates compounding growth of a lump sum plus monthly
// contributions. The compounding frequency is folded into an equivalent
// monthly rate so that the month-by-month simulation reproduces the
// closed-form FV = P*(1+r/n)^(n*t) for the lump sum, and the yearly breakdown
// chains exactly: year k's closing balance is year k+1's opening balance.
func Calculate(p domain.GrowthParameters) domain.GrowthResult {
	initial := math.Max(0, numeric.Normalize(p.InitialAmount))
	contribution := math.Max(0, numeric.Normalize(p.PeriodicContribution))
	ratePercent := math.Max(0, numeric.Normalize(p.AnnualRatePercent))
	termYears := numeric.Normalize(p.TermYears)

	if termYears <= 0 {
		return domain.GrowthResult{}
	}
	if termYears > MaxTermYears {
		termYears = MaxTermYears
	}

	periodsPerYear := p.Frequency.PeriodsPerYear()
	monthlyRate := equivalentMonthlyRate(ratePercent/100, periodsPerYear)
	months := int(math.Round(termYears * monthsPerYear))
	if months < 1 {
		months = 1
	}

	balance := initial
	contributed := initial
	var breakdown []domain.GrowthBreakdownEntry

	opening := balance
	yearContributions := 0.0
	cumulativeContributions := initial
	cumulativeGrowth := 0.0

	for m := 1; m <= months; m++ {
		if !numeric.EffectivelyZero(monthlyRate) {
			balance += balance * monthlyRate
		}
		balance += contribution
		contributed += contribution
		yearContributions += contribution

		if m%monthsPerYear == 0 || m == months {
			yearGrowth := balance - opening - yearContributions
			cumulativeContributions += yearContributions
			cumulativeGrowth += yearGrowth

			breakdown = append(breakdown, domain.GrowthBreakdownEntry{
				Year:                    (m + monthsPerYear - 1) / monthsPerYear,
				OpeningBalance:          numeric.RoundCurrency(opening),
				Contributions:           numeric.RoundCurrency(yearContributions),
				Growth:                  numeric.RoundCurrency(yearGrowth),
				ClosingBalance:          numeric.RoundCurrency(balance),
				CumulativeContributions: numeric.RoundCurrency(cumulativeContributions),
				CumulativeGrowth:        numeric.RoundCurrency(cumulativeGrowth),
			})

			opening = balance
			yearContributions = 0
		}
	}

	final := numeric.RoundCurrency(balance)
	totalContributions := numeric.RoundCurrency(contributed)
	totalGrowth := numeric.RoundCurrency(final - totalContributions)

	return domain.GrowthResult{
		FinalAmount:             final,
		TotalContributions:      totalContributions,
		TotalGrowth:             totalGrowth,
		AnnualizedReturnPercent: annualizedReturn(final, totalContributions, termYears),
		Breakdown:               breakdown,
	}
}

// CalculateRaw accepts raw form-field values and normalizes them before
// calculating. The frequency string falls back to monthly when unrecognized.
func CalculateRaw(initialAmount, periodicContribution, annualRatePercent, termYears any, frequency string) domain.GrowthResult {
	return Calculate(domain.GrowthParameters{
		InitialAmount:        numeric.Normalize(initialAmount),
		PeriodicContribution: numeric.Normalize(periodicContribution),
		AnnualRatePercent:    numeric.Normalize(annualRatePercent),
		TermYears:            numeric.Normalize(termYears),
		Frequency:            domain.CompoundingFrequency(frequency),
	})
}

// equivalentMonthlyRate converts an annual rate compounded n times per year
// into the monthly rate with the same annual yield: (1+r/n)^(n/12) - 1.
func equivalentMonthlyRate(annualRate float64, periodsPerYear int) float64 {
	if annualRate <= 0 {
		return 0
	}
	n := float64(periodsPerYear)
	return numeric.SafePower(1+annualRate/n, n/monthsPerYear) - 1
}

// annualizedReturn derives the compound annual growth rate of the final
// amount over total contributions, in percent. Zero contributions yield 0.
func annualizedReturn(finalAmount, totalContributions, termYears float64) float64 {
	if totalContributions <= 0 || termYears <= 0 {
		return 0
	}
	ratio := numeric.SafeDivide(finalAmount, totalContributions, 0)
	if ratio <= 0 {
		return 0
	}
	return numeric.RoundToPrecision((numeric.SafePower(ratio, 1/termYears)-1)*100, 2)
}
