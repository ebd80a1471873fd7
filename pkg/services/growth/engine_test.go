package growth

import (
	"testing"

	"github.com/fin-tools/calc-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_LumpSumAnnualCompounding(t *testing.T) {
	result := Calculate(domain.GrowthParameters{
		InitialAmount:     10000,
		AnnualRatePercent: 8,
		TermYears:         5,
		Frequency:         domain.CompoundAnnually,
	})

	// 10000 * 1.08^5
	assert.InDelta(t, 14693.28, result.FinalAmount, 0.01)
	assert.Equal(t, 10000.0, result.TotalContributions)
	assert.InDelta(t, 4693.28, result.TotalGrowth, 0.01)
	require.Len(t, result.Breakdown, 5)
}

func TestCalculate_GrowthConsistency(t *testing.T) {
	result := Calculate(domain.GrowthParameters{
		InitialAmount:        5000,
		PeriodicContribution: 250,
		AnnualRatePercent:    7,
		TermYears:            20,
		Frequency:            domain.CompoundMonthly,
	})

	assert.InDelta(t, result.FinalAmount-result.TotalContributions, result.TotalGrowth, 0.01)
	assert.Equal(t, 5000.0+250*240, result.TotalContributions)
	assert.Greater(t, result.TotalGrowth, 0.0)
	assert.Greater(t, result.AnnualizedReturnPercent, 0.0)
}

func TestCalculate_YearChaining(t *testing.T) {
	result := Calculate(domain.GrowthParameters{
		InitialAmount:        1000,
		PeriodicContribution: 100,
		AnnualRatePercent:    6,
		TermYears:            10,
		Frequency:            domain.CompoundQuarterly,
	})

	require.Len(t, result.Breakdown, 10)
	for i := 1; i < len(result.Breakdown); i++ {
		assert.Equal(t, result.Breakdown[i-1].ClosingBalance, result.Breakdown[i].OpeningBalance,
			"year %d", result.Breakdown[i].Year)
	}
	assert.Equal(t, result.Breakdown[0].OpeningBalance, 1000.0)
}

func TestCalculate_ZeroRateAccumulatesContributions(t *testing.T) {
	result := Calculate(domain.GrowthParameters{
		InitialAmount:        1000,
		PeriodicContribution: 50,
		TermYears:            2,
		Frequency:            domain.CompoundMonthly,
	})

	assert.Equal(t, 1000.0+50*24, result.FinalAmount)
	assert.Equal(t, 0.0, result.TotalGrowth)
	assert.Equal(t, 0.0, result.AnnualizedReturnPercent)
}

func TestCalculate_BalanceNonDecreasing(t *testing.T) {
	result := Calculate(domain.GrowthParameters{
		InitialAmount:        2000,
		PeriodicContribution: 25,
		AnnualRatePercent:    4,
		TermYears:            15,
		Frequency:            domain.CompoundDaily,
	})

	prev := result.Breakdown[0].OpeningBalance
	for _, entry := range result.Breakdown {
		assert.GreaterOrEqual(t, entry.ClosingBalance, prev, "year %d", entry.Year)
		prev = entry.ClosingBalance
	}
}

func TestCalculate_FrequencyOrdering(t *testing.T) {
	// More frequent compounding never yields less for the same nominal rate.
	frequencies := []domain.CompoundingFrequency{
		domain.CompoundAnnually,
		domain.CompoundSemiannually,
		domain.CompoundQuarterly,
		domain.CompoundMonthly,
		domain.CompoundDaily,
	}

	prev := 0.0
	for _, freq := range frequencies {
		result := Calculate(domain.GrowthParameters{
			InitialAmount:     10000,
			AnnualRatePercent: 6,
			TermYears:         10,
			Frequency:         freq,
		})
		assert.GreaterOrEqual(t, result.FinalAmount, prev, "frequency %s", freq)
		prev = result.FinalAmount
	}
}

func TestCalculate_UnknownFrequencyDefaultsToMonthly(t *testing.T) {
	known := Calculate(domain.GrowthParameters{
		InitialAmount:     1000,
		AnnualRatePercent: 5,
		TermYears:         3,
		Frequency:         domain.CompoundMonthly,
	})
	unknown := Calculate(domain.GrowthParameters{
		InitialAmount:     1000,
		AnnualRatePercent: 5,
		TermYears:         3,
		Frequency:         "fortnightly",
	})

	assert.Equal(t, known.FinalAmount, unknown.FinalAmount)
}

func TestCalculate_DegenerateTerm(t *testing.T) {
	result := Calculate(domain.GrowthParameters{InitialAmount: 1000, AnnualRatePercent: 5})
	assert.Zero(t, result.FinalAmount)
	assert.Empty(t, result.Breakdown)
}

func TestCalculateRaw_NormalizesInputs(t *testing.T) {
	typed := Calculate(domain.GrowthParameters{
		InitialAmount:     10000,
		AnnualRatePercent: 8,
		TermYears:         5,
		Frequency:         domain.CompoundAnnually,
	})
	raw := CalculateRaw("₹10,000", nil, "8", "5", "annually")

	assert.Equal(t, typed.FinalAmount, raw.FinalAmount)
}
