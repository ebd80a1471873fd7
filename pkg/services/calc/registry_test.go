package calc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{"investment", "loan", "mortgage"}, r.ListCalculators())

	_, err := r.Create("payday")
	assert.Error(t, err)

	err = r.Register("", nil)
	assert.Error(t, err)

	err = r.Register("loan", func() Calculator { return loanCalculator{} })
	assert.Error(t, err, "duplicate registration must fail")
}

func TestLoanCalculator_RawInputs(t *testing.T) {
	r := Default()
	c, err := r.Create("loan")
	require.NoError(t, err)

	report, err := c.Calculate(context.Background(), map[string]any{
		"principal":           "$100,000",
		"annual_rate_percent": 5,
		"term_years":          "10",
	})
	require.NoError(t, err)

	summary := report.Sections[0].Summary
	assert.InDelta(t, 1060.66, summary["periodic_payment"].(float64), 0.01)
	assert.Equal(t, 120, summary["payoff_periods"])
	assert.Equal(t, true, summary["converged"])
}

func TestMortgageCalculator_MissingFieldsDegradeToZero(t *testing.T) {
	r := Default()
	c, err := r.Create("mortgage")
	require.NoError(t, err)

	report, err := c.Calculate(context.Background(), map[string]any{})
	require.NoError(t, err)

	summary := report.Sections[0].Summary
	assert.Equal(t, 0.0, summary["loan_amount"])
	assert.Equal(t, 0.0, summary["monthly_payment"])
}

func TestInvestmentCalculator_Breakdown(t *testing.T) {
	r := Default()
	c, err := r.Create("investment")
	require.NoError(t, err)

	report, err := c.Calculate(context.Background(), map[string]any{
		"initial_amount":        10000,
		"annual_rate_percent":   8,
		"term_years":            5,
		"compounding_frequency": "annually",
	})
	require.NoError(t, err)

	assert.InDelta(t, 14693.28, report.TotalAmount, 0.01)
	require.Len(t, report.Sections, 2)
	assert.Len(t, report.Sections[1].Details, 5)
}
