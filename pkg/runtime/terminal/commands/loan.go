package commands

import (
	"fmt"

	"github.com/fin-tools/calc-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/spf13/cobra"
)

type LoanCmd struct {
	principal string
	rate      string
	termYears string
	extra     string
	registry  calc.Registry
	reporter  *export.Reporter
}

// NewLoanCmd builds the loan amortization command. Flag values stay strings so
// "₹10,00,000" and "250000" are equally acceptable; the core normalizes them.
func NewLoanCmd(registry calc.Registry, reporter *export.Reporter) *cobra.Command {
	lc := &LoanCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Amortize a fixed-rate loan",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.principal, "principal", "", "Loan principal")
	cmd.Flags().StringVar(&lc.rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().StringVar(&lc.termYears, "years", "", "Term in years")
	cmd.Flags().StringVar(&lc.extra, "extra", "", "Extra monthly payment")

	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func (lc *LoanCmd) run(cmd *cobra.Command, _ []string) error {
	calculator, err := lc.registry.Create("loan")
	if err != nil {
		return fmt.Errorf("failed to create loan calculator: %w", err)
	}

	report, err := calculator.Calculate(cmd.Context(), map[string]any{
		"principal":             lc.principal,
		"annual_rate_percent":   lc.rate,
		"term_years":            lc.termYears,
		"extra_monthly_payment": lc.extra,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate loan: %w", err)
	}

	return lc.reporter.Handle(report)
}
