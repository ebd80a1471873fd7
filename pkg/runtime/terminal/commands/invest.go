package commands

import (
	"fmt"

	"github.com/fin-tools/calc-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/spf13/cobra"
)

type InvestCmd struct {
	initial      string
	contribution string
	rate         string
	termYears    string
	frequency    string
	registry     calc.Registry
	reporter     *export.Reporter
}

func NewInvestCmd(registry calc.Registry, reporter *export.Reporter) *cobra.Command {
	ic := &InvestCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Project compounding investment growth",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.initial, "initial", "", "Initial lump sum")
	cmd.Flags().StringVar(&ic.contribution, "contribution", "", "Monthly contribution")
	cmd.Flags().StringVar(&ic.rate, "rate", "", "Annual return rate in percent")
	cmd.Flags().StringVar(&ic.termYears, "years", "", "Investment horizon in years")
	cmd.Flags().StringVar(&ic.frequency, "frequency", "monthly",
		"Compounding frequency (annually, semiannually, quarterly, monthly, daily)")

	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func (ic *InvestCmd) run(cmd *cobra.Command, _ []string) error {
	calculator, err := ic.registry.Create("investment")
	if err != nil {
		return fmt.Errorf("failed to create investment calculator: %w", err)
	}

	report, err := calculator.Calculate(cmd.Context(), map[string]any{
		"initial_amount":        ic.initial,
		"periodic_contribution": ic.contribution,
		"annual_rate_percent":   ic.rate,
		"term_years":            ic.termYears,
		"compounding_frequency": ic.frequency,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate investment: %w", err)
	}

	return ic.reporter.Handle(report)
}
