package commands

import (
	"fmt"

	"github.com/fin-tools/calc-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/spf13/cobra"
)

type MortgageCmd struct {
	price     string
	down      string
	rate      string
	termYears string
	tax       string
	insurance string
	pmi       string
	registry  calc.Registry
	reporter  *export.Reporter
}

func NewMortgageCmd(registry calc.Registry, reporter *export.Reporter) *cobra.Command {
	mc := &MortgageCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Amortize a mortgage with escrow",
		RunE:  mc.run,
	}

	cmd.Flags().StringVar(&mc.price, "price", "", "Home price")
	cmd.Flags().StringVar(&mc.down, "down", "", "Down payment")
	cmd.Flags().StringVar(&mc.rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().StringVar(&mc.termYears, "years", "", "Term in years")
	cmd.Flags().StringVar(&mc.tax, "tax", "", "Annual property tax")
	cmd.Flags().StringVar(&mc.insurance, "insurance", "", "Annual homeowners insurance")
	cmd.Flags().StringVar(&mc.pmi, "pmi", "", "Annual mortgage insurance")

	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func (mc *MortgageCmd) run(cmd *cobra.Command, _ []string) error {
	calculator, err := mc.registry.Create("mortgage")
	if err != nil {
		return fmt.Errorf("failed to create mortgage calculator: %w", err)
	}

	report, err := calculator.Calculate(cmd.Context(), map[string]any{
		"home_price":          mc.price,
		"down_payment":        mc.down,
		"annual_rate_percent": mc.rate,
		"term_years":          mc.termYears,
		"annual_property_tax": mc.tax,
		"annual_insurance":    mc.insurance,
		"annual_pmi":          mc.pmi,
	})
	if err != nil {
		return fmt.Errorf("failed to calculate mortgage: %w", err)
	}

	return mc.reporter.Handle(report)
}
