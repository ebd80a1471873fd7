package commands

import (
	"fmt"

	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/spf13/cobra"
)

// NewCalculatorsCmd lists the registered calculators.
func NewCalculatorsCmd(registry calc.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "calculators",
		Short: "List available calculators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range registry.ListCalculators() {
				calculator, err := registry.Create(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", calculator.Name(), calculator.Describe())
			}
			return nil
		},
	}
}
