package terminal

import (
	"io"
	"os"

	"github.com/fin-tools/calc-atlas/pkg/runtime/terminal/commands"
	"github.com/fin-tools/calc-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry calc.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry calc.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Financial calculator tool",
	}

	cmd.AddCommand(commands.NewLoanCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewMortgageCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewInvestCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewCalculatorsCmd(cli.registry))

	return cmd
}
