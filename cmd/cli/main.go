package main

import (
	"fmt"
	"os"

	"github.com/fin-tools/calc-atlas/pkg/runtime/terminal"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: calc.Default(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
