package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bennysutils/bennys-utils/pkg/money"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List currency codes with a dedicated symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, code := range money.KnownCurrencies() {
				fmt.Fprintf(w, "%s\t%s\n", code, money.Symbol(code))
			}
			return w.Flush()
		},
	}
}
