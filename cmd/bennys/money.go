package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bennysutils/bennys-utils/internal/output"
	"github.com/bennysutils/bennys-utils/pkg/money"
)

type moneyFlags struct {
	currency  string
	shortform bool
	debug     bool
	format    string
	outFile   string
}

func newMoneyCmd(a *app) *cobra.Command {
	f := &moneyFlags{}

	cmd := &cobra.Command{
		Use:   "money <amount>...",
		Short: "Format amounts as currency strings",
		Example: `  bennys money 1000                 # $1,000.00
  bennys money --currency EUR --short 5000000   # €5.00M
  bennys money -- -2500             # -$2,500.00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMoney(cmd, a, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.currency, "currency", "c", money.DefaultCurrency, "Currency code (unknown codes are used as the symbol)")
	cmd.Flags().BoolVarP(&f.shortform, "short", "s", false, "Abbreviate with K, M and B suffixes")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Print the debug representation")
	cmd.Flags().StringVarP(&f.format, "output", "o", "", "Output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().StringVar(&f.outFile, "out-file", "", "Write output to a file instead of stdout")
	return cmd
}

func runMoney(cmd *cobra.Command, a *app, f *moneyFlags, args []string) error {
	currency := a.cfg.Money.Currency
	if cmd.Flags().Changed("currency") {
		currency = f.currency
	}
	shortform := a.cfg.Money.Shortform
	if cmd.Flags().Changed("short") {
		shortform = f.shortform
	}
	format := a.cfg.Output.Format
	if cmd.Flags().Changed("output") {
		format = f.format
	}
	if f.debug {
		format = "debug"
	}

	entries := make([]output.Entry, 0, len(args))
	for _, arg := range args {
		m, err := money.NewFromString(arg, currency, shortform)
		if err != nil {
			return err
		}
		entries = append(entries, output.Entry{Input: arg, Money: m})
	}
	a.logger.Debugf("formatting %d amounts as %s", len(entries), format)

	if f.outFile != "" {
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
		}
		if err := output.WriteFormatted(formatter, entries, f.outFile); err != nil {
			return err
		}
		a.logger.Infof("wrote %d amounts to %s", len(entries), f.outFile)
		return nil
	}
	return output.Render(cmd.OutOrStdout(), format, entries)
}
