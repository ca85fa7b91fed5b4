package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

func currencyCmd(e *env) *cobra.Command {
	var region bool
	cmd := &cobra.Command{
		Use:   "currency [CODE|NUMBER]",
		Short: "Show a currency; without arguments, the currency of the locale",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   money.Currency
				err error
			)
			switch {
			case len(args) == 0:
				c, err = money.CurrencyForLocale(e.locale)
			case region:
				c = money.CurrencyForRegion(args[0])
			default:
				c, err = money.ParseCurr(args[0])
			}
			if err != nil {
				return err
			}
			return writeCurrencies(cmd.OutOrStdout(), []money.Currency{c})
		},
	}
	cmd.Flags().BoolVarP(&region, "region", "r", false, "treat the argument as a region, e.g. JP")
	return cmd
}

func currenciesCmd(_ *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List the known currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCurrencies(cmd.OutOrStdout(), money.Currencies())
		},
	}
	return cmd
}

func writeCurrencies(out io.Writer, currs []money.Currency) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNUM\tMINOR\tSYMBOL\tNAME")
	for _, c := range currs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", c.Code(), c.Num(), c.MinorUnits(), c.Symbol(), c.Name())
	}
	return w.Flush()
}
