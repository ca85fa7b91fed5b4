package commands

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

func formatCmd(e *env) *cobra.Command {
	var (
		curr string
		spec string
	)
	cmd := &cobra.Command{
		Use:   "format AMOUNT",
		Short: "Render an amount, e.g. format 1234.5 --currency EUR --spec N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newAmount(curr, args[0])
			if err != nil {
				return err
			}
			text, err := m.TextLocale(spec, e.locale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&curr, "currency", "c", "", "ISO 4217 code or number (default from the locale)")
	cmd.Flags().StringVarP(&spec, "spec", "s", "C", "format specifier: C, G, N, F, L, I with optional precision, or a 0#., pattern")
	return cmd
}

func newAmount(curr, amount string) (money.Money, error) {
	if curr != "" {
		return money.ParseAmount(curr, amount)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return money.Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return money.NewLocal(d)
}
