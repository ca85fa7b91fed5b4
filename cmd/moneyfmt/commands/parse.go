package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

func parseCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Read an amount written in the locale's format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := money.Parse(args[0], e.locale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
	return cmd
}
