package main

import (
	"os"

	"github.com/ledgerkit/money/cmd/moneyfmt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
