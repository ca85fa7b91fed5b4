package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerkit/money"
	"github.com/ledgerkit/money/currencyfile"
	"github.com/ledgerkit/money/internal/config"
	"github.com/ledgerkit/money/internal/logger"
	"github.com/ledgerkit/money/locale"
)

const service = "moneyfmt"

// env is shared by the subcommands once the root command has run.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	locale string
}

// Execute runs the moneyfmt command tree with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the moneyfmt command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile      string
		loc          string
		currencyFile string
		e            = &env{}
	)

	root := &cobra.Command{
		Use:           service,
		Short:         "Format and parse money amounts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("locale") {
				cfg.Locale = loc
			}
			if cmd.Flags().Changed("currency-file") {
				cfg.CurrencyFile = currencyFile
			}

			log, err := logger.New(service, cfg.LogLevel, cfg.Production)
			if err != nil {
				return err
			}
			e.cfg, e.log = cfg, log
			return e.install()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVarP(&loc, "locale", "l", "", "locale, e.g. en-US (default from the environment)")
	root.PersistentFlags().StringVar(&currencyFile, "currency-file", "", "YAML or CSV currency definitions")

	root.AddCommand(formatCmd(e), parseCmd(e), currencyCmd(e), currenciesCmd(e))
	return root
}

// install replaces the package locale provider and default registry
// according to the configuration.
func (e *env) install() error {
	p := locale.FromEnv()
	if e.cfg.Locale != "" {
		p = locale.New(e.cfg.Locale)
	}
	money.SetLocaleProvider(p)
	e.locale = p.Current()

	src := money.BuiltinSource()
	if e.cfg.CurrencyFile != "" {
		src = currencyfile.File(e.cfg.CurrencyFile)
	}
	reg := money.NewRegistry(src, money.WithLogger(e.log))
	if err := reg.Build(); err != nil {
		return fmt.Errorf("loading currencies: %w", err)
	}
	money.SetDefaultRegistry(reg)

	e.log.Debug("environment ready",
		zap.String("locale", e.locale),
		zap.String("currency_file", e.cfg.CurrencyFile),
	)
	return nil
}
