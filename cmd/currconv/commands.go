package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/clients/fixer"
	"max.ks1230/currconv/internal/config"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/rates"
	"max.ks1230/currconv/internal/model/shell"
)

var errCommandFailed = errors.New("command failed")

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "currconv",
		Short:         "Convert currencies, keep a history and watch rate thresholds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), configPath, cmd.OutOrStdout())
			if err != nil {
				return report(cmd, err)
			}
			defer a.close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s. Type help for commands.\n", a.cfg.App().AppTitle())
			return a.shell.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the yaml config")

	root.AddCommand(
		oneShot(&configPath, "convert [AMOUNT [FROM [TO]]]", "Convert once and store the result", shell.KindConvert, cobra.MaximumNArgs(3)),
		oneShot(&configPath, "history [day|week|month|year]", "Print the conversion history", shell.KindHistory, cobra.MaximumNArgs(1)),
		oneShot(&configPath, "clear", "Delete the whole history", shell.KindClear, cobra.NoArgs),
		oneShot(&configPath, "export FILE [day|week|month|year]", "Write the history to a PDF file", shell.KindExport, cobra.RangeArgs(1, 2)),
		oneShot(&configPath, "chart FILE", "Draw the rate chart to a PNG file", shell.KindChart, cobra.ExactArgs(1)),
		oneShot(&configPath, "currencies", "List supported currency codes", shell.KindCurrencies, cobra.NoArgs),
		newRatesCmd(&configPath),
	)
	return root
}

// oneShot runs a single shell command and exits non-zero when it fails.
func oneShot(configPath *string, use, short string, kind shell.Kind, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath, cmd.OutOrStdout())
			if err != nil {
				return report(cmd, err)
			}
			defer a.close()

			res := a.shell.Dispatch(cmd.Context(), shell.NewCommand(kind, args...))
			if res.OK() {
				shell.Print(cmd.OutOrStdout(), res)
				return nil
			}
			shell.Print(cmd.ErrOrStderr(), res)
			return errors.Wrap(errCommandFailed, res.Outcome.String())
		},
	}
}

func newRatesCmd(configPath *string) *cobra.Command {
	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Manage the exchange rate snapshot",
	}
	ratesCmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Pull current rates from fixer.io into the snapshot file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*configPath)
			if err != nil {
				return report(cmd, err)
			}
			table, err := refreshRates(cmd, cfg)
			if err != nil {
				return report(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rates of %s saved to %s (%d currencies)\n",
				table.Date().Format("2 January 2006"), cfg.Rates().File(), len(table.Currencies()))
			return nil
		},
	})
	return ratesCmd
}

func refreshRates(cmd *cobra.Command, cfg *config.Service) (*rates.Table, error) {
	client, err := fixer.New(cfg.Fixer())
	if err != nil {
		return nil, err
	}
	refresher, err := rates.NewRefresher(client, cfg.Rates().File())
	if err != nil {
		return nil, err
	}
	current, err := rates.Load(cfg.Rates().File())
	if err != nil {
		return nil, err
	}
	return refresher.Refresh(cmd.Context(), current)
}

func report(cmd *cobra.Command, err error) error {
	logger.Error("currconv failed", zap.String("command", cmd.Name()), zap.Error(err))
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err)
	return err
}

