package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsearch/internal/logging"
)

// errNoPath signals a completed search that found nothing (exit code 2).
var errNoPath = errors.New("no path")

// app carries per-invocation state resolved in PersistentPreRunE.
type app struct {
	configFile string
	cfg        *viper.Viper
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Depth-first search over lazy state spaces",
		Long: `lvsearch runs the lvsearch depth-first engine over built-in spaces:
the bounded binary tree and seeded random graphs. It also times repeated
searches with concurrent workers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, a.configFile)
			if err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.GetString(cfgKeyLogLevel))
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file")
	root.PersistentFlags().String(cfgKeyLogLevel, "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newTreeCmd(a))
	root.AddCommand(newGraphCmd(a))
	root.AddCommand(newBenchCmd(a))

	return root
}

// report logs traversal statistics and prints the outcome.
func (a *app) report(cmd *cobra.Command, found bool, fields logrus.Fields, path string) error {
	a.log.WithFields(fields).Info("search finished")
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "no path")
		return errNoPath
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}
