package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"rsutax/internal/config"
	"rsutax/internal/logger"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	tmiFlag       = "tmi"
	ratesFileFlag = "rates-file"
	logLevelFlag  = "log-level"

	tmiEnv       = "RSU_TAX_TMI"
	ratesFileEnv = "RSU_TAX_RATES_FILE"
)

type rootOptions struct {
	ratesFile string
	logLevel  string
	tmi       float64

	rates  config.RateTable
	logger logger.Logger
	sync   func()

	newLogger func(logger.LogLevel) (logger.Logger, func(), error)
}

func newRootOptions() *rootOptions {
	return &rootOptions{
		newLogger: func(level logger.LogLevel) (logger.Logger, func(), error) {
			return logger.NewZapLogger(level)
		},
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, newRootOptions(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		cancel()
		os.Exit(1)
	}
}

// run executes the command line and flushes the logger,
// including when the command failed
func run(ctx context.Context, opts *rootOptions, args []string, out io.Writer) error {
	defer opts.syncLogger()

	root := newRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(out)
	return root.ExecuteContext(ctx)
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "rsu-tax",
		Short:         "French tax on RSU grants",
		Long:          "Computes capital gains, employee contribution, social and acquisition gain taxes owed on a block of RSUs under French law",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := &pflag.FlagSet{}
	fs.StringVar(&opts.ratesFile, ratesFileFlag, "", "yaml rate table overriding the legislated defaults, env "+ratesFileEnv)
	fs.StringVar(&opts.logLevel, logLevelFlag, "warn", "log level - debug info warn error")
	fs.Float64Var(&opts.tmi, tmiFlag, 30, "marginal tax rate in percent, env "+tmiEnv)
	root.PersistentFlags().AddFlagSet(fs)

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLogLevel(opts.logLevel)
		if err != nil {
			return err
		}
		l, sync, err := opts.newLogger(level)
		if err != nil {
			return err
		}
		opts.logger, opts.sync = l, sync

		if err := godotenv.Load(); err != nil {
			opts.logger.Debugf("no .env file loaded: %s", err)
		}
		if err := opts.defaultsFromEnv(cmd); err != nil {
			return err
		}

		opts.rates = config.DefaultRateTable()
		if opts.ratesFile != "" {
			opts.rates, err = config.LoadRateTable(opts.ratesFile)
			if err != nil {
				return err
			}
			opts.logger.Infof("loaded rate table from %s", opts.ratesFile)
		}
		return nil
	}
	root.AddCommand(
		newComputeCommand(opts),
		newExamplesCommand(opts),
		newVersionCommand(),
	)
	return root
}

func (o *rootOptions) syncLogger() {
	if o.sync != nil {
		o.sync()
		o.sync = nil
	}
}

// flags win over the environment
func (o *rootOptions) defaultsFromEnv(cmd *cobra.Command) error {
	if v, ok := os.LookupEnv(tmiEnv); ok && !cmd.Flags().Changed(tmiFlag) {
		tmi, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("could not parse %s=%q: %w", tmiEnv, v, err)
		}
		o.tmi = tmi
	}
	if v, ok := os.LookupEnv(ratesFileEnv); ok && !cmd.Flags().Changed(ratesFileFlag) {
		o.ratesFile = v
	}
	return nil
}
