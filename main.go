package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/percona-lab/l99/config"
	"github.com/percona-lab/l99/errors"
	"github.com/percona-lab/l99/laws"
	"github.com/percona-lab/l99/log"
	"github.com/percona-lab/l99/metrics"
)

func main() {
	// replaced once the log flags are parsed
	log.InitGlobals(zerolog.InfoLevel, false, false)

	err := newRootCmd().Execute()
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevelFlag string
		logJSON      bool
		logNoColor   bool
		printMetrics bool

		format string
	)

	reg := prometheus.NewRegistry()
	metrics.Init(reg)

	rootCmd := &cobra.Command{
		Use:   "l99",
		Short: "List exercises over a cons list",
		Long: "Evaluate list exercises over integer elements given as arguments.\n" +
			"Put -- before the elements if any of them is negative.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logLevel, err := zerolog.ParseLevel(logLevelFlag)
			if err != nil {
				return errors.Wrapf(err, "log level %q", logLevelFlag)
			}

			lg := log.InitGlobals(logLevel, logJSON, logNoColor)
			cmd.SetContext(lg.WithContext(cmd.Context()))

			return checkOutput(format)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !printMetrics {
				return nil
			}

			return metrics.WriteText(cmd.ErrOrStderr(), reg)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", config.LogLevel(), "Log level")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logNoColor, "no-color", false, "Disable log color")
	rootCmd.PersistentFlags().BoolVar(&printMetrics, "metrics", false, "Print metrics to stderr on exit")
	rootCmd.PersistentFlags().StringVarP(&format, "output", "o", outputText,
		"Output format: text, json or extjson")

	out := func(cmd *cobra.Command) *printer {
		return &printer{w: cmd.OutOrStdout(), format: format}
	}

	iterateCmd := &cobra.Command{
		Use:   "iterate [ELEM...]",
		Short: "Print the elements one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseList(args)
			if err != nil {
				return err
			}

			metrics.AddOperation("iterate")

			return out(cmd).Each(l)
		},
	}

	lastCmd := &cobra.Command{
		Use:   "last [ELEM...]",
		Short: "Print the last element",
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalOption(cmd, out(cmd), "last", args)
		},
	}

	lastButOneCmd := &cobra.Command{
		Use:   "last-but-one [ELEM...]",
		Short: "Print the second-to-last element",
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalOption(cmd, out(cmd), "last-but-one", args)
		},
	}

	kthCmd := &cobra.Command{
		Use:   "kth POS [ELEM...]",
		Short: "Print the element at a 0-based position",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalOption(cmd, out(cmd), "kth", args)
		},
	}

	lengthCmd := &cobra.Command{
		Use:   "length [ELEM...]",
		Short: "Print the number of elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalLength(cmd, out(cmd), args)
		},
	}

	reverseCmd := &cobra.Command{
		Use:   "reverse [ELEM...]",
		Short: "Print the elements in reverse order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalReverse(cmd, out(cmd), args)
		},
	}

	var (
		checkOpts    laws.Options
		checkTimeout = config.DefaultCheckTimeout
	)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check list laws over generated lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
			defer cancel()

			rep, err := laws.Run(ctx, checkOpts)
			if err != nil {
				return errors.Wrap(err, "check")
			}

			return out(cmd).Report(rep)
		},
	}

	addCheckFlags(checkCmd.Flags(), &checkOpts, &checkTimeout)

	rootCmd.AddCommand(iterateCmd, lastCmd, lastButOneCmd, kthCmd, lengthCmd, reverseCmd, checkCmd)

	return rootCmd
}
