package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/conn-castle/devsetup/internal/log"
	loglogrus "github.com/conn-castle/devsetup/internal/log/logrus"
	"github.com/conn-castle/devsetup/internal/messages"
)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			opts.workersSet = cmd.Flags().Changed(flagWorkers)
			if opts.workers < 0 {
				return fmt.Errorf(messages.RootWorkersFmt, opts.workers)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, flagConfig, "", messages.RootFlagConfig)
	flags.StringVar(&opts.logger, flagLogger, loggerDefault, messages.RootFlagLogger)
	flags.BoolVar(&opts.debug, flagDebug, false, messages.RootFlagDebug)
	flags.BoolVar(&opts.noColor, flagNoColor, false, messages.RootFlagNoColor)
	cmd.Flags().StringVar(&opts.profile, flagProfile, "", messages.RootFlagProfile)
	cmd.Flags().IntVar(&opts.workers, flagWorkers, 0, messages.RootFlagWorkers)

	cmd.AddCommand(newInitCmd(opts), newDoctorCmd(opts))
	return cmd
}

// getLogger builds the logrus-backed logger. Logs go to stderr so they never
// interleave with the progress output on stdout.
func getLogger(opts *rootOptions, stderr io.Writer) (log.Logger, error) {
	logrusLog := logrus.New()
	logrusLog.Out = stderr
	entry := logrus.NewEntry(logrusLog)

	if opts.debug {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}

	switch strings.ToLower(strings.TrimSpace(opts.logger)) {
	case "", loggerDefault:
		entry.Logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: opts.noColor || color.NoColor,
		})
	case loggerJSON:
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf(messages.RootUnknownLogFmt, opts.logger)
	}

	return loglogrus.NewLogrus(entry).WithValues(log.Kv{
		"version": Version,
	}), nil
}
