package main

import (
	"github.com/spf13/cobra"

	"voice-timesheet/pkg/log"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "timesheet",
		Short:         "Turn spoken workday summaries into timesheet entries",
		Long:          "timesheet extracts the date and \"<n> hours on <task>\" mentions from transcripts, resolves each task to a WBS element from a catalog and scales the day to 8 hours.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log to stderr at this level (debug, info, warn, error); silent when empty")

	rootCmd.AddCommand(newExtractCmd(opts), newShowCmd(opts))

	return rootCmd
}

func (o *rootOptions) logger() log.Logger {
	if o.logLevel == "" {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:    o.logLevel,
		Encoding: log.EncodingConsole,
		Stderr:   true,
	})
}
