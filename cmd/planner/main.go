// Package main implements the planner CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Note Task Planner - turn notes and voice memos into scheduled tasks",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	flagUser    string
	flagTZ      string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "local", "owner id the command acts for")
	rootCmd.PersistentFlags().StringVar(&flagTZ, "tz", "", "IANA timezone (defaults to planner.timezone)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log at debug level")
}
