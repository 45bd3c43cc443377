package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"note-task-planner/pkg/datemath"
)

var resolveNow string

var resolveCmd = &cobra.Command{
	Use:   "resolve <phrase>",
	Short: "Show the due date a deadline phrase resolves to",
	Long: `Show the due date a deadline phrase resolves to.

Phrases are matched against tomorrow, this week, next week and monday in that
order. Anything else resolves to one week from now.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveNow, "now", "", "reference instant in RFC 3339 (defaults to the current time)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	loc, err := datemath.LoadLocation(flagTZ)
	if err != nil {
		return err
	}

	now := time.Now()
	if resolveNow != "" {
		now, err = time.Parse(time.RFC3339, resolveNow)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
	}
	now = now.In(loc)

	phrase := strings.Join(args, " ")
	rule, _ := datemath.MatchDeadlineRule(phrase)
	due := datemath.ResolveDeadline(phrase, now)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rule: %s\n", rule.Name)
	fmt.Fprintf(out, "due:  %s (%s)\n", due.Format(time.RFC3339), due.Weekday())
	return nil
}
