package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/pkg/datemath"
)

var (
	addDue      string
	addPriority string
	addHours    float64
	weekAnchor  string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show tasks by day for a Sunday-to-Saturday week",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress: streak, level and achievements",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "deadline phrase, e.g. \"tomorrow\" or \"next week\"")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "low, medium or high")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "estimated hours")
	weekCmd.Flags().StringVar(&weekAnchor, "week", "current", "last, current or next")

	rootCmd.AddCommand(addCmd, listCmd, doneCmd, weekCmd, statsCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	in := task.CreateInput{
		Title:          strings.Join(args, " "),
		Priority:       addPriority,
		DeadlinePhrase: addDue,
	}
	if cmd.Flags().Changed("hours") {
		in.EstimatedHours = &addHours
	}

	created, err := d.tasks.Create(ctx, d.scope, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", created.ID)
	printTasks(cmd.OutOrStdout(), []model.Task{created}, d.scope.Location())
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	tasks, err := d.tasks.List(ctx, d.scope)
	if err != nil {
		return err
	}
	printTasks(cmd.OutOrStdout(), tasks, d.scope.Location())
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	done, err := d.tasks.Complete(ctx, d.scope, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "completed %q, nice work!\n", done.Title)
	return nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	anchor, err := datemath.ParseWeekAnchor(weekAnchor)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	view, err := d.tasks.WeekView(ctx, d.scope, anchor, d.scope.Now())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Week %s to %s\n", view.Start.Format("Mon Jan 2"), view.End.Format("Mon Jan 2"))
	for _, day := range view.Days {
		fmt.Fprintf(out, "\n%s\n", day.Date.Format("Monday, Jan 2"))
		if len(day.Items) == 0 {
			fmt.Fprintln(out, "  -")
			continue
		}
		for _, it := range day.Items {
			mark := " "
			if it.Task.IsCompleted() {
				mark = "x"
			}
			suffix := ""
			if it.Undated {
				suffix = " (no due date)"
			}
			fmt.Fprintf(out, "  [%s] %s%s\n", mark, it.Task.Title, suffix)
		}
	}
	s := view.Summary
	fmt.Fprintf(out, "\n%d tasks: %d completed, %d pending, %d overdue\n", s.Total, s.Completed, s.Pending, s.Overdue)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	stats, err := d.tasks.Stats(ctx, d.scope, d.scope.Now())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "completed:       %d\n", stats.TotalCompleted)
	fmt.Fprintf(out, "this week:       %d\n", stats.CompletedThisWeek)
	fmt.Fprintf(out, "overdue:         %d\n", stats.OverdueTasks)
	fmt.Fprintf(out, "streak:          %d days\n", stats.CurrentStreak)
	fmt.Fprintf(out, "tree level:      %d (%s, %d to next)\n", stats.TreeLevel, stats.Stage, stats.Level.ToNext)
	for _, a := range stats.Achievements {
		fmt.Fprintf(out, "achievement:     %s\n", a.Title)
	}
	return nil
}

func printTasks(w io.Writer, tasks []model.Task, loc *time.Location) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tTITLE")
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.In(loc).Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Priority, due, t.Title)
	}
	tw.Flush()
}
