package main

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"note-task-planner/internal/model"
)

var extractSave bool

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract candidate tasks from a photo or voice recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "save every valid candidate")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	media := model.RawMedia{Data: data, MIMEType: mimetype.Detect(data).String()}
	if media.Kind() == model.MediaKindUnknown {
		return fmt.Errorf("%s is %s, want an image or audio file", args[0], media.MIMEType)
	}

	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	uc, err := d.extractor(ctx)
	if err != nil {
		return err
	}

	out, err := uc.ExtractCandidates(ctx, d.scope, media)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "text:\n%s\n\n", out.Text)
	for i, c := range out.Candidates {
		fmt.Fprintf(w, "%d. [%s] %s", i+1, c.Priority, c.Title)
		if c.DeadlinePhrase != "" {
			fmt.Fprintf(w, " (due %s)", c.DeadlinePhrase)
		}
		fmt.Fprintln(w)
	}

	if !extractSave {
		return nil
	}

	res, err := d.tasks.SaveCandidates(ctx, d.scope, out.Candidates)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nsaved %d task(s)\n", res.Succeeded)
	for _, s := range res.Skipped {
		fmt.Fprintf(w, "skipped #%d %q: %s\n", s.Index+1, s.Title, s.Reason)
	}
	return nil
}
