package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"note-task-planner/pkg/gcalendar"
)

var gcalTokenPath string

var gcalAuthCmd = &cobra.Command{
	Use:   "gcal-auth [credentials.json]",
	Short: "Authorize Google Calendar access and store the OAuth token",
	Long: `Authorize Google Calendar access for desktop OAuth credentials.

Open the printed URL, sign in, and paste the authorization code back. The token
is written where google_calendar.token_path expects it. Service account
credentials do not need this step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGcalAuth,
}

func init() {
	gcalAuthCmd.Flags().StringVar(&gcalTokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
	rootCmd.AddCommand(gcalAuthCmd)
}

func runGcalAuth(cmd *cobra.Command, args []string) error {
	credsPath := "google-credentials.json"
	if len(args) > 0 {
		credsPath = args[0]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parse credentials (want an OAuth desktop app file): %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code here: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := cfg.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(gcalTokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", gcalTokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", gcalTokenPath, err)
	}

	fmt.Fprintf(out, "\nToken saved to %s. Restart the API to enable the calendar mirror.\n", gcalTokenPath)
	return nil
}
