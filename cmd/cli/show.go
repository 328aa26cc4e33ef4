package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"voice-timesheet/internal/timesheet/repository/sqlite"
)

type showOptions struct {
	sqlitePath string
	runID      string
	asJSON     bool
}

func newShowCmd(root *rootOptions) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the rows stored for a run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sqlite.Open(root.logger(), opts.sqlitePath)
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := db.ListEntries(cmd.Context(), opts.runID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("run %s not found", opts.runID)
			}

			w := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, e := range entries {
				date := "-"
				if e.Date != nil {
					date = *e.Date
				}
				fmt.Fprintf(w, "%s  %5.2fh  %-12s %s (score %.1f)\n", date, e.Hours, e.BillingID, e.MatchedDescription, e.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sqlitePath, "sqlite", "", "SQLite database written by extract --submit")
	cmd.Flags().StringVar(&opts.runID, "run", "", "run ID printed by extract --submit")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print rows as JSON")
	_ = cmd.MarkFlagRequired("sqlite")
	_ = cmd.MarkFlagRequired("run")

	return cmd
}
