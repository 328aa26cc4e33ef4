package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"voice-timesheet/internal/timesheet"
	"voice-timesheet/internal/timesheet/repository"
	"voice-timesheet/internal/timesheet/repository/cache"
	"voice-timesheet/internal/timesheet/repository/file"
	"voice-timesheet/internal/timesheet/repository/sqlite"
	"voice-timesheet/internal/timesheet/usecase"
)

type extractOptions struct {
	catalogPath string
	sqlitePath  string
	submit      bool
	asJSON      bool
	parallel    int
}

// extractResult is the outcome for one transcript file.
type extractResult struct {
	File    string                     `json:"file"`
	RunID   string                     `json:"run_id,omitempty"`
	Date    *string                    `json:"date"`
	Tasks   []timesheet.RawTaskMention `json:"tasks"`
	Entries []timesheet.ResolvedEntry  `json:"entries"`
	Error   string                     `json:"error,omitempty"`
}

var errSomeFailed = errors.New("one or more transcripts failed")

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract FILE...",
		Short: "Extract timesheet entries from transcript files (\"-\" reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.submit && opts.sqlitePath == "" {
				return errors.New("--submit needs --sqlite")
			}
			return runExtract(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog with description/note/wbs_element entries")
	cmd.Flags().StringVar(&opts.sqlitePath, "sqlite", "", "SQLite database that --submit writes rows to")
	cmd.Flags().BoolVar(&opts.submit, "submit", false, "store the resolved rows")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")
	cmd.Flags().IntVar(&opts.parallel, "parallel", runtime.NumCPU(), "transcripts processed at once")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func runExtract(cmd *cobra.Command, root *rootOptions, opts *extractOptions, files []string) error {
	ctx := cmd.Context()
	l := root.logger()

	catalogRepo := cache.NewCatalogRepository(l, file.NewCatalogRepository(l, opts.catalogPath), 1, time.Hour)
	if _, err := catalogRepo.LoadCatalog(ctx); err != nil {
		return err
	}

	var timesheetRepo repository.TimesheetRepository = discardRepository{}
	if opts.sqlitePath != "" {
		db, err := sqlite.Open(l, opts.sqlitePath)
		if err != nil {
			return err
		}
		defer db.Close()
		timesheetRepo = db
	}

	uc := usecase.New(l, catalogRepo, timesheetRepo, nil)

	transcripts, err := readTranscripts(cmd.InOrStdin(), files)
	if err != nil {
		return err
	}

	results := make([]extractResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if opts.parallel > 0 {
		g.SetLimit(opts.parallel)
	}

	for i, name := range files {
		g.Go(func() error {
			res := extractResult{File: name}
			if opts.submit {
				out, err := uc.Submit(gctx, timesheet.SubmitInput{Transcript: transcripts[i]})
				res.RunID, res.Date, res.Tasks, res.Entries = out.RunID, out.Date, out.Tasks, out.Entries
				if err != nil {
					res.Error = err.Error()
				}
			} else {
				out, err := uc.Preview(gctx, timesheet.PreviewInput{Transcript: transcripts[i]})
				res.Date, res.Tasks, res.Entries = out.Date, out.Tasks, out.Entries
				if err != nil {
					res.Error = err.Error()
				}
			}
			results[i] = res
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := printResults(cmd.OutOrStdout(), results, opts.asJSON); err != nil {
		return err
	}

	for _, r := range results {
		if r.Error != "" {
			return errSomeFailed
		}
	}
	return nil
}

func readTranscripts(stdin io.Reader, files []string) ([]string, error) {
	out := make([]string, len(files))
	for i, name := range files {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, fmt.Errorf("read transcript %s: %w", name, err)
		}
		out[i] = string(data)
	}
	return out, nil
}

func printResults(w io.Writer, results []extractResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintf(w, "== %s\n", r.File)
		if r.Error != "" {
			fmt.Fprintf(w, "error: %s\n", r.Error)
			continue
		}

		date := "-"
		if r.Date != nil {
			date = *r.Date
		}
		fmt.Fprintf(w, "date: %s\n", date)
		if len(r.Entries) == 0 {
			fmt.Fprintln(w, "no tasks found")
		}
		for i, e := range r.Entries {
			fmt.Fprintf(w, "  %5.2fh  %-12s %s (task %q, score %.1f)\n", e.Hours, e.BillingID, e.MatchedDescription, r.Tasks[i].TaskText, e.Score)
		}
		if r.RunID != "" {
			fmt.Fprintf(w, "run: %s\n", r.RunID)
		}
	}
	return nil
}
