package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status [apply-run-id]",
		Short: "Show an apply run, or job counts when no run is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cmd.Context(), cfg, store.DefaultMigrateOptions())
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				counts, err := queue.New(db).Counts(cmd.Context())
				if err != nil {
					return err
				}
				printCounts(out, counts)
				return nil
			}

			run, err := (&store.ApplyRuns{DB: db}).Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("loading apply run %s: %w", args[0], err)
			}
			printRun(out, run)
			return nil
		},
	}
}

func printCounts(out io.Writer, counts map[models.JobClass]map[queue.Status]int) {
	statuses := []queue.Status{queue.StatusPending, queue.StatusActive, queue.StatusCompleted, queue.StatusFailed}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tPENDING\tACTIVE\tCOMPLETED\tFAILED")
	for _, class := range []models.JobClass{models.JobClassApply, models.JobClassMonitor} {
		fmt.Fprint(w, class)
		for _, s := range statuses {
			fmt.Fprintf(w, "\t%d", counts[class][s])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func printRun(out io.Writer, run *models.ApplyRun) {
	fmt.Fprintf(out, "Run:     %s\n", run.ID)
	fmt.Fprintf(out, "Repo:    %s\n", run.FullName())
	fmt.Fprintf(out, "Status:  %s\n", run.Status)
	if run.Branch != nil {
		fmt.Fprintf(out, "Branch:  %s\n", *run.Branch)
	}
	if run.PRURL != nil {
		fmt.Fprintf(out, "PR:      %s\n", *run.PRURL)
	}
	if run.Error != nil {
		fmt.Fprintf(out, "Error:   %s\n", *run.Error)
	}

	logs := append([]models.LogEntry(nil), run.Logs...)
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Timestamp.Before(logs[j].Timestamp) })

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, entry := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Timestamp.Format(time.RFC3339), entry.Level, entry.Message)
	}
	w.Flush()
}
