package main

import (
	"fmt"

	"github.com/onlook-dev/fixpack-pipeline/internal/orchestrator"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/spf13/cobra"
)

func newPruneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Reclaim expired job leases and delete finished jobs past retention",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cmd.Context(), cfg, store.DefaultMigrateOptions())
			if err != nil {
				return err
			}
			defer db.Close()

			q := queue.New(db)
			reclaimed, err := q.ReclaimExpired(cmd.Context(), cfg.Queue.Lease)
			if err != nil {
				return err
			}
			onLost := orchestrator.LostJobHandler(&store.ApplyRuns{DB: db}, logger)
			for _, job := range reclaimed.Lost {
				if err := onLost(cmd.Context(), job); err != nil {
					return err
				}
			}
			pruned, err := q.Prune(cmd.Context(), cfg.Queue.CompletedRetention, cfg.Queue.FailedRetention)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reclaimed %d jobs, failed %d lost jobs, pruned %d jobs\n",
				reclaimed.Requeued, len(reclaimed.Lost), pruned)
			return nil
		},
	}
}
