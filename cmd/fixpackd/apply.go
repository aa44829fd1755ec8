package main

import (
	"fmt"

	"github.com/onlook-dev/fixpack-pipeline/internal/orchestrator"
	"github.com/onlook-dev/fixpack-pipeline/internal/queue"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/spf13/cobra"
)

func newApplyCmd(opts *rootOptions) *cobra.Command {
	var req orchestrator.StartRequest

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Queue an apply run for a fix pack",
		Long: `Queue an apply run with the same checks as the HTTP API. The run is picked
up by a running "fixpackd serve".`,
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

			fixPacks := &store.FixPacks{DB: db}
			starter := orchestrator.NewStarter(&store.Audits{DB: db}, fixPacks, &store.Credits{DB: db}, &store.ApplyRuns{DB: db}, queue.New(db), orchestrator.StarterConfig{
				CreditCost:       cfg.Apply.CreditCost,
				ApplyMaxAttempts: cfg.Apply.MaxAttempts,
			}, logger)

			run, err := starter.StartApply(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Queued apply run %s for %s\n", run.ID, run.FullName())
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UserID, "user", "", "user the run is charged to")
	cmd.Flags().StringVar(&req.AuditID, "audit", "", "completed audit the fix pack belongs to")
	cmd.Flags().StringVar(&req.FixPackID, "fix-pack", "", "fix pack to apply")
	cmd.Flags().StringVar(&req.RepoOwner, "owner", "", "repository owner")
	cmd.Flags().StringVar(&req.RepoName, "repo", "", "repository name")
	cmd.Flags().StringVar(&req.InstallationID, "installation", "", "GitHub App installation ID")
	return cmd
}
