package main

import (
	"fmt"
	"os"

	"github.com/onlook-dev/fixpack-pipeline/internal/fixpack"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/onlook-dev/fixpack-pipeline/models"
	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var (
		completeAudit bool
		grant         int
	)

	cmd := &cobra.Command{
		Use:   "import-fixpack FILE",
		Short: "Load fix packs from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			packs, err := fixpack.FromJSON(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cmd.Context(), cfg, store.DefaultMigrateOptions())
			if err != nil {
				return err
			}
			defer db.Close()

			var (
				ctx      = cmd.Context()
				fixPacks = &store.FixPacks{DB: db}
				audits   = &store.Audits{DB: db}
				credits  = &store.Credits{DB: db}
				granted  = make(map[string]bool)
				out      = cmd.OutOrStdout()
			)
			for _, fp := range packs {
				if err := fixPacks.Save(ctx, fp); err != nil {
					return fmt.Errorf("saving fix pack %s: %w", fp.ID, err)
				}
				fmt.Fprintf(out, "Imported fix pack %s (%s, %d diffs)\n", fp.ID, fp.Type, len(fp.PatchPreview.Diffs))

				if completeAudit {
					audit := models.Audit{ID: fp.AuditID, UserID: fp.UserID, Status: models.AuditStatusCompleted}
					if err := audits.Save(ctx, audit); err != nil {
						return fmt.Errorf("saving audit %s: %w", fp.AuditID, err)
					}
				}
				if grant > 0 && !granted[fp.UserID] {
					balance, err := credits.Grant(ctx, fp.UserID, grant)
					if err != nil {
						return fmt.Errorf("granting credits to %s: %w", fp.UserID, err)
					}
					granted[fp.UserID] = true
					fmt.Fprintf(out, "User %s now has %d credits\n", fp.UserID, balance)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&completeAudit, "complete-audit", false, "record each fix pack's audit as completed")
	cmd.Flags().IntVar(&grant, "grant-credits", 0, "credits to grant each fix pack owner")
	return cmd
}
