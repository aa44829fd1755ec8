package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/onlook-dev/fixpack-pipeline/internal/config"
	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/onlook-dev/fixpack-pipeline/internal/logging"
	"github.com/onlook-dev/fixpack-pipeline/internal/store"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fixpackd",
		Short: "Apply generated fix packs to GitHub repositories",
		Long: `fixpackd turns a generated fix pack into a branch, a pull request and a
CI verdict. It runs the job queue, the apply and monitor worker pools and
the HTTP API that queues apply runs.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file (default $FIXPACK_CONFIG)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file merged under the process environment")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newApplyCmd(opts),
		newStatusCmd(opts),
		newImportCmd(opts),
		newPruneCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(config.Source{File: o.configPath, DotEnv: o.envFile})
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	level, _ := cfg.Log.SlogLevel()
	logger, err := logging.New(os.Stderr, cfg.Log.Format, level)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openDatabase connects and brings the schema up to date.
func openDatabase(ctx context.Context, cfg *config.Config, opts store.Options) (*sql.DB, error) {
	db, err := store.Connect(ctx, cfg.Database.Driver, cfg.Database.URL, opts)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx, db, cfg.Database.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}

// credentials picks the GitHub credential from config. A personal access token wins over
// an App; nil means none is configured and every connect fails with ErrNoCredential.
func credentials(cfg *config.Config) (github.CredentialProvider, error) {
	gh := cfg.GitHub
	if gh.Token != "" {
		return github.TokenProvider{Token: gh.Token}, nil
	}
	if gh.AppID == 0 {
		return nil, nil
	}

	key := []byte(gh.PrivateKey)
	if len(key) == 0 {
		var err error
		if key, err = os.ReadFile(gh.PrivateKeyPath); err != nil {
			return nil, fmt.Errorf("reading GitHub App private key: %w", err)
		}
	}
	return &github.AppProvider{
		AppID:                 gh.AppID,
		PrivateKey:            key,
		DefaultInstallationID: gh.InstallationID,
		BaseURL:               strings.TrimSuffix(gh.BaseURL, "/"),
	}, nil
}

func newConnector(cfg *config.Config) (github.Connector, error) {
	creds, err := credentials(cfg)
	if err != nil {
		return nil, err
	}
	return github.NewConnector(creds, cfg.GitHub.BaseURL), nil
}
