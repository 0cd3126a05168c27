package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/app"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/logger"
	"github.com/guttosm/meal-planner/internal/seed"
	"github.com/guttosm/meal-planner/internal/service"
)

const closeTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "meal-planner",
		Short: "Household meal planning API",
		Long: `Meal Planner serves the household meal planning API: households,
the ingredient catalog, recipes, weekly meal plans, pantries and shopping
lists generated from a plan.

Without a subcommand the HTTP server is started.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newSeedCmd())
	root.AddCommand(newLogsCmd())
	root.AddCommand(newKeysCmd(rand.Reader))
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			application := app.InitializeApp(cfg)
			if cfg.Auth.Enabled && cfg.Auth.UsesDefaultSecrets() {
				log.Warn().Msg("JWT secrets are the shipped defaults; set JWT_SECRET_KEY and JWT_REFRESH_SECRET_KEY")
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
				defer cancel()
				_ = application.Close(ctx)
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.NewServer(application.Router, cfg.Server.Port).Run(ctx)
		},
	}
}

func newSeedCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import the ingredient catalog",
		Long: `Import the ingredient catalog into MongoDB. Ingredients whose name
already exists are left untouched, so the command can be run repeatedly.

The embedded catalog is used unless --file (or SEED_INGREDIENTS_FILE) names
a YAML file of the form:

  ingredients:
    - name: Spaghetti
      category: Grains`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if file == "" {
				file = cfg.Seed.File
			}

			if dryRun {
				catalog, err := seed.Load(file)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog is valid: %d ingredients\n", len(catalog))
				return nil
			}

			db, closeDB, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDB()

			services := app.InitializeServices(config.CacheConfig{}, db).Services
			inserted, err := app.SeedIngredients(cmd.Context(), services.Ingredients, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d new ingredients\n", inserted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to import instead of the embedded one")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the catalog without connecting to MongoDB")
	return cmd
}

func newLogsCmd() *cobra.Command {
	var (
		opts      model.LogQueryOptions
		since     time.Duration
		countOnly bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Search stored request logs and audit records",
		Long: `Search the request logs and audit records kept in MongoDB, newest
first. Entries are printed as JSON lines.

  meal-planner logs --user 65f1c0ffee0ddba11ad0be01 --since 24h
  meal-planner logs --action login_failed --count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if since < 0 {
				return fmt.Errorf("--since must be positive, got %s", since)
			}
			if since > 0 {
				start := time.Now().UTC().Add(-since)
				opts.StartTime = &start
			}

			db, closeDB, err := openDatabase(config.Load())
			if err != nil {
				return err
			}
			defer closeDB()

			return runLogs(cmd.Context(), cmd.OutOrStdout(), db.LoggingService, opts, countOnly)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.UserID, "user", "", "Only entries of this user ID")
	f.StringVar(&opts.ActionType, "action", "", "Only audit records of this action, e.g. login")
	f.StringVar(&opts.RequestID, "request-id", "", "Only entries of this request")
	f.StringVar(&opts.Level, "level", "", "Only entries of this level")
	f.StringVar(&opts.Method, "method", "", "Only requests with this HTTP method")
	f.StringVar(&opts.Path, "path", "", "Only requests whose path starts with this prefix")
	f.DurationVar(&since, "since", 0, "Only entries newer than this, e.g. 2h")
	f.IntVar(&opts.Limit, "limit", 50, "Maximum number of entries")
	f.IntVar(&opts.Skip, "skip", 0, "Number of entries to skip")
	f.BoolVar(&countOnly, "count", false, "Print only the number of matching entries")
	return cmd
}

// minKeyBytes keeps generated HMAC secrets at 256 bits or more.
const minKeyBytes = 32

func newKeysCmd(entropy io.Reader) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate JWT secrets and an API key",
		Long: `Print fresh random secrets as environment assignments, ready to paste
into an .env file or a secret manager. Use different secrets per environment
and never commit them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < minKeyBytes {
				return fmt.Errorf("--bytes must be at least %d, got %d", minKeyBytes, size)
			}
			for _, name := range []string{"JWT_SECRET_KEY", "JWT_REFRESH_SECRET_KEY", "API_KEYS"} {
				key := make([]byte, size)
				if _, err := io.ReadFull(entropy, key); err != nil {
					return fmt.Errorf("generate %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, base64.RawURLEncoding.EncodeToString(key))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "bytes", minKeyBytes, "Random bytes per secret")
	return cmd
}

// runLogs prints the entries matching opts, or their count.
func runLogs(ctx context.Context, out io.Writer, logs service.LoggingService, opts model.LogQueryOptions, countOnly bool) error {
	if countOnly {
		n, err := logs.CountLogs(ctx, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, n)
		return err
	}

	entries, err := logs.QueryLogs(ctx, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

// openDatabase connects to MongoDB for a one-shot command. The returned
// func disconnects.
func openDatabase(cfg config.Config) (*app.DatabaseComponents, func(), error) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	db := app.InitializeDatabase(cfg.Database)
	if db == nil {
		return nil, nil, app.ErrDatabaseUnavailable
	}
	return db, func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		_ = db.Close(ctx)
	}, nil
}
