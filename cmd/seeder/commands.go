package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/food-planner/seeder/internal/api"
	"github.com/food-planner/seeder/internal/api/handler"
	"github.com/food-planner/seeder/internal/api/metrics"
	"github.com/food-planner/seeder/internal/fixtures"
)

const shutdownTimeout = 10 * time.Second

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the Roles and Users collections and insert the seed documents",
		Long: "Creates the Roles and Users collections and inserts the fixed seed documents.\n" +
			"The command is meant for a fresh database: it fails if either collection\n" +
			"already exists and never overwrites existing data.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			_, seedErr := a.seed.Seed(cmd.Context())

			if path := a.cfg.Metrics.Textfile; path != "" {
				if err := metrics.WriteTextfile(path); err != nil {
					a.log.Warn().Err(err).Str("path", path).Msg("metrics not exported")
				}
			}
			return seedErr
		},
	}
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Compare the stored collections with the seed documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			report, err := a.seed.Verify(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database %s: %d roles, %d users\n", report.Database, report.Roles, report.Users)
			for _, p := range report.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			if !report.Seeded() {
				return fmt.Errorf("%d problem(s) found", len(report.Problems))
			}
			fmt.Fprintln(out, "seed data matches")
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Serve health, seed status and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if addr == "" {
				addr = a.cfg.Status.Addr
			}

			deps := api.Deps{
				Verifier: a.seed,
				Log:      a.log,
				Checks: map[string]handler.CheckFunc{
					"mongodb": func(ctx context.Context) error { return a.mongo.Ping(ctx, nil) },
				},
			}
			if a.redis != nil {
				deps.Checks["redis"] = func(ctx context.Context) error { return a.redis.Ping(ctx).Err() }
				deps.LastRun = a.lock.LastCompleted
			}
			e := api.NewRouter(deps)

			errCh := make(chan error, 1)
			go func() {
				a.log.Info().Str("addr", addr).Msg("status server listening")
				errCh <- e.Start(addr)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.log.Info().Msg("shutting down status server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to STATUS_ADDR)")
	return cmd
}

func newFixtureCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Print the seed documents without touching the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				_, err := cmd.OutOrStdout().Write(fixtures.Raw())
				return err
			}

			set, err := fixtures.Load()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the embedded YAML as is")
	return cmd
}
