package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "club-ads/internal/adapter/http"
	"club-ads/internal/config"
	"club-ads/internal/db"
)

const shutdownTimeout = 5 * time.Second

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, cfg.Log.NewLogger(os.Stdout), nil
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the expiry sweeper and the event publisher",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.Psql.RunMigrations && !cfg.Engine.InMemory() {
				if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				logger.Info("migrations applied successfully")
			}

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			srv := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler:      a.handler().Router(),
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
			}

			// The event publisher outlives the server so events emitted by
			// in-flight requests are still drained.
			sinkCtx, stopSink := context.WithCancel(context.WithoutCancel(ctx))
			sinkDone := make(chan error, 1)
			go func() { sinkDone <- a.sink.Run(sinkCtx) }()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				return a.sweeper.Run(gctx)
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Error("server shutdown error", slog.Any("error", err))
					return err
				}
				logger.Info("server gracefully stopped")
				return nil
			})

			err = g.Wait()
			stopSink()
			<-sinkDone
			return err
		},
	}
}

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(*cobra.Command, []string) error {
				cfg, logger, err := loadConfig()
				if err != nil {
					return err
				}
				if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
					return err
				}
				logger.Info("migrations applied successfully")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations, one step by default",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n <= 0 {
						return fmt.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = n
				}
				cfg, logger, err := loadConfig()
				if err != nil {
					return err
				}
				if err = db.Rollback(cfg.Psql.Addr.String(), steps); err != nil {
					return err
				}
				logger.Info("migrations rolled back", slog.Int("steps", steps))
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, _, err := loadConfig()
				if err != nil {
					return err
				}
				version, dirty, err := db.SchemaVersion(cfg.Psql.Addr.String())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
				return nil
			},
		},
	)
	return cmd
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo zones, campaigns and creatives",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()
			if err = db.Seed(cmd.Context(), pool); err != nil {
				return err
			}
			logger.Info("seed data inserted")
			return nil
		},
	}
}

func sweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "End every campaign whose schedule has passed, once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			sinkCtx, stopSink := context.WithCancel(context.WithoutCancel(cmd.Context()))
			sinkDone := make(chan error, 1)
			go func() { sinkDone <- a.sink.Run(sinkCtx) }()

			n, err := a.lifecycle.ExpireDue(cmd.Context(), time.Now())
			stopSink()
			<-sinkDone
			fmt.Fprintf(cmd.OutOrStdout(), "ended %d campaigns\n", n)
			return err
		},
	}
}

func tokenCommand() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if role != httpadapter.RoleAdvertiser && role != httpadapter.RoleAdmin {
				return fmt.Errorf("role must be %q or %q", httpadapter.RoleAdvertiser, httpadapter.RoleAdmin)
			}
			tok, err := httpadapter.NewAuthenticator(cfg.Auth.JWTSecret).Issue(subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "", "advertiser id (token subject)")
	cmd.Flags().StringVar(&role, "role", httpadapter.RoleAdvertiser, "advertiser or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
