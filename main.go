package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pickparty/auth"
	"github.com/danielhkuo/pickparty/catalog"
	"github.com/danielhkuo/pickparty/cliparse"
	"github.com/danielhkuo/pickparty/db"
	"github.com/danielhkuo/pickparty/livesync"
	"github.com/danielhkuo/pickparty/middleware"
	"github.com/danielhkuo/pickparty/router"
	"github.com/danielhkuo/pickparty/store"
)

const releaseVersion = "0.1.0"

func main() {
	// A missing .env is fine; the environment may come from elsewhere
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("Exiting", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pickparty",
		Short:         "Super Bowl prediction parties with live leaderboards.",
		Args:          cobra.NoArgs,
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cliparse.RegisterFlags(cmd.Flags())

	cmd.AddCommand(newMigrateCmd(), newHashPasswordCmd(), newCategoriesCmd())
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("pickparty v{{.Version}}\n")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.LoadDatabase(cmd.Flags())
			if err != nil {
				return err
			}
			conn, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return conn.Close()
		},
	}
	cliparse.RegisterDatabaseFlags(cmd.Flags())
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for --admin-password-hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashAdminPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the prediction catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalog.MustDefault().Groups())
		},
	}
}

// openDB connects, verifies the connection and creates the schema
func openDB(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	driver, err := db.DriverName(cfg.DatabaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps
	// in-memory databases alive
	if cfg.DatabaseType == db.SQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if cfg.DatabaseType == db.SQLite {
		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, fmt.Errorf("schema creation failed: %w", err)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	return conn, nil
}

func serve(ctx context.Context, cfg cliparse.Config) error {
	conn, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	st := store.New(conn, catalog.MustDefault(), cfg.LockoutAt)
	feed := livesync.NewFeed(st, livesync.NewHub())

	// Postgres tells us about result writes from anywhere; SQLite only has
	// this process
	if cfg.DatabaseType == db.Postgres {
		listener := livesync.NewListener(cfg.DatabaseURL, feed)
		go func() {
			if err := listener.Run(ctx); err != nil {
				slog.Error("results listener failed", "error", err)
			}
		}()
	}

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(router.NewRouter(st, feed, cfg)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "lockout_at", cfg.LockoutAt, "admins", len(cfg.AdminUsers))
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed")
	return nil
}
