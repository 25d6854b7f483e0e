package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brushworkslabs/brushworks/internal/clock"
	"github.com/brushworkslabs/brushworks/internal/config"
	"github.com/brushworkslabs/brushworks/internal/docstore"
	"github.com/brushworkslabs/brushworks/internal/employee"
	"github.com/brushworkslabs/brushworks/internal/equipment"
	"github.com/brushworkslabs/brushworks/internal/invoice"
	"github.com/brushworkslabs/brushworks/internal/lead"
	"github.com/brushworkslabs/brushworks/internal/loadout"
	"github.com/brushworkslabs/brushworks/internal/migration"
	"github.com/brushworkslabs/brushworks/internal/observability"
	"github.com/brushworkslabs/brushworks/internal/proposal"
	"github.com/brushworkslabs/brushworks/internal/quote"
	"github.com/brushworkslabs/brushworks/internal/ratebook"
	"github.com/brushworkslabs/brushworks/internal/routing"
	"github.com/brushworkslabs/brushworks/internal/scheduler"
	"github.com/brushworkslabs/brushworks/internal/seed"
	"github.com/brushworkslabs/brushworks/internal/server"
	"github.com/brushworkslabs/brushworks/internal/workorder"
	"github.com/brushworkslabs/brushworks/pkg/db"
	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "brushworks",
		Short:   "Brushworks CLI",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newServeCmd(), newAllCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server and overdue sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run migrations, then start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(); err != nil {
				return err
			}
			runServe()
			return nil
		},
	}
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		seed.Module,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		docstore.Module,
		routing.Module,

		ratebook.Module,
		quote.Module,
		equipment.Module,
		employee.Module,
		loadout.Module,
		lead.Module,
		proposal.Module,
		workorder.Module,
		invoice.Module,

		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
