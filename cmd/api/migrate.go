package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/migrations"
)

func newMigrateCmd() *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}
	cmd.PersistentFlags().StringVar(&dsn, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string (defaults to $DATABASE_URL)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd, dsn, func(ctx context.Context, db *sql.DB) ([]int64, error) {
				return migrations.Up(ctx, db)
			})
		},
	}

	var to int64
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations down to --to (0 drops the whole schema)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigration(cmd, dsn, func(ctx context.Context, db *sql.DB) ([]int64, error) {
				return migrations.DownTo(ctx, db, to)
			})
		},
	}
	down.Flags().Int64Var(&to, "to", 0, "Version to roll back to")

	cmd.AddCommand(up, down)
	return cmd
}

func runMigration(cmd *cobra.Command, dsn string, migrate func(context.Context, *sql.DB) ([]int64, error)) error {
	if dsn == "" {
		return errors.New("--database-url or DATABASE_URL is required")
	}
	ctx := cmd.Context()
	db, err := migrations.Open(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	versions, err := migrate(ctx, db)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(versions) == 0 {
		fmt.Fprintln(out, "no migrations to run")
		return nil
	}
	for _, v := range versions {
		fmt.Fprintf(out, "%s %05d\n", cmd.Name(), v)
	}
	return nil
}
