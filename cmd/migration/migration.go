package main

import (
	"database/sql"
	"fmt"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const migrationDialect = "postgres"

type migrationRunner struct {
	db  *sql.DB
	log *logrus.Logger
	dir string
}

func (m *migrationRunner) source() *migrate.FileMigrationSource {
	return &migrate.FileMigrationSource{Dir: m.dir}
}

func (m *migrationRunner) upCmd() *cobra.Command {
	var max int
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := migrate.ExecMax(m.db, migrationDialect, m.source(), migrate.Up, max)
			if err != nil {
				return fmt.Errorf("applying migrations from %s: %w", m.dir, err)
			}
			m.log.WithField("applied", n).Info("Migrations applied")
			return nil
		},
	}
	cmd.Flags().IntVar(&max, "max", 0, "Apply at most this many migrations, 0 applies all")
	return cmd
}

func (m *migrationRunner) downCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := migrate.ExecMax(m.db, migrationDialect, m.source(), migrate.Down, steps)
			if err != nil {
				return fmt.Errorf("rolling back migrations: %w", err)
			}
			m.log.WithField("rolled_back", n).Info("Migrations rolled back")
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back, 0 rolls back all")
	return cmd
}

func (m *migrationRunner) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrations, err := m.source().FindMigrations()
			if err != nil {
				return fmt.Errorf("reading migrations from %s: %w", m.dir, err)
			}

			records, err := migrate.GetMigrationRecords(m.db, migrationDialect)
			if err != nil {
				return fmt.Errorf("reading migration records: %w", err)
			}
			applied := make(map[string]bool, len(records))
			for _, record := range records {
				applied[record.Id] = true
			}

			for _, migration := range migrations {
				state := "pending"
				if applied[migration.Id] {
					state = "applied"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", migration.Id, state)
			}
			return nil
		},
	}
}

func defaultMigrationDir(wd string) string {
	return filepath.Join(wd, "internal/migration")
}
