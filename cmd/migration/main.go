package main

import (
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/drivers/database"
	"crooly-service/internal/app/drivers/logger"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig.App.Env)

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	runner := &migrationRunner{log: log}
	root := &cobra.Command{
		Use:          "migration",
		Short:        "Manage the crooly postgres schema",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			runner.db = database.NewPostgresDB(driverConfig)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if runner.db != nil {
				runner.db.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&runner.dir, "dir", defaultMigrationDir(wd), "Directory holding the sql-migrate files")
	root.AddCommand(runner.upCmd(), runner.downCmd(), runner.statusCmd())

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("Migration command failed")
		os.Exit(1)
	}
}
