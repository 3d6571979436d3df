package commands

import (
	"fmt"

	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DBCommandHandler encapsulates logic for database schema management via CLI.
type DBCommandHandler struct {
	logger logger.Logger
}

// NewDBCommandHandler initializes and returns a DBCommandHandler instance with
// a configured logger.
func NewDBCommandHandler() (*DBCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DBCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd runs the schema auto-migrations for all booking tables
func (commandHandler *DBCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		commandHandler.logger.Error("invalid config flag ", err)
		return
	}

	db, _, err := openDatabase(configPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("failed to close database connection: ", err)
		}
	}()

	if err := persistence.MigrateSchema(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Database migrations completed successfully")
}

// DropCmd drops the configured PostgreSQL database
func (commandHandler *DBCommandHandler) DropCmd(cmd *cobra.Command, _ []string) {
	adminDSN, err := cmd.Flags().GetString("admin-dsn")
	if err != nil {
		commandHandler.logger.Error("invalid admin-dsn flag ", err)
		return
	}
	dbName, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	if adminDSN == "" || dbName == "" {
		commandHandler.logger.Error("both --admin-dsn and --name are required")
		return
	}

	if err := persistence.DropDatabase(adminDSN, dbName); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Dropped database ", dbName)
}

// InitDBCommands registers database management commands
func InitDBCommands(rootCmd *cobra.Command) error {
	handler, err := NewDBCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create db command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "db-migrate",
		Short: "Run the schema migrations",
		Run:   handler.MigrateCmd,
	}
	migrateCmd.Flags().StringP("config", "", "configs/rest-app.yaml", "Path to the application config file")
	rootCmd.AddCommand(migrateCmd)

	var dropCmd = &cobra.Command{
		Use:   "db-drop",
		Short: "Drop a PostgreSQL database",
		Run:   handler.DropCmd,
	}
	dropCmd.Flags().StringP("admin-dsn", "", "", "Admin DSN used to connect to the postgres server")
	dropCmd.Flags().StringP("name", "", "", "Name of the database to drop")
	rootCmd.AddCommand(dropCmd)

	return nil
}
