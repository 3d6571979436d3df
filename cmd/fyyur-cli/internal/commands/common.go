package commands

import (
	"fmt"

	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence"
	"github.com/deividmarreiro/fyyur/internal/pkg/config"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase loads the application config and opens the database it points at.
func openDatabase(configPath string) (*gorm.DB, *config.RestConfig, error) {
	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return db, cfg, nil
}
