// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/miaucode/licencias-backend/internal/config"
	"github.com/miaucode/licencias-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Usuario{},
		&models.Servicio{},
		&models.Licencia{},
		&models.Ingreso{},
		&models.Egreso{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Licencia indexes: the dashboard filters by status and orders by fin
		"CREATE INDEX IF NOT EXISTS idx_licencias_user ON licencias(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_licencias_servicio ON licencias(servicio_id)",
		"CREATE INDEX IF NOT EXISTS idx_licencias_status_fin ON licencias(status, fin)",

		// Ledger indexes
		"CREATE INDEX IF NOT EXISTS idx_ingresos_licencia ON ingresos(licencia_id)",
		"CREATE INDEX IF NOT EXISTS idx_ingresos_fecha ON ingresos(fecha_ingreso DESC)",
		"CREATE INDEX IF NOT EXISTS idx_egresos_servicio ON egresos(servicio_id)",
		"CREATE INDEX IF NOT EXISTS idx_egresos_fecha ON egresos(fecha_egreso DESC)",

		// Reference lists for the creation dialogs
		"CREATE INDEX IF NOT EXISTS idx_usuarios_status ON usuarios(status)",
		"CREATE INDEX IF NOT EXISTS idx_servicios_status ON servicios(status)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}
