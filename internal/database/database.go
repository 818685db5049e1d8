package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projetomogo/api-mogo/internal/config"
)

// Conectar abre a conexão com o Postgres/PostGIS.
func Conectar(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("conectar no banco: %w", err)
	}

	// Extensão necessária para as colunas de geometria de Local e Rota
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return nil, fmt.Errorf("habilitar postgis: %w", err)
	}

	return db, nil
}

// Migrar roda o AutoMigrate para todos os modelos registrados.
func Migrar(db *gorm.DB, modelos ...interface{}) error {
	if err := db.AutoMigrate(modelos...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
