package database

import (
	"fmt"

	"stylefeed/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// gormConfig enables dialect error translation so unique violations surface
// as gorm.ErrDuplicatedKey instead of raw driver errors; the usecase layer's
// conflict handling depends on it.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
