package storage

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hoopstats/fantasy-sim/internal/logger"
)

// Store wraps the database handle and exposes the repositories the
// simulator needs.
type Store struct {
	db *gorm.DB
}

type ConnectionConfig struct {
	DatabaseURL     string
	IsDevelopment   bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Open connects with sensible pool defaults for a batch tool.
func Open(databaseURL string, isDevelopment bool) (*Store, error) {
	return OpenWithConfig(ConnectionConfig{
		DatabaseURL:     databaseURL,
		IsDevelopment:   isDevelopment,
		MaxIdleConns:    2,
		MaxOpenConns:    10,
		ConnMaxLifetime: time.Hour,
	})
}

func OpenWithConfig(config ConnectionConfig) (*Store, error) {
	logLevel := gormlogger.Error
	if config.IsDevelopment {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.WithComponent("database").WithFields(logrus.Fields{
		"max_idle_conns":    config.MaxIdleConns,
		"max_open_conns":    config.MaxOpenConns,
		"conn_max_lifetime": config.ConnMaxLifetime,
	}).Debug("Database connection established")

	return &Store{db: db}, nil
}

// Migrate creates or updates the schema for all models.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&Player{},
		&GameLog{},
		&EloRating{},
		&PlayerSeasonValue{},
		&SimulationInfo{},
	)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
