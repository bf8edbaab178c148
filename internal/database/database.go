package database

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dipadubank/internal/config"
	"dipadubank/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// mysqlUUIDColumn replaces the uuid column type, which MySQL does not have.
const mysqlUUIDColumn = "char(36)"

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// Models lists every table managed by the service.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.UserProfile{},
		&models.Company{},
		&models.BankAccount{},
		&models.TransactionHistory{},
		&models.CryptoWallet{},
		&models.CryptoTransaction{},
		&models.AuditLog{},
	}
}

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres", "":
		return postgres.Open(cfg.DSN()), nil
	case "mysql":
		return mysql.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dial, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	if cfg.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	if db.DB.Dialector.Name() == "mysql" {
		if err := declareUUIDColumns(db.DB, mysqlUUIDColumn, Models()...); err != nil {
			return err
		}
	}
	return db.DB.AutoMigrate(Models()...)
}

// declareUUIDColumns rewrites the uuid column type of every field of the given models
// in gorm's schema cache, so AutoMigrate emits columnType instead.
func declareUUIDColumns(db *gorm.DB, columnType string, models ...interface{}) error {
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("failed to parse %T: %w", model, err)
		}
		for _, field := range stmt.Schema.Fields {
			if strings.EqualFold(string(field.DataType), "uuid") {
				field.DataType = schema.DataType(columnType)
			}
		}
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Initialize opens the database and brings the schema up to date. Postgres uses the SQL
// migrations when AUTO_MIGRATE is enabled, everything else falls back to GORM AutoMigrate.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "postgres" {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		applied, err := RunMigrationsIfEnabled(sqlDB)
		if err != nil {
			slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)
		} else if applied {
			slog.Info("Database initialized from SQL migrations")
			return db, nil
		}
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("Database initialized", "driver", cfg.Database.Driver)
	return db, nil
}
