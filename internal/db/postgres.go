package db

import (
  "fmt"
  "strings"
  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
  "github.com/neuroscale/neuroscale-site/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

// NewPostgresService connects to Postgres by default. DB_DRIVER=sqlite
// switches to a local file database for development.
func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "postgres", log))
  if driver == "sqlite" {
    path := utils.GetEnv("SQLITE_PATH", "neuroscale.db", log)
    log.Info("Connecting to sqlite...", "path", path)
    gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
    if err != nil {
      return nil, fmt.Errorf("Failed to connect to sqlite: %w", err)
    }
    return &PostgresService{db: gdb, log: serviceLog}, nil
  }

  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "neuroscale", log)

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    log.Error("Failed to enable uuid-ossp extension", "error", err)
    return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
  }

  return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating content tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.Client{},
    &types.Title{},
    &types.Document{},
    &types.Contact{},
    &types.About{},
    &types.Statistic{},
    &types.Possibilitie{},
    &types.PossibilitiePoint{},
    &types.Stage{},
    &types.StagePoint{},
    &types.Case{},
    &types.Faq{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for content tables", "error", err)
    return err
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
