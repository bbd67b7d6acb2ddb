package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"weezsync/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Repository is the persistence gateway. Connections come from a small
// bounded pool and are only held for the duration of a single statement,
// never across a network round trip.
type Repository struct {
	logger *slog.Logger
	cfg    *config.Config
	DB     *sqlx.DB
}

// New connects to the database and returns the repository. Panics when the
// database is unreachable; the service cannot run without its store.
func New(logger *slog.Logger, cfg *config.Config) *Repository {
	op := "repository.New()"
	log := logger.With(slog.String("op", op))

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBConfig.Host,
		cfg.DBConfig.Port,
		cfg.DBConfig.User,
		cfg.DBConfig.Password,
		cfg.DBConfig.Name,
	)

	db := sqlx.MustConnect("postgres", dsn)
	db.SetMaxOpenConns(cfg.DBConfig.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DBConfig.MaxOpenConns)

	log.Info("connected to database",
		slog.String("host", cfg.DBConfig.Host),
		slog.String("name", cfg.DBConfig.Name),
		slog.Int("maxOpenConns", cfg.DBConfig.MaxOpenConns),
	)

	return &Repository{
		logger: logger,
		cfg:    cfg,
		DB:     db,
	}
}

func (r *Repository) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit repository: %w", ctx.Err())
	default:
		return r.DB.Close()
	}
}
