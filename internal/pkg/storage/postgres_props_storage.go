package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/config"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

// Ensure PostgresPropsStorage implements PropsStorage
var _ PropsStorage = (*PostgresPropsStorage)(nil)

// PropsStorage persists merged prop rows per run.
type PropsStorage interface {
	SaveRows(ctx context.Context, runAt time.Time, rows []models.PropRow) error
	Close() error
}

// PostgresPropsStorage stores merged prop rows in PostgreSQL.
type PostgresPropsStorage struct {
	db *sql.DB
}

// NewPostgresPropsStorage opens the connection and ensures the schema.
func NewPostgresPropsStorage(cfg *config.PostgresConfig) (*PostgresPropsStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &PostgresPropsStorage{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL props storage initialized")
	return s, nil
}

func (s *PostgresPropsStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS merged_props (
		id SERIAL PRIMARY KEY,
		run_at TIMESTAMP NOT NULL,
		fighter VARCHAR(200) NOT NULL,
		pp_line DECIMAL(10, 2),
		dk_line DECIMAL(10, 2),
		difference DECIMAL(10, 2),
		recommendation VARCHAR(10) NOT NULL DEFAULT '',
		going_distance_odds INTEGER,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE(run_at, fighter)
	);

	CREATE INDEX IF NOT EXISTS idx_merged_props_run_at ON merged_props(run_at DESC);
	CREATE INDEX IF NOT EXISTS idx_merged_props_fighter ON merged_props(fighter);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveRows inserts all rows of one run in a single transaction.
func (s *PostgresPropsStorage) SaveRows(ctx context.Context, runAt time.Time, rows []models.PropRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO merged_props (run_at, fighter, pp_line, dk_line, difference, recommendation, going_distance_odds)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (run_at, fighter) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx, runAt, row.Fighter,
			nullFloat(row.PPLine), nullFloat(row.DKLine), nullFloat(row.Difference),
			row.Recommendation, nullInt(row.GoingDistanceOdds))
		if err != nil {
			return fmt.Errorf("failed to insert row for %s: %w", row.Fighter, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	slog.Info("Saved merged props", "rows", len(rows), "run_at", runAt)
	return nil
}

func (s *PostgresPropsStorage) Close() error {
	return s.db.Close()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
