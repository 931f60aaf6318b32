// Package storage persists finished runs to PostgreSQL. Persistence is
// an optional sink: a run that cannot be stored is still exported and
// reported.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/oddsweep/oddsweep/internal/pkg/config"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(cfg *config.PostgresConfig) (*Postgres, error) {
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

	s := &Postgres{db: db}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("postgres storage initialized")
	return s, nil
}

func (s *Postgres) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		id VARCHAR(64) NOT NULL,
		run_id VARCHAR(36) NOT NULL,
		league VARCHAR(20) NOT NULL,
		away_team VARCHAR(10) NOT NULL,
		home_team VARCHAR(10) NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		active BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (id, run_id)
	);

	CREATE TABLE IF NOT EXISTS books (
		id SERIAL PRIMARY KEY,
		run_id VARCHAR(36) NOT NULL,
		event_id VARCHAR(64) NOT NULL,
		book_name VARCHAR(50) NOT NULL,
		last_update TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS picks (
		id SERIAL PRIMARY KEY,
		book_id INTEGER NOT NULL REFERENCES books(id),
		market VARCHAR(50) NOT NULL,
		team VARCHAR(10),
		line DOUBLE PRECISION,
		odds INTEGER NOT NULL,
		outcome VARCHAR(20),
		player VARCHAR(100)
	);

	CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id);
	CREATE INDEX IF NOT EXISTS idx_books_event ON books(run_id, event_id);
	CREATE INDEX IF NOT EXISTS idx_picks_book ON picks(book_id);
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// SaveRun writes a whole run in one transaction, so consumers never see
// a half-stored run.
func (s *Postgres) SaveRun(ctx context.Context, runID string, events []*models.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, ev := range events {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events (id, run_id, league, away_team, home_team, start_time, active)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			ev.ID, runID, ev.League, ev.AwayTeam, ev.HomeTeam, ev.StartTime, ev.Active,
		); err != nil {
			return fmt.Errorf("failed to insert event %s: %w", ev.ID, err)
		}

		for _, book := range ev.Books {
			var bookID int
			if err := tx.QueryRowContext(ctx,
				`INSERT INTO books (run_id, event_id, book_name, last_update)
				 VALUES ($1, $2, $3, $4) RETURNING id`,
				runID, ev.ID, book.BookName, book.LastUpdate,
			).Scan(&bookID); err != nil {
				return fmt.Errorf("failed to insert book %s: %w", book.BookName, err)
			}

			for _, p := range book.Picks {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO picks (book_id, market, team, line, odds, outcome, player)
					 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					bookID, p.Market, nullString(p.Team), p.Line, p.Odds, nullString(p.Outcome), nullString(p.Player),
				); err != nil {
					return fmt.Errorf("failed to insert pick: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", runID, err)
	}
	slog.Info("run stored", "run", runID, "events", len(events))
	return nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
