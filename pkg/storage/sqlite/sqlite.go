// Package sqlite implements the episode store on an embedded sqlite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/storage"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

type SQLite struct {
	db *sqlx.DB
}

// New opens (and creates if needed) the database at filePath.
func New(filePath string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", filePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// modernc sqlite serializes writes itself but a single pooled connection
	// avoids SQLITE_BUSY under concurrent upserts.
	db.SetMaxOpenConns(1)
	return &SQLite{db: db}, nil
}

// Init runs any pending schema migrations.
func (s *SQLite) Init(ctx context.Context) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(s.db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.FromCtx(ctx).Debug("episode store ready")
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) EnsureSeries(ctx context.Context, name string, season *string) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id, `
		INSERT INTO series (name, season) VALUES (?, ?)
		ON CONFLICT (name, season) DO UPDATE SET name = excluded.name
		RETURNING id`,
		name, seasonKey(season))
	if err != nil {
		return 0, fmt.Errorf("ensure series: %w", err)
	}
	return id, nil
}

func (s *SQLite) GetSeries(ctx context.Context, name string, season *string) (*storage.Series, error) {
	var series storage.Series
	err := s.db.GetContext(ctx, &series,
		`SELECT id, name, season, created_at FROM series WHERE name = ? AND season = ?`,
		name, seasonKey(season))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}
	return &series, nil
}

func (s *SQLite) EpisodeExists(ctx context.Context, seriesName string, season *string, number string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM episode e
			JOIN series s ON s.id = e.series_id
			WHERE s.name = ? AND e.number = ?`
	args := []any{seriesName, number}
	if season != nil {
		query += ` AND s.season = ?`
		args = append(args, *season)
	}
	query += `)`

	var exists bool
	if err := s.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("check episode: %w", err)
	}
	return exists, nil
}

func (s *SQLite) SaveEpisode(ctx context.Context, ep storage.Episode) (int64, error) {
	seasonPtr := &ep.Season
	if ep.Season == "" {
		seasonPtr = nil
	}
	seriesID, err := s.EnsureSeries(ctx, ep.SeriesName, seasonPtr)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.db.GetContext(ctx, &id, `
		INSERT INTO episode (series_id, number, title, pub_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (series_id, number) DO UPDATE SET
			title = excluded.title,
			pub_at = excluded.pub_at
		RETURNING id`,
		seriesID, ep.Number, ep.Title, ep.PubAt)
	if err != nil {
		return 0, fmt.Errorf("save episode: %w", err)
	}
	return id, nil
}

func (s *SQLite) GetEpisode(ctx context.Context, seriesName string, season *string, number string) (*storage.Episode, error) {
	query := `
		SELECT e.id, s.name AS series_name, s.season, e.number, e.title, e.pub_at, e.created_at
		FROM episode e
		JOIN series s ON s.id = e.series_id
		WHERE s.name = ? AND e.number = ?`
	args := []any{seriesName, number}
	if season != nil {
		query += ` AND s.season = ?`
		args = append(args, *season)
	}

	var ep storage.Episode
	err := s.db.GetContext(ctx, &ep, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get episode: %w", err)
	}
	return &ep, nil
}

func (s *SQLite) ListEpisodes(ctx context.Context, seriesName string, season *string) ([]*storage.Episode, error) {
	query := `
		SELECT e.id, s.name AS series_name, s.season, e.number, e.title, e.pub_at, e.created_at
		FROM episode e
		JOIN series s ON s.id = e.series_id
		WHERE s.name = ?`
	args := []any{seriesName}
	if season != nil {
		query += ` AND s.season = ?`
		args = append(args, *season)
	}
	query += ` ORDER BY CAST(e.number AS REAL)`

	var episodes []*storage.Episode
	if err := s.db.SelectContext(ctx, &episodes, query, args...); err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	return episodes, nil
}

// seasonKey maps an absent season onto the empty string so that the
// (name, season) uniqueness constraint holds; sqlite treats NULLs as distinct.
func seasonKey(season *string) string {
	if season == nil {
		return ""
	}
	return *season
}
