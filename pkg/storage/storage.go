// Package storage defines the persisted episode store consumed by the
// episode resolver and the descriptor consumer.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found in storage")

// Storage is the persisted series/episode store. Episode identity is the
// human-facing (series name, season) pair plus the padded episode number,
// not any provider-scoped id.
type Storage interface {
	Init(ctx context.Context) error
	SeriesStorage
	EpisodeStorage
}

type SeriesStorage interface {
	// EnsureSeries creates the series row if missing and returns its id.
	EnsureSeries(ctx context.Context, name string, season *string) (int64, error)
	GetSeries(ctx context.Context, name string, season *string) (*Series, error)
}

type EpisodeStorage interface {
	// EpisodeExists reports whether an episode is already known. A nil season
	// matches by name alone. A store failure is returned as an error, never
	// as "does not exist".
	EpisodeExists(ctx context.Context, seriesName string, season *string, number string) (bool, error)
	GetEpisode(ctx context.Context, seriesName string, season *string, number string) (*Episode, error)
	// SaveEpisode upserts on (series, number); a later save for the same
	// number replaces the earlier record.
	SaveEpisode(ctx context.Context, ep Episode) (int64, error)
	ListEpisodes(ctx context.Context, seriesName string, season *string) ([]*Episode, error)
}

type Series struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Season    string     `db:"season"`
	CreatedAt *time.Time `db:"created_at"`
}

type Episode struct {
	ID         int64      `db:"id"`
	SeriesName string     `db:"series_name"`
	Season     string     `db:"season"`
	Number     string     `db:"number"`
	Title      string     `db:"title"`
	PubAt      *time.Time `db:"pub_at"`
	CreatedAt  *time.Time `db:"created_at"`
}
