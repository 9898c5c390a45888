package manager

import (
	"context"
	"fmt"

	"github.com/ksym/mikanz/pkg/episode"
	"github.com/ksym/mikanz/pkg/storage"
)

// Resolver answers whether an episode is already present in the persisted
// store for a series identity. A store failure propagates; it is never
// reported as "does not exist", since treating an outage as a new episode
// risks duplicate downloads.
type Resolver struct {
	store storage.EpisodeStorage
}

func NewResolver(store storage.EpisodeStorage) *Resolver {
	return &Resolver{store: store}
}

func (r *Resolver) Exists(ctx context.Context, seriesName string, season *string, number episode.Number) (bool, error) {
	exists, err := r.store.EpisodeExists(ctx, seriesName, season, string(number))
	if err != nil {
		return false, fmt.Errorf("resolve episode %s of %q: %w", number, seriesName, err)
	}
	return exists, nil
}
