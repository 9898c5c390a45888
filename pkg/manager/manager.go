// Package manager orchestrates the tracker scraper, the metadata API and the
// episode store: it assembles browsable series views on the read path and
// decides feed entries on the write path.
package manager

import (
	"context"
	"fmt"

	"github.com/ksym/mikanz/pkg/cache"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/ksym/mikanz/pkg/mikan"
	"github.com/ksym/mikanz/pkg/pagination"
	"github.com/ksym/mikanz/pkg/storage"
)

// TrackerClient is the scraped tracker surface the manager consumes.
type TrackerClient interface {
	Calendar(ctx context.Context) ([]media.CalendarDay, error)
	SeriesDetail(ctx context.Context, id string) (*mikan.SeriesDetail, error)
	Search(ctx context.Context, keyword string) ([]media.Series, error)
}

// MetadataClient is the metadata API surface the manager consumes.
type MetadataClient interface {
	Subject(ctx context.Context, id string) (*media.Series, error)
	Episodes(ctx context.Context, subjectID string, params pagination.Params) ([]media.Episode, pagination.Meta, error)
}

type Manager struct {
	tracker   TrackerClient
	metadata  MetadataClient
	store     storage.Storage
	seen      *cache.SeenCache
	subjects  *cache.Cache[string, string]
	validator *Validator
}

func New(tracker TrackerClient, metadata MetadataClient, store storage.Storage) *Manager {
	seen := cache.NewSeenCache()
	return &Manager{
		tracker:   tracker,
		metadata:  metadata,
		store:     store,
		seen:      seen,
		subjects:  cache.New[string, string](),
		validator: NewValidator(seen, NewResolver(store)),
	}
}

// Init prepares the episode store.
func (m *Manager) Init(ctx context.Context) error {
	return m.store.Init(ctx)
}

// GetCalendar returns the weekly airing calendar, sorted by weekday.
func (m *Manager) GetCalendar(ctx context.Context) ([]media.CalendarDay, error) {
	return m.tracker.Calendar(ctx)
}

// SearchSeries returns tracker series stubs matching a keyword.
func (m *Manager) SearchSeries(ctx context.Context, keyword string) ([]media.Series, error) {
	return m.tracker.Search(ctx, keyword)
}

// GetSeries assembles a full series view: the tracker page supplies the
// cross-reference to the metadata subject, the subject supplies the rich
// record. The cross-reference is stable, so it is memoized per tracker id and
// a repeat lookup skips the scrape. The returned ID stays the tracker-side id
// the caller asked about.
func (m *Manager) GetSeries(ctx context.Context, id string) (*media.Series, error) {
	subjectID, err := m.subjectID(ctx, id)
	if err != nil {
		return nil, err
	}

	series, err := m.metadata.Subject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("fetch subject for series %s: %w", id, err)
	}

	series.ID = id
	return series, nil
}

// subjectID resolves a tracker series id to its metadata subject id, scraping
// the tracker page only on the first lookup.
func (m *Manager) subjectID(ctx context.Context, id string) (string, error) {
	if subjectID, ok := m.subjects.Get(id); ok {
		return subjectID, nil
	}

	detail, err := m.tracker.SeriesDetail(ctx, id)
	if err != nil {
		return "", err
	}

	m.subjects.Set(id, detail.SubjectID)
	return detail.SubjectID, nil
}

// ListEpisodes returns one page of a series' episode list with the download
// links scraped from the tracker joined on by padded episode number. The
// scrape always runs here because the links come from the tracker page, but
// it refreshes the subject memo as a side effect.
func (m *Manager) ListEpisodes(ctx context.Context, id string, params pagination.Params) ([]media.Episode, pagination.Meta, error) {
	detail, err := m.tracker.SeriesDetail(ctx, id)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	m.subjects.Set(id, detail.SubjectID)

	episodes, meta, err := m.metadata.Episodes(ctx, detail.SubjectID, params)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("fetch episodes for series %s: %w", id, err)
	}

	for i := range episodes {
		episodes[i].DownloadLinks = detail.Links[episodes[i].Number]
	}

	return episodes, meta, nil
}

// FeedValidator exposes the validator sharing this manager's dedup cache, so
// a poller's decisions honor ClearSeenCache.
func (m *Manager) FeedValidator() *Validator {
	return m.validator
}

// ValidateEntry decides one feed entry.
func (m *Manager) ValidateEntry(ctx context.Context, entry media.FeedEntry) (Result, error) {
	return m.validator.Validate(ctx, entry)
}

// ClearSeenCache drops the dedup cache; the episode store stays authoritative.
func (m *Manager) ClearSeenCache() {
	m.seen.Clear()
}
