// Package media holds the canonical domain objects shared by the tracker
// scraper, the metadata adapter and the feed validation pipeline.
package media

import (
	"time"

	"github.com/ksym/mikanz/pkg/episode"
)

// Series is a read-only projection of one show, assembled fresh per fetch.
// ID is provider-scoped (the tracker's bangumi id); identity for episode
// resolution is (Name, Season) since the episode store indexes on the
// human-facing identity.
type Series struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Season      *string    `json:"season,omitempty"`
	Description string     `json:"description,omitempty"`
	PosterURL   string     `json:"posterUrl,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Count       int        `json:"count,omitempty"`
	PubAt       *time.Time `json:"pubAt,omitempty"`
}

// DownloadLink is one retrieval option scraped for an episode, typically a
// magnet URI with its display label.
type DownloadLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Episode is one entry of a series' episode list. PubAt is nil when the
// source airdate could not be parsed.
type Episode struct {
	Title         string         `json:"title"`
	Number        episode.Number `json:"no"`
	PubAt         *time.Time     `json:"pubAt,omitempty"`
	DownloadLinks []DownloadLink `json:"downloadLinks,omitempty"`
}

// CalendarDay lists the series airing on one weekday, 0 through 6.
type CalendarDay struct {
	Weekday int      `json:"weekday"`
	Items   []Series `json:"items"`
}

// SeriesMeta is the provider metadata a feed subscription attaches to its
// entries. The validator never infers any of it from the entry itself.
type SeriesMeta struct {
	ID      string
	Name    string
	Season  *string
	Include []string
	Exclude []string
}

// FeedEntry is one item of a polled release feed. Title is the only field
// episode extraction reads; Published is nil when the feed item carried no
// parsable timestamp.
type FeedEntry struct {
	Title     string
	Published *time.Time
	Meta      SeriesMeta
}

// DownloadedFile describes a file matched to an accepted feed entry.
type DownloadedFile struct {
	Name string
	Path string
	Size int64
}

// Descriptor is the canonical record tying a downloaded file to its series
// and episode. Overwrite is always set: a later feed entry for the same
// episode number supersedes any placeholder record.
type Descriptor struct {
	SeriesName    string
	SeriesSeason  *string
	EpisodeTitle  string
	EpisodeNumber episode.Number
	PubAt         *time.Time
	File          DownloadedFile
	Overwrite     bool
}
