package manager

import (
	"fmt"

	"github.com/ksym/mikanz/pkg/episode"
	"github.com/ksym/mikanz/pkg/media"
)

// BuildDescriptor produces the canonical download record tying a validated
// feed entry and its matched file to a series episode. The episode number is
// extracted fresh from the title rather than reused from any earlier
// validation, keeping this a pure construction step.
func BuildDescriptor(entry media.FeedEntry, file media.DownloadedFile) (media.Descriptor, error) {
	number, err := episode.ExtractOne(entry.Title)
	if err != nil {
		return media.Descriptor{}, fmt.Errorf("build descriptor for %q: %w", entry.Title, err)
	}

	// the matched file names the episode; the feed title is the fallback
	// when no file is known yet
	title := file.Name
	if title == "" {
		title = entry.Title
	}

	return media.Descriptor{
		SeriesName:    entry.Meta.Name,
		SeriesSeason:  entry.Meta.Season,
		EpisodeTitle:  title,
		EpisodeNumber: number,
		PubAt:         entry.Published,
		File:          file,
		Overwrite:     true,
	}, nil
}
