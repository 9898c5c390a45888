package manager

import (
	"testing"
	"time"

	"github.com/ksym/mikanz/pkg/episode"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDescriptor(t *testing.T) {
	season := "1"
	published := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	file := media.DownloadedFile{
		Name: "[Group] Show - 07 [1080p].mkv",
		Path: "/downloads/[Group] Show - 07 [1080p].mkv",
		Size: 1 << 30,
	}

	d, err := BuildDescriptor(media.FeedEntry{
		Title:     "[Group] Show - 07 [1080p]",
		Published: &published,
		Meta:      media.SeriesMeta{ID: "42", Name: "Show", Season: &season},
	}, file)
	require.NoError(t, err)

	assert.Equal(t, "Show", d.SeriesName)
	assert.Equal(t, &season, d.SeriesSeason)
	assert.Equal(t, "[Group] Show - 07 [1080p].mkv", d.EpisodeTitle, "the file name titles the episode")
	assert.Equal(t, episode.Number("07"), d.EpisodeNumber)
	assert.Equal(t, &published, d.PubAt)
	assert.Equal(t, file, d.File)
	assert.True(t, d.Overwrite, "a descriptor always supersedes placeholder records")
}

func TestBuildDescriptor_NoPublishTime(t *testing.T) {
	d, err := BuildDescriptor(media.FeedEntry{
		Title: "[Group] Show - 07 [1080p]",
		Meta:  media.SeriesMeta{ID: "42", Name: "Show"},
	}, media.DownloadedFile{})
	require.NoError(t, err)
	assert.Nil(t, d.PubAt)
	assert.Nil(t, d.SeriesSeason)
	assert.Equal(t, "[Group] Show - 07 [1080p]", d.EpisodeTitle, "the feed title stands in when no file is matched")
}

func TestBuildDescriptor_UnresolvedTitle(t *testing.T) {
	_, err := BuildDescriptor(media.FeedEntry{
		Title: "[Group] Show Special Preview [1080p]",
		Meta:  media.SeriesMeta{ID: "42", Name: "Show"},
	}, media.DownloadedFile{})
	assert.Error(t, err)
}
