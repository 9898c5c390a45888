package mikan

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/ksym/mikanz/pkg/episode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDocument(t *testing.T, path string) *goquery.Document {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func newTestClient(t *testing.T, opts ...ClientOption) *Client {
	t.Helper()

	c, err := New(DefaultBaseURL, opts...)
	require.NoError(t, err)
	return c
}

func TestParseCalendar(t *testing.T) {
	c := newTestClient(t)
	doc := loadDocument(t, "testdata/calendar.html")

	days := c.parseCalendar(context.Background(), doc)

	weekdays := make([]int, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, d.Weekday)
	}
	// the -1 block is dropped entirely, the rest sorted ascending
	assert.Equal(t, []int{0, 3, 5, 6}, weekdays)

	wednesday := days[1]
	require.Len(t, wednesday.Items, 2, "listing without a title is skipped")
	assert.Equal(t, "3344", wednesday.Items[0].ID)
	assert.Equal(t, "Sousou no Frieren", wednesday.Items[0].Name)
	assert.Equal(t, DefaultImageBaseURL+"/images/Bangumi/202310/poster-frieren.jpg", wednesday.Items[0].PosterURL)

	snaps.MatchSnapshot(t, days)
}

func TestParseSeriesDetail(t *testing.T) {
	c := newTestClient(t)
	doc := loadDocument(t, "testdata/bangumi.html")

	detail, err := c.parseSeriesDetail(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, "400602", detail.SubjectID)

	// first seen link wins for a duplicated number; the batch release, the
	// unnumbered special, and the row without a magnet are all skipped
	require.Len(t, detail.Links, 2)

	ep01 := detail.Links[episode.Number("01")]
	require.Len(t, ep01, 1)
	assert.Equal(t, "magnet:?xt=urn:btih:aaa", ep01[0].URL)
	assert.Equal(t, "[Group] Sousou no Frieren - 01 [1080p]", ep01[0].Label)

	ep02 := detail.Links[episode.Number("02")]
	require.Len(t, ep02, 1)
	assert.Equal(t, "magnet:?xt=urn:btih:ccc", ep02[0].URL)
}

func TestParseSeriesDetail_CollectAllLinks(t *testing.T) {
	c := newTestClient(t, WithCollectAllLinks(true))
	doc := loadDocument(t, "testdata/bangumi.html")

	detail, err := c.parseSeriesDetail(context.Background(), doc)
	require.NoError(t, err)

	ep01 := detail.Links[episode.Number("01")]
	require.Len(t, ep01, 2)
	assert.Equal(t, "magnet:?xt=urn:btih:aaa", ep01[0].URL)
	assert.Equal(t, "magnet:?xt=urn:btih:bbb", ep01[1].URL)
}

func TestParseSeriesDetail_NoSubjectLink(t *testing.T) {
	c := newTestClient(t)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><p>nothing here</p></body></html>`))
	require.NoError(t, err)

	_, err = c.parseSeriesDetail(context.Background(), doc)
	assert.Error(t, err)
}

func TestParseSearch(t *testing.T) {
	c := newTestClient(t)
	doc := loadDocument(t, "testdata/search.html")

	items := c.parseSearch(context.Background(), doc)

	require.Len(t, items, 2, "listing without a title is skipped")
	assert.Equal(t, "3344", items[0].ID)
	assert.Equal(t, "Sousou no Frieren", items[0].Name)
	assert.Equal(t, "2233", items[1].ID)
	assert.Equal(t, "Sousou no Frieren Specials", items[1].Name)
	assert.Equal(t, DefaultImageBaseURL+"/images/Bangumi/202310/poster-frieren.jpg", items[0].PosterURL)
}
