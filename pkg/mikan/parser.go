package mikan

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ksym/mikanz/pkg/episode"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/media"
	"go.uber.org/zap"
)

// SeriesDetail is the scraped half of a series page: the Bangumi subject id
// the metadata adapter needs, and the magnet links keyed by episode number.
type SeriesDetail struct {
	SubjectID string
	Links     map[episode.Number][]media.DownloadLink
}

var bangumiSubjectRegex = regexp.MustCompile(`bgm\.tv/subject/(\d+)`)

// parseCalendar extracts the weekday blocks of the landing page. Blocks with
// a weekday outside [0,6] are dropped; malformed listings are skipped without
// failing the page.
func (c *Client) parseCalendar(ctx context.Context, doc *goquery.Document) []media.CalendarDay {
	log := logger.FromCtx(ctx)

	days := make([]media.CalendarDay, 0, 7)
	doc.Find(".sk-bangumi").Each(func(_ int, block *goquery.Selection) {
		weekdayAttr, ok := block.Attr("data-dayofweek")
		if !ok {
			return
		}
		weekday, err := strconv.Atoi(weekdayAttr)
		if err != nil || weekday < 0 || weekday > 6 {
			log.Debug("skipping calendar block with out-of-range weekday", zap.String("weekday", weekdayAttr))
			return
		}

		items := make([]media.Series, 0)
		block.Find("li").Each(func(_ int, li *goquery.Selection) {
			id, _ := li.Find("span").First().Attr("data-bangumiid")
			name, _ := li.Find(".an-text").First().Attr("title")
			if id == "" || name == "" {
				return
			}

			poster, _ := li.Find("span").First().Attr("data-src")
			items = append(items, media.Series{
				ID:        id,
				Name:      name,
				PosterURL: c.imageURL(poster),
			})
		})

		days = append(days, media.CalendarDay{
			Weekday: weekday,
			Items:   items,
		})
	})

	sortCalendar(days)
	return days
}

// parseSeriesDetail extracts the Bangumi subject reference and the per-number
// magnet links of a series page. The subject link is required; the page is
// useless to the assembler without it.
func (c *Client) parseSeriesDetail(ctx context.Context, doc *goquery.Document) (*SeriesDetail, error) {
	log := logger.FromCtx(ctx)

	var subjectID string
	doc.Find(".w-other-c").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		if m := bangumiSubjectRegex.FindStringSubmatch(href); m != nil {
			subjectID = m[1]
			return false
		}
		return true
	})
	if subjectID == "" {
		return nil, fmt.Errorf("series page has no bangumi subject link")
	}

	links := make(map[episode.Number][]media.DownloadLink)
	doc.Find("a.magnet-link-wrap").Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Text())
		no, err := episode.ExtractOne(title)
		if err != nil {
			// batch releases and unparsable titles don't key a single episode
			log.Debug("skipping release with unresolved episode number", zap.String("title", title))
			return
		}

		magnet, ok := sel.Next().Attr("data-clipboard-text")
		if !ok || magnet == "" {
			return
		}

		if len(links[no]) > 0 && !c.collectAllLinks {
			// first seen wins
			return
		}
		links[no] = append(links[no], media.DownloadLink{
			Label: title,
			URL:   magnet,
		})
	})

	return &SeriesDetail{
		SubjectID: subjectID,
		Links:     links,
	}, nil
}

// parseSearch extracts series stubs from a search result page.
func (c *Client) parseSearch(ctx context.Context, doc *goquery.Document) []media.Series {
	items := make([]media.Series, 0)
	doc.Find(".an-ul li").Each(func(_ int, li *goquery.Selection) {
		href, _ := li.Find("a").First().Attr("href")
		segments := strings.Split(strings.TrimRight(href, "/"), "/")
		id := segments[len(segments)-1]

		name, _ := li.Find(".an-text").First().Attr("title")
		if id == "" || name == "" {
			return
		}

		poster, _ := li.Find("span").First().Attr("data-src")
		items = append(items, media.Series{
			ID:        id,
			Name:      name,
			PosterURL: c.imageURL(poster),
		})
	})

	return items
}

func sortCalendar(days []media.CalendarDay) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Weekday < days[j].Weekday
	})
}
