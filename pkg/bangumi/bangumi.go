// Package bangumi adapts the Bangumi metadata API into canonical series and
// episode records.
package bangumi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ksym/mikanz/pkg/episode"
	mhttp "github.com/ksym/mikanz/pkg/http"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/ksym/mikanz/pkg/pagination"
)

const (
	DefaultBaseURL   = "https://api.bgm.tv"
	defaultUserAgent = "ksym/mikanz"

	// the API caps episode pages at 100 entries
	defaultPageSize = 100

	defaultRequestTimeout = 30 * time.Second
)

type Client struct {
	http      mhttp.HTTPClient
	baseURL   *url.URL
	userAgent string
	timeout   time.Duration
}

type ClientOption func(*Client)

// WithHTTPClient sets the http client used for API calls
func WithHTTPClient(client mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

// WithUserAgent overrides the User-Agent sent to the API
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRequestTimeout bounds each API call
func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a metadata API client
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("bangumi base url is empty")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bangumi base url: %w", err)
	}

	c := &Client{
		http:      mhttp.NewRateLimitedHTTPClient(),
		baseURL:   base,
		userAgent: defaultUserAgent,
		timeout:   defaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// subject is the API shape of a subject detail response
type subject struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	NameCN  string `json:"name_cn"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Images  struct {
		Common string `json:"common"`
	} `json:"images"`
	TotalEpisodes int `json:"total_episodes"`
	Tags          []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

// episodeItem is the API shape of one entry of a paginated episode list
type episodeItem struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	NameCN  string  `json:"name_cn"`
	Ep      float64 `json:"ep"`
	Airdate string  `json:"airdate"`
}

type episodesResponse struct {
	Data  []episodeItem `json:"data"`
	Total int           `json:"total"`
}

// Subject fetches a subject detail and converts it to a Series record. The
// localized name is preferred when present. The caller owns the tracker-side
// series id; the returned record carries the subject id.
func (c *Client) Subject(ctx context.Context, id string) (*media.Series, error) {
	u := c.baseURL.JoinPath("v0", "subjects", id)

	var item subject
	if err := c.get(ctx, u.String(), &item); err != nil {
		return nil, err
	}

	name := item.NameCN
	if name == "" {
		name = item.Name
	}

	tags := make([]string, 0, len(item.Tags))
	for _, tag := range item.Tags {
		tags = append(tags, tag.Name)
	}

	return &media.Series{
		ID:          strconv.Itoa(item.ID),
		Name:        name,
		Description: item.Summary,
		PosterURL:   item.Images.Common,
		Tags:        tags,
		Count:       item.TotalEpisodes,
		PubAt:       parseAirdate(item.Date),
	}, nil
}

// Episodes fetches one page of a subject's episode list. Numbers are padded
// to at least two digits; entries with an unparsable airdate keep a nil
// publish time rather than a zero one.
func (c *Client) Episodes(ctx context.Context, subjectID string, params pagination.Params) ([]media.Episode, pagination.Meta, error) {
	if params.PageSize == 0 {
		params.PageSize = defaultPageSize
	}
	if params.Page == 0 {
		params.Page = 1
	}
	offset, limit := params.CalculateOffsetLimit()

	u := c.baseURL.JoinPath("v0", "episodes")
	q := u.Query()
	q.Set("subject_id", subjectID)
	q.Set("type", "0")
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var result episodesResponse
	if err := c.get(ctx, u.String(), &result); err != nil {
		return nil, pagination.Meta{}, err
	}

	episodes := make([]media.Episode, 0, len(result.Data))
	for _, item := range result.Data {
		title := item.NameCN
		if title == "" {
			title = item.Name
		}

		episodes = append(episodes, media.Episode{
			Title:  title,
			Number: episode.Format(strconv.FormatFloat(item.Ep, 'f', -1, 64)),
			PubAt:  parseAirdate(item.Airdate),
		})
	}

	return episodes, params.BuildMeta(result.Total), nil
}

// get performs one bounded API call and decodes the JSON body.
func (c *Client) get(ctx context.Context, target string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", target, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %s", target, res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, out)
}

func parseAirdate(date string) *time.Time {
	if date == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	return &t
}
