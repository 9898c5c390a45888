// Package mikan scrapes the Mikan tracker site: the weekly calendar, series
// detail pages with their magnet links, and keyword search results.
package mikan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	mhttp "github.com/ksym/mikanz/pkg/http"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/media"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://mikanime.tv"
	// Poster assets are served from the original origin regardless of which
	// mirror the pages were fetched from.
	DefaultImageBaseURL = "https://mikanani.me"

	defaultRequestTimeout = 30 * time.Second
)

type Client struct {
	http            mhttp.HTTPClient
	baseURL         *url.URL
	imageBaseURL    *url.URL
	imageProxy      string
	collectAllLinks bool
	timeout         time.Duration
}

type ClientOption func(*Client)

// WithHTTPClient sets the http client used for page fetches
func WithHTTPClient(client mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

// WithImageProxy routes normalized poster URLs through a proxy endpoint
func WithImageProxy(proxy string) ClientOption {
	return func(c *Client) {
		c.imageProxy = proxy
	}
}

// WithImageBaseURL overrides the canonical image origin
func WithImageBaseURL(base *url.URL) ClientOption {
	return func(c *Client) {
		c.imageBaseURL = base
	}
}

// WithCollectAllLinks keeps every download link found for an episode number
// instead of the first one seen
func WithCollectAllLinks(collect bool) ClientOption {
	return func(c *Client) {
		c.collectAllLinks = collect
	}
}

// WithRequestTimeout bounds each page fetch
func WithRequestTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a tracker client for the given base URL
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("mikan base url is empty")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mikan base url: %w", err)
	}

	imgBase, _ := url.Parse(DefaultImageBaseURL)
	c := &Client{
		http:         mhttp.NewRateLimitedHTTPClient(),
		baseURL:      base,
		imageBaseURL: imgBase,
		timeout:      defaultRequestTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Calendar fetches the landing page and returns the weekly airing calendar,
// sorted ascending by weekday.
func (c *Client) Calendar(ctx context.Context) ([]media.CalendarDay, error) {
	doc, err := c.fetch(ctx, c.baseURL.String())
	if err != nil {
		return nil, err
	}
	return c.parseCalendar(ctx, doc), nil
}

// SeriesDetail fetches a series page and returns its Bangumi cross-reference
// id together with the download links found, keyed by episode number.
func (c *Client) SeriesDetail(ctx context.Context, id string) (*SeriesDetail, error) {
	u := c.baseURL.JoinPath("Home", "Bangumi", id)
	doc, err := c.fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}
	return c.parseSeriesDetail(ctx, doc)
}

// Search fetches the search page for a keyword and returns matching series
// stubs. The page is complete; there is no pagination to follow.
func (c *Client) Search(ctx context.Context, keyword string) ([]media.Series, error) {
	u := c.baseURL.JoinPath("Home", "Search")
	q := u.Query()
	q.Set("searchstr", keyword)
	u.RawQuery = q.Encode()

	doc, err := c.fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}
	return c.parseSearch(ctx, doc), nil
}

// fetch retrieves a page and parses its DOM. Every fetch is bounded by the
// client timeout; a transport error, timeout or non-2xx status is an explicit
// failure, never an empty document.
func (c *Client) fetch(ctx context.Context, target string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", target, res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", target, err)
	}

	logger.FromCtx(ctx).Debug("fetched tracker page", zap.String("url", target))
	return doc, nil
}
