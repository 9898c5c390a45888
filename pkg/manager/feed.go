package manager

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	mhttp "github.com/ksym/mikanz/pkg/http"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/ksym/mikanz/pkg/storage"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 15 * time.Minute
	defaultFetchTimeout = 30 * time.Second
)

// DescriptorHandler consumes the descriptor of an accepted feed entry,
// typically to hand it to a downloader.
type DescriptorHandler func(ctx context.Context, d media.Descriptor) error

// Poller fetches each subscription's release feed on an interval and runs
// every item through the validator. Accepted entries are persisted as
// placeholder episode records and handed to the descriptor handler.
type Poller struct {
	baseURL       *url.URL
	http          mhttp.HTTPClient
	parser        *gofeed.Parser
	validator     *Validator
	store         storage.EpisodeStorage
	subscriptions []media.SeriesMeta
	interval      time.Duration
	fetchTimeout  time.Duration
	handler       DescriptorHandler
}

type PollerOption func(*Poller)

// WithPollHTTPClient sets the http client used for feed fetches
func WithPollHTTPClient(client mhttp.HTTPClient) PollerOption {
	return func(p *Poller) {
		p.http = client
	}
}

// WithPollInterval sets the wait between polling cycles
func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithFetchTimeout bounds each feed fetch; a hung feed cannot stall the
// poll loop past it
func WithFetchTimeout(timeout time.Duration) PollerOption {
	return func(p *Poller) {
		if timeout > 0 {
			p.fetchTimeout = timeout
		}
	}
}

// WithDescriptorHandler sets the consumer for accepted entries
func WithDescriptorHandler(handler DescriptorHandler) PollerOption {
	return func(p *Poller) {
		p.handler = handler
	}
}

// NewPoller creates a feed poller over the tracker's RSS endpoint.
func NewPoller(baseURL string, subscriptions []media.SeriesMeta, validator *Validator, store storage.EpisodeStorage, opts ...PollerOption) (*Poller, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("feed base url is empty")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed base url: %w", err)
	}

	p := &Poller{
		baseURL:       base,
		http:          mhttp.NewRateLimitedHTTPClient(),
		parser:        gofeed.NewParser(),
		validator:     validator,
		store:         store,
		subscriptions: subscriptions,
		interval:      defaultPollInterval,
		fetchTimeout:  defaultFetchTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Run polls immediately and then on every interval tick until the context is
// cancelled. Per-cycle failures are logged, not fatal.
func (p *Poller) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	log.Info("starting feed poller",
		zap.Int("subscriptions", len(p.subscriptions)),
		zap.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		runCtx := logger.WithCtx(ctx, logger.FromCtx(ctx).With(zap.String("run", uuid.NewString())))
		if err := p.PollOnce(runCtx); err != nil {
			log.Error("feed poll cycle failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// PollOnce runs one polling cycle over every subscription. A failing
// subscription is logged and skipped so one broken feed cannot starve the
// rest.
func (p *Poller) PollOnce(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	for _, sub := range p.subscriptions {
		if err := p.pollSubscription(ctx, sub); err != nil {
			log.Warn("subscription poll failed",
				zap.String("series", sub.Name),
				zap.Error(err))
		}
	}
	return nil
}

func (p *Poller) pollSubscription(ctx context.Context, sub media.SeriesMeta) error {
	ctx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	u := p.baseURL.JoinPath("RSS", "Bangumi")
	q := u.Query()
	q.Set("bangumiId", sub.ID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	res, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch feed %s: %w", u.String(), err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch feed %s: unexpected status %s", u.String(), res.Status)
	}

	feed, err := p.parser.Parse(res.Body)
	if err != nil {
		return fmt.Errorf("parse feed %s: %w", u.String(), err)
	}

	for _, item := range feed.Items {
		entry := media.FeedEntry{
			Title:     item.Title,
			Published: item.PublishedParsed,
			Meta:      sub,
		}
		if err := p.processEntry(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}

func (p *Poller) processEntry(ctx context.Context, entry media.FeedEntry) error {
	result, err := p.validator.Validate(ctx, entry)
	if err != nil {
		return err
	}
	if !result.Accepted() {
		return nil
	}

	descriptor, err := BuildDescriptor(entry, media.DownloadedFile{Name: entry.Title})
	if err != nil {
		return err
	}

	// The placeholder record makes the store authoritative across restarts;
	// the descriptor consumer later overwrites it with the real file details.
	_, err = p.store.SaveEpisode(ctx, storage.Episode{
		SeriesName: descriptor.SeriesName,
		Season:     seasonKey(descriptor.SeriesSeason),
		Number:     string(descriptor.EpisodeNumber),
		Title:      descriptor.EpisodeTitle,
		PubAt:      descriptor.PubAt,
	})
	if err != nil {
		return fmt.Errorf("persist episode %s of %q: %w", descriptor.EpisodeNumber, descriptor.SeriesName, err)
	}

	if p.handler != nil {
		return p.handler(ctx, descriptor)
	}
	return nil
}

func seasonKey(season *string) string {
	if season == nil {
		return ""
	}
	return *season
}
