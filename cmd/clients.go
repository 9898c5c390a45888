package cmd

import (
	"github.com/ksym/mikanz/config"
	"github.com/ksym/mikanz/pkg/bangumi"
	mhttp "github.com/ksym/mikanz/pkg/http"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/ksym/mikanz/pkg/mikan"
)

func newMikanClient(cfg config.Config) (*mikan.Client, error) {
	httpOpts := []mhttp.ClientOption{}
	if cfg.Mikan.MaxRetries > 0 {
		httpOpts = append(httpOpts, mhttp.WithMaxRetries(cfg.Mikan.MaxRetries))
	}
	if cfg.Mikan.BaseBackoff > 0 {
		httpOpts = append(httpOpts, mhttp.WithBaseBackoff(cfg.Mikan.BaseBackoff))
	}

	opts := []mikan.ClientOption{
		mikan.WithHTTPClient(mhttp.NewRateLimitedHTTPClient(httpOpts...)),
		mikan.WithCollectAllLinks(cfg.Mikan.CollectAllLinks),
	}
	if cfg.Mikan.ImageProxy != "" {
		opts = append(opts, mikan.WithImageProxy(cfg.Mikan.ImageProxy))
	}

	return mikan.New(cfg.Mikan.BaseURL, opts...)
}

func newBangumiClient(cfg config.Config) (*bangumi.Client, error) {
	opts := []bangumi.ClientOption{}
	if cfg.Bangumi.UserAgent != "" {
		opts = append(opts, bangumi.WithUserAgent(cfg.Bangumi.UserAgent))
	}

	return bangumi.New(cfg.Bangumi.BaseURL, opts...)
}

func subscriptions(cfg config.Config) []media.SeriesMeta {
	subs := make([]media.SeriesMeta, 0, len(cfg.Poller.Subscriptions))
	for _, sub := range cfg.Poller.Subscriptions {
		subs = append(subs, sub.SeriesMeta())
	}
	return subs
}
