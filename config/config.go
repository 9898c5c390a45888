package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/spf13/viper"
)

type Config struct {
	Mikan   Mikan   `json:"mikan" yaml:"mikan" mapstructure:"mikan"`
	Bangumi Bangumi `json:"bangumi" yaml:"bangumi" mapstructure:"bangumi"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Poller  Poller  `json:"poller" yaml:"poller" mapstructure:"poller"`
}

type Mikan struct {
	BaseURL         string        `json:"baseUrl" yaml:"baseUrl" mapstructure:"baseUrl" validate:"required,url"`
	ImageProxy      string        `json:"imageProxy" yaml:"imageProxy" mapstructure:"imageProxy" validate:"omitempty,url"`
	CollectAllLinks bool          `json:"collectAllLinks" yaml:"collectAllLinks" mapstructure:"collectAllLinks"`
	BaseBackoff     time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries      int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Bangumi struct {
	BaseURL   string `json:"baseUrl" yaml:"baseUrl" mapstructure:"baseUrl" validate:"required,url"`
	UserAgent string `json:"userAgent" yaml:"userAgent" mapstructure:"userAgent"`
}

// Storage configuration is for the sqlite episode store only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=1,lte=65535"`
}

// Poller houses the feed polling schedule and the subscribed series
type Poller struct {
	Interval      time.Duration  `json:"interval" yaml:"interval" mapstructure:"interval"`
	Subscriptions []Subscription `json:"subscriptions" yaml:"subscriptions" mapstructure:"subscriptions" validate:"dive"`
}

// Subscription is one series feed to poll. The attached metadata travels with
// every feed entry; nothing is inferred from entry titles beyond the episode
// number.
type Subscription struct {
	ID      string   `json:"id" yaml:"id" mapstructure:"id" validate:"required"`
	Name    string   `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Season  *string  `json:"season" yaml:"season" mapstructure:"season"`
	Include []string `json:"include" yaml:"include" mapstructure:"include"`
	Exclude []string `json:"exclude" yaml:"exclude" mapstructure:"exclude"`
}

// SeriesMeta converts the subscription into the metadata attached to its
// feed entries.
func (s Subscription) SeriesMeta() media.SeriesMeta {
	return media.SeriesMeta{
		ID:      s.ID,
		Name:    s.Name,
		Season:  s.Season,
		Include: s.Include,
		Exclude: s.Exclude,
	}
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate rejects a configuration that cannot produce working clients, such
// as a missing or non-URL tracker base.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
