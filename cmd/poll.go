package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ksym/mikanz/config"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/manager"
	"github.com/ksym/mikanz/pkg/media"
	"github.com/ksym/mikanz/pkg/storage/sqlite"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// pollCmd represents the poll command
var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "run one feed polling cycle over every subscription",
	Long:  `run one feed polling cycle over every subscription`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid configuration: %v", err)
		}

		subs := subscriptions(cfg)
		if len(subs) == 0 {
			log.Fatal("no subscriptions configured")
		}

		mikanClient, err := newMikanClient(cfg)
		if err != nil {
			log.Fatalf("failed to create tracker client: %v", err)
		}

		bangumiClient, err := newBangumiClient(cfg)
		if err != nil {
			log.Fatalf("failed to create metadata client: %v", err)
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatalf("failed to create storage connection: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
		defer cancel()
		ctx = logger.WithCtx(ctx, logger.Get())

		mgr := manager.New(mikanClient, bangumiClient, store)
		if err := mgr.Init(ctx); err != nil {
			log.Fatalf("failed to init episode store: %v", err)
		}

		poller, err := manager.NewPoller(cfg.Mikan.BaseURL, subs, mgr.FeedValidator(), store,
			manager.WithDescriptorHandler(func(_ context.Context, d media.Descriptor) error {
				fmt.Printf("accepted %s episode %s: %s\n", d.SeriesName, d.EpisodeNumber, d.EpisodeTitle)
				return nil
			}))
		if err != nil {
			log.Fatalf("failed to create feed poller: %v", err)
		}

		if err := poller.PollOnce(ctx); err != nil {
			log.Fatalf("poll failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(pollCmd)
}
