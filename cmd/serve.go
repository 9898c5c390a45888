package cmd

import (
	"context"

	"github.com/ksym/mikanz/config"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/manager"
	"github.com/ksym/mikanz/pkg/storage/sqlite"
	"github.com/ksym/mikanz/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the api server and feed poller",
	Long:  `start the api server and feed poller`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}
		if err := cfg.Validate(); err != nil {
			log.Fatal("invalid configuration", zap.Error(err))
		}

		mikanClient, err := newMikanClient(cfg)
		if err != nil {
			log.Fatal("failed to create tracker client", zap.Error(err))
		}

		bangumiClient, err := newBangumiClient(cfg)
		if err != nil {
			log.Fatal("failed to create metadata client", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ctx = logger.WithCtx(ctx, log)

		mgr := manager.New(mikanClient, bangumiClient, store)
		if err := mgr.Init(ctx); err != nil {
			log.Fatal("failed to init episode store", zap.Error(err))
		}

		subs := subscriptions(cfg)
		if len(subs) > 0 {
			poller, err := manager.NewPoller(cfg.Mikan.BaseURL, subs, mgr.FeedValidator(), store,
				manager.WithPollInterval(cfg.Poller.Interval))
			if err != nil {
				log.Fatal("failed to create feed poller", zap.Error(err))
			}
			go func() {
				if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
					log.Error("feed poller stopped", zap.Error(err))
				}
			}()
		}

		srv := server.New(log, mgr)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
