package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ksym/mikanz/config"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/manager"
	"github.com/ksym/mikanz/pkg/pagination"
	"github.com/ksym/mikanz/pkg/storage/sqlite"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seriesPage int

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:        "series",
	Short:      "show a series with its episodes and download links",
	Long:       `show a series with its episodes and download links`,
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"tracker series id"},
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
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

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		ctx = logger.WithCtx(ctx, logger.Get())

		mgr := manager.New(mikanClient, bangumiClient, store)

		id := args[0]
		series, err := mgr.GetSeries(ctx, id)
		if err != nil {
			log.Fatalf("failed to fetch series: %v", err)
		}

		fmt.Printf("%s (%s)\n", series.Name, series.ID)
		if series.PubAt != nil {
			fmt.Printf("aired %s\n", humanize.Time(*series.PubAt))
		}
		if series.Description != "" {
			fmt.Println(series.Description)
		}

		episodes, meta, err := mgr.ListEpisodes(ctx, id, pagination.Params{Page: seriesPage})
		if err != nil {
			log.Fatalf("failed to list episodes: %v", err)
		}

		for _, ep := range episodes {
			airing := ""
			if ep.PubAt != nil {
				airing = humanize.Time(*ep.PubAt)
			}
			fmt.Printf("%s\t%s\t%s\n", ep.Number, ep.Title, airing)
			for _, link := range ep.DownloadLinks {
				fmt.Printf("    %s\n", link.URL)
			}
		}

		fmt.Printf("page %d of %d (%d episodes)\n", meta.Page, meta.TotalPages, meta.TotalItems)
	},
}

func init() {
	seriesCmd.Flags().IntVar(&seriesPage, "page", 1, "episode list page")

	rootCmd.AddCommand(seriesCmd)
}
