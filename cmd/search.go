package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ksym/mikanz/config"
	"github.com/ksym/mikanz/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var searchQuery string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search the tracker for series",
	Long:  `search the tracker for series`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		c, err := newMikanClient(cfg)
		if err != nil {
			log.Fatalf("failed to create tracker client: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		ctx = logger.WithCtx(ctx, logger.Get())

		results, err := c.Search(ctx, searchQuery)
		if err != nil {
			log.Fatalf("failed to search: %v", err)
		}

		if len(results) == 0 {
			log.Fatal("no results found")
		}

		for _, series := range results {
			fmt.Printf("%s\t%s\n", series.ID, series.Name)
		}
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "a keyword to search series for")
	_ = searchCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(searchCmd)
}
