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

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "show the weekly airing calendar",
	Long:  `show the weekly airing calendar`,
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

		days, err := c.Calendar(ctx)
		if err != nil {
			log.Fatalf("failed to fetch calendar: %v", err)
		}

		for _, day := range days {
			fmt.Println(time.Weekday(day.Weekday).String())
			for _, item := range day.Items {
				fmt.Printf("  %s\t%s\n", item.ID, item.Name)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
