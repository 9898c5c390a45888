package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ksym/mikanz/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "inspect configuration",
	Long:  `inspect configuration`,
}

// configListCmd prints the effective configuration after defaults, file and
// environment are merged
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "print the effective configuration",
	Long:  `print the effective configuration`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatalf("failed to read configurations: %v", err)
		}

		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("failed to render configuration: %v", err)
		}

		fmt.Println(string(b))
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
