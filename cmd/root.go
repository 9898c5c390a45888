package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mikanz",
	Short: "mikanz cli",
	Long:  `mikanz cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

const defaultPollInterval = time.Minute * 15

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MIKANZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("mikan.baseUrl", "https://mikanime.tv")
	viper.SetDefault("mikan.imageProxy", "")
	viper.SetDefault("mikan.collectAllLinks", false)

	viper.SetDefault("bangumi.baseUrl", "https://api.bgm.tv")
	viper.SetDefault("bangumi.userAgent", "")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "mikanz.sqlite")

	viper.SetDefault("poller.interval", defaultPollInterval)
}
