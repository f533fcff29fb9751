package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	logruslogger "leadsearch-api/infrastructure/logger/logrus"
	"leadsearch-api/pkg/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leadsearch",
	Short: "Search companies, people and news for lead research.",
	Long: `leadsearch queries Google Custom Search for companies, people profiles and news,
normalizes the results into scored rows and prints or exports them.

Credentials come from GOOGLE_API_KEY and GOOGLE_CSE_ID, or from the google_api_key and
google_cse_id keys of $HOME/.leadsearch.yaml.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.leadsearch.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "warn", "Set log level. Available: debug, info, warn, error")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("loglevel"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".leadsearch")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	viper.SetDefault("server", "")
	viper.SetDefault("cache_type", "memory")
}

// loadConfig layers viper values over the environment defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}

	if v := viper.GetString("google_api_key"); v != "" {
		cfg.Search.APIKey = v
	}
	if v := viper.GetString("google_cse_id"); v != "" {
		cfg.Search.EngineID = v
	}
	if v := viper.GetString("news_query_suffix"); v != "" {
		cfg.Search.NewsQuerySuffix = v
	}
	if v := viper.GetStringSlice("news_headers"); len(v) > 0 {
		cfg.Search.NewsHeaders = v
	}
	cfg.Cache.Type = viper.GetString("cache_type")
	cfg.Log.Level = viper.GetString("log_level")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logruslogger.Logger {
	return logruslogger.NewWithWriter(os.Stderr, cfg.Log.Level)
}
