package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
	"github.com/aigerimdev/vocabloom-cli/internal/config"
	"github.com/aigerimdev/vocabloom-cli/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vocabloom",
	Short: "Vocabloom CLI",
	Long: `vocabloom is the command-line client for the Vocabloom vocabulary trainer.

Look up definitions, save words to your collection, organize them with tags,
attach notes and example sentences, and listen to pronunciations.`,
	Version: "0.1.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.vocabloom/config.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "profile to use (default: current profile)")
	rootCmd.PersistentFlags().String("output", "table", "output format: table, json")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
		cfg = config.Default()
	}
}

// apiClient builds the authenticated API client for the selected profile.
func apiClient(cmd *cobra.Command) *client.Client {
	profile, _ := cmd.Flags().GetString("profile")
	level, _ := cmd.Flags().GetString("log-level")

	c := client.New(cfg.ResolveAPIURL(profile), cfg.TokenStore(profile))
	c.SetLogger(logging.New(logging.ParseLevel(level), "text"))
	return c
}
