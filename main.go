package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wildcam/config"
	"wildcam/logging"
)

var (
	// configFile 由 --config 指定
	configFile string

	// cfg 在 PersistentPreRunE 中加载
	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wildcam",
	Short: "Wildlife camera video catalog with user sighting tags",
	Long: `wildcam serves a curated list of wildlife-cam recordings and lets
visitors add timestamped animal sightings, which are stored in an
append-only ledger and merged into the list on every read.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: $WILDCAM_CONFIG or ./wildcam.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(importLegacyCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configFile)
	if err != nil {
		return err
	}
	cfg = c

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return nil
}
