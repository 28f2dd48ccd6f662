// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the alcu-explorer terminal UI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd launches the explorer. Search parameters (query, categories,
// result cap, year range) are collected interactively; the config file
// only carries ambient settings such as the download directory and
// courtesy delays.
var rootCmd = &cobra.Command{
	Use:   "alcu-explorer",
	Short: "Interactive arXiv explorer for Al-Cu dissimilar welding papers",
	Long: `alcu-explorer queries arXiv for papers on aluminum-copper dissimilar
welding, filters them by category and publication year, downloads the
matching PDFs sequentially, and shows the resulting metadata table with
CSV and YAML export.`,
	RunE: runExplore,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./alcu-explorer.yaml or ~/.config/alcu-explorer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("alcu-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "alcu-explorer"))
		}
	}

	viper.SetEnvPrefix("ALCU_EXPLORER")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
