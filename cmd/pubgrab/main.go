// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubgrab CLI, which compiles
// HTML publication lists from the CRISTIN registry for lists of authors.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pubgrab CLI.
var rootCmd = &cobra.Command{
	Use:   "pubgrab",
	Short: "Compile HTML bibliographies from the CRISTIN registry",
	Long: `pubgrab retrieves publication records for named researchers from the
CRISTIN database of Norwegian scientific publications, removes duplicates
across co-authored papers, and renders an HTML citation list, most recent
year first.

Authors are given as names or CRISTIN person IDs, on the command line, in
a YAML roster file, or on stdin (one per line).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetLevel(log.DebugLevel)
		}
		log.SetOutput(os.Stderr)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubgrab.yaml or ~/.config/pubgrab/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "log debug messages")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubgrab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubgrab"))
		}
	}

	viper.SetEnvPrefix("PUBGRAB")
	viper.AutomaticEnv()

	viper.SetDefault("registry.timeout", "60s")
	viper.SetDefault("registry.user_agent", "pubgrab/"+version)
	viper.SetDefault("registry.max_retries", 5)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("build.from_year", 1900)
	viper.SetDefault("build.to_year", 9999)
	viper.SetDefault("build.category", "TIDSSKRIFTPUBL")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
