// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docsgen CLI, which renders a
// project's glossary and FAQ content from Notion into markdown partials
// for the documentation site.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docsgen/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the docsgen CLI.
var rootCmd = &cobra.Command{
	Use:   "docsgen",
	Short: "Generate documentation partials from Notion content",
	Long: `docsgen fetches a project's glossary definitions and FAQ entries from
Notion and renders them into two static markdown partial files for
inclusion in the documentation site.

sync runs the whole fetch-and-render pipeline; preview converts the
generated partials to HTML for local inspection.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docsgen.yaml or ~/.config/docsgen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docsgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docsgen"))
		}
	}

	viper.SetEnvPrefix("DOCSGEN")
	viper.AutomaticEnv()

	viper.SetDefault("output.glossary_path", filepath.Join("docs", "partials", "glossary.md"))
	viper.SetDefault("output.faq_path", filepath.Join("docs", "partials", "faq.md"))
	viper.SetDefault("output.glossary_page", "/docs/glossary")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
