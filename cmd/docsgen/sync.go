package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docsgen/internal/pipeline"
	"github.com/pdiddy/docsgen/internal/source"
	"github.com/pdiddy/docsgen/pkg/types"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch content and rewrite the glossary and FAQ partials",
	Long: `Sync fetches the configured project's glossary definitions and FAQ
entries, builds the cross-reference table, and rewrites both markdown
partial files. Either both files are written or the run fails; a file
written before a later failure stays on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		if cfg.Project == "" {
			return fmt.Errorf("no project configured: set project in docsgen.yaml or DOCSGEN_PROJECT")
		}

		src, err := contentSource(cmd, cfg)
		if err != nil {
			return err
		}
		return pipeline.Run(cmd.Context(), src, cfg, os.Stderr)
	},
}

func init() {
	syncCmd.Flags().String("fixture", "", "read content from a local YAML fixture instead of Notion")

	rootCmd.AddCommand(syncCmd)
}

func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Project: viper.GetString("project"),
		Notion: types.NotionConfig{
			Token:      secretDefault("notion-api-key", viper.GetString("notion.token")),
			ProjectsDB: viper.GetString("notion.projects_db"),
			GlossaryDB: viper.GetString("notion.glossary_db"),
			FAQDB:      viper.GetString("notion.faq_db"),
		},
		Output: types.OutputConfig{
			GlossaryPath: viper.GetString("output.glossary_path"),
			FAQPath:      viper.GetString("output.faq_path"),
			GlossaryPage: viper.GetString("output.glossary_page"),
		},
	}
}

func contentSource(cmd *cobra.Command, cfg types.PipelineConfig) (source.ContentSource, error) {
	if fixture, _ := cmd.Flags().GetString("fixture"); fixture != "" {
		return source.NewFixtureSource(fixture)
	}
	return source.NewNotionSource(cfg.Notion)
}
