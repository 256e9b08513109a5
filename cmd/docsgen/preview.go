package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docsgen/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the generated partials to HTML for inspection",
	Long: `Preview converts the glossary and FAQ markdown partials into sibling
.html files so the rendered output can be checked in a browser without
building the documentation site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := []string{
			viper.GetString("output.glossary_path"),
			viper.GetString("output.faq_path"),
		}
		for _, path := range paths {
			out, err := preview.File(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Rendered %s\n", out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
