package cmd

import (
	"github.com/spf13/cobra"

	"github.com/CalebHellmund/calebhellmund.github.io/internal/build"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, and static assets",
	Long: `The build command validates the project table, loads and validates the
Markdown posts under the content directory, renders every page through the
layouts directory, copies static assets and writes rss.xml and sitemap.xml into
the configured output directory (default './dist/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return build.Run(cmd.Context(), appConfig, currentSite(), logger)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
