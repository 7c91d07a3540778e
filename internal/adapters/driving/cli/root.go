// Package cli implements the command-line adapter. Commands are thin:
// they parse flags, assemble the pipeline from adapters, and call the
// driving ports.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/relnotes-cli/internal/logger"
)

var (
	version     = "dev"
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "relnotes",
	Short: "Generate release notes from merged changes between two tags",
	Long: `relnotes fetches the pull requests merged between two tags of a hosted
repository, groups them by label, and renders release notes in Markdown,
JSON, HTML, CSV, or styled terminal output.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command with the build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
