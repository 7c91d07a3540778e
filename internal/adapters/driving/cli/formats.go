package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/relnotes-cli/internal/core/services"
	"github.com/custodia-labs/relnotes-cli/internal/renderers"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available output formats",
	Run: func(cmd *cobra.Command, _ []string) {
		registry := services.NewRendererRegistry()
		renderers.RegisterDefaults(registry)

		cmd.Println("Available formats:")
		for _, format := range registry.Formats() {
			cmd.Printf("  %s\n", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
