package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relnotes-cli/internal/adapters/driven/config/file"
)

var configDirFlag string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage relnotes configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active label mapping and defaults",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := file.NewConfigStore(configDirFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		cmd.Printf("Config file: %s\n\n", cfg.Path())

		mapping := cfg.CategoryMapping()
		cmd.Println("Label mapping:")
		labels := make([]string, 0, len(mapping.Labels))
		for label := range mapping.Labels {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			cmd.Printf("  %-20s -> %s\n", label, mapping.Labels[label])
		}
		cmd.Printf("\nCategory order: %v\n", mapping.Order)
		cmd.Printf("Default category: %s\n", mapping.Default)

		if f := cfg.GetString(file.KeyDefaultFormat); f != "" {
			cmd.Printf("Default format: %s\n", f)
		}
		if env := cfg.GetString(file.KeyTokenEnv); env != "" {
			cmd.Printf("Token environment variable: %s\n", env)
		}
		return nil
	},
}

var configSetMappingCmd = &cobra.Command{
	Use:   "set-mapping [label] [category]",
	Short: "Map a label to a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := file.NewConfigStore(configDirFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if err := cfg.Set(file.KeyMappingLabels+"."+args[0], args[1]); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		cmd.Printf("Mapped label %q to category %q\n", args[0], args[1])
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration key. Useful keys:
  mapping.default   category for changes with no mapped label
  output.format     default output format
  output.sort       asc or desc
  auth.token_env    environment variable holding the host token`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := file.NewConfigStore(configDirFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if err := cfg.Set(args[0], args[1]); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		cmd.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.relnotes)")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetMappingCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
