package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	cachesqlite "github.com/custodia-labs/relnotes-cli/internal/adapters/driven/cache/sqlite"
)

var cacheDirFlag string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the change cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached fetch results",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := cachesqlite.NewStore(cacheDirFlag)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer store.Close()

		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		cmd.Println("Change cache cleared.")
		return nil
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache database path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := cachesqlite.NewStore(cacheDirFlag)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer store.Close()

		cmd.Println(store.Path())
		return nil
	},
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "cache directory (default ~/.relnotes/cache)")
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePathCmd)
	rootCmd.AddCommand(cacheCmd)
}
