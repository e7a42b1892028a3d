// Package cli wires the hygrometer commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hygrometer/internal/config"
)

var version = "dev"

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hygrometer",
		Short: "Pick and bookmark regions from the terminal",
		Long: `hygrometer - look up regions by name and keep the ones you use.

Run without arguments for the home screen. Press / to search, B for bookmarks.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setupApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.runTUI(nil)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+configHint()+")")
	rootCmd.PersistentFlags().Bool("offline", false, "Use the built-in gazetteer instead of the geocoding API")

	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newBookmarksCmd())
	rootCmd.AddCommand(newBookmarkCmd())
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configHint() string {
	return config.DefaultDir() + "/config.toml"
}
