package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	capabilitiesPath string
	verbose          bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modweaver",
		Short: "modweaver - capability-based dependency conflict resolution",
		Long: `modweaver narrows dependency conflict groups using capability declarations.

When several modules in a dependency graph claim to provide the same logical
capability, the declared preferred provider decides which candidates survive.
modweaver validates capability declarations and replays conflict-group
scenarios so narrowing decisions can be inspected outside a build.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&capabilitiesPath, "capabilities", "c", "capabilities.yaml", "capability declaration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newResolveCommand())

	return rootCmd
}
