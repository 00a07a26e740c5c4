package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// NewRootCommand creates the finctl command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finctl",
		Short:   "Finance dashboard administration and offline classification",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newKeygenCommand())

	return rootCmd
}
