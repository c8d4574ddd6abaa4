package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mail",
	Short: "Laravel-style mail CLI",
	Long:  `A command line tool for rendering email views and sending them through the configured mailer.`,
}

// Execute runs the root command and exits on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// GetRoot returns the root command so packages can register subcommands
func GetRoot() *cobra.Command {
	return rootCmd
}

// SetInfo overrides the name and descriptions of the root command
func SetInfo(use, short, long string) {
	if use != "" {
		rootCmd.Use = use
	}
	if short != "" {
		rootCmd.Short = short
	}
	if long != "" {
		rootCmd.Long = long
	}
}
