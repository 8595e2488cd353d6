// Package cmd defines the command-line interface of pachca-client. Each
// command is a thin cobra wrapper around a testable logic function that
// takes the application container.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "pachca-client",
	Short: "A CLI client for the Pachca messenger",
	Long: `pachca-client is a command-line interface tool to interact with the
Pachca team messenger over its shared API.

Current capabilities include:
  - Access token management (configure, profile)
  - Chat operations (list, find, get, create, update, archive)
  - Member management (list, add, role changes, removal)
  - Messaging (send, edit, pin, delete, list chat history)
  - Threads (open, inspect, reply)
  - File uploads with attachment to messages

All API access uses the token saved by 'pachca-client configure'.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. This
// is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging for SDK and internal operations")
}
