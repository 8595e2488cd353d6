package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the user the access token belongs to",
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := profileLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func profileLogic(a *app.App, cmd *cobra.Command, args []string) error {
	user, err := a.SDK.GetProfile(cmd.Context())
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}
	ui.DisplayProfile(user)
	return nil
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
