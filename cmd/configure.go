package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/ui"
	"github.com/pachcadev/pachca-client/pkg/pachca"
)

var configureToken string
var configureDelayMS int
var configureTimeoutS int
var configureSkipVerify bool

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save the API access token and client settings",
	Long: `Saves the Pachca API access token and optional tuning settings to the
configuration file in your home directory. By default the token is
verified against the API before saving.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewAppWithoutSDK(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := configureLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func configureLogic(a *app.App, cmd *cobra.Command, args []string) error {
	token := strings.TrimSpace(configureToken)
	if token == "" {
		return fmt.Errorf("an access token is required, pass it with --token")
	}

	a.Config.AccessToken = token
	if configureDelayMS > 0 {
		a.Config.APIDelayMS = configureDelayMS
	}
	if configureTimeoutS > 0 {
		a.Config.TimeoutS = configureTimeoutS
	}

	if !configureSkipVerify {
		client, err := pachca.NewClient(pachca.ClientConfig{
			AccessToken: token,
			APIDelay:    a.Config.APIDelay(),
			Timeout:     a.Config.Timeout(),
			Logger:      a.Logger,
		})
		if err != nil {
			return err
		}
		defer client.Close()

		userID, err := client.GetUserID(context.Background())
		if err != nil {
			return fmt.Errorf("verifying token: %w", err)
		}
		ui.Success(fmt.Sprintf("Token verified, user ID %d.", userID))
	}

	if err := a.Manager.Save(a.Config); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}
	ui.Success("Configuration saved.")
	return nil
}

func init() {
	configureCmd.Flags().StringVar(&configureToken, "token", "", "Pachca API access token")
	configureCmd.Flags().IntVar(&configureDelayMS, "api-delay-ms", 0, "Delay between API calls in milliseconds")
	configureCmd.Flags().IntVar(&configureTimeoutS, "timeout-s", 0, "Per-request timeout in seconds")
	configureCmd.Flags().BoolVar(&configureSkipVerify, "skip-verify", false, "Save without verifying the token against the API")
	rootCmd.AddCommand(configureCmd)
}
