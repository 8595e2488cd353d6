package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/ui"
	"github.com/pachcadev/pachca-client/pkg/pachca"
)

var filesUploadAsImage bool
var filesUploadName string

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Upload files",
	Long:  "Provides commands to upload local files for later attachment to messages.",
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <local-file>",
	Short: "Upload a file",
	Long: `Uploads a local file through the negotiated direct-upload flow and
prints the storage key. Use 'messages send --file' to upload and attach
in one step.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := filesUploadLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func filesUploadLogic(a *app.App, cmd *cobra.Command, args []string) error {
	localPath := args[0]

	fileType := pachca.FileTypeFile
	if filesUploadAsImage {
		fileType = pachca.FileTypeImage
	}
	f, err := pachca.NewNamedFile(localPath, filesUploadName, fileType)
	if err != nil {
		return err
	}

	handle, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer handle.Close()

	bar := ui.NewProgressBar(int(f.Size), "Uploading "+f.Name)
	reader := ui.ProgressReader(handle, bar)

	if err := a.SDK.UploadFileFrom(cmd.Context(), f, reader); err != nil {
		return fmt.Errorf("uploading %s: %w", localPath, err)
	}

	key, _ := f.Key()
	ui.Success(fmt.Sprintf("Uploaded %s with key %s.", f.Name, key))
	return nil
}

func init() {
	filesUploadCmd.Flags().BoolVar(&filesUploadAsImage, "image", false, "Upload as an image attachment")
	filesUploadCmd.Flags().StringVar(&filesUploadName, "name", "", "Display name for the uploaded file")

	filesCmd.AddCommand(filesUploadCmd)
	rootCmd.AddCommand(filesCmd)
}
