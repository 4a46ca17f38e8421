package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

var sayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Speak text through the backend's text-to-speech",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		voice, _ := cmd.Flags().GetString("voice")

		path, err := apiClient(cmd).TextToSpeech(strings.Join(args, " "), voice)
		if err != nil {
			return err
		}
		if keep, _ := cmd.Flags().GetString("save"); keep != "" {
			return saveAudio(path, keep)
		}
		return client.PlayAudio(path)
	},
}

// saveAudio moves the synthesized audio out of the temp location, releasing
// the temp handle either way.
func saveAudio(tmpPath, dest string) error {
	defer os.Remove(tmpPath)

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return err
	}
	output.Success("Audio written to %s", dest)
	return nil
}

func init() {
	rootCmd.AddCommand(sayCmd)
	sayCmd.Flags().String("voice", "", "Voice id (default Joanna)")
	sayCmd.Flags().String("save", "", "Write the audio to a file instead of playing it")
}
