package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <term>",
	Short: "Look a word up in the public dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := lookupClient(cmd).Lookup(args[0])
		if err != nil {
			return err
		}

		outputFormat, _ := cmd.Flags().GetString("output")
		if outputFormat == "json" {
			return output.JSON(word)
		}

		output.Info("%s %s", word.Word, word.Phonetic)
		for _, m := range word.Meanings {
			output.Info("  [%s]", m.PartOfSpeech)
			for _, d := range m.Definitions {
				output.Bullet(2, "%s", d.Definition)
				if d.Example != "" {
					output.Bullet(3, "e.g. %s", d.Example)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().String("cache", "", "Path to a local lookup cache (sqlite)")
}
