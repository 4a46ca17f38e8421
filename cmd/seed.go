package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/internal/logging"
	"github.com/aigerimdev/vocabloom-cli/internal/seeder"
	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the account with generated demo words and tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		words, _ := cmd.Flags().GetInt("words")
		tags, _ := cmd.Flags().GetInt("tags")
		level, _ := cmd.Flags().GetString("log-level")

		s := seeder.New(apiClient(cmd), logging.New(logging.ParseLevel(level), "text"))
		stats, err := s.Run(words, tags)
		if stats != nil {
			output.Info("Created %d words and %d tags (%d duplicates skipped)",
				stats.WordsCreated, stats.TagsCreated, stats.Duplicates)
		}
		if err != nil {
			return err
		}
		output.Success("Seeding complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int("words", 10, "Number of words to generate")
	seedCmd.Flags().Int("tags", 3, "Number of tags to generate")
}
