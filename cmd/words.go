package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
	"github.com/aigerimdev/vocabloom-cli/internal/dictionary"
	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage your word collection",
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved words",
	RunE: func(cmd *cobra.Command, args []string) error {
		words := apiClient(cmd).Words()

		outputFormat, _ := cmd.Flags().GetString("output")
		if outputFormat == "json" {
			return output.JSON(words)
		}

		renderWords(words)
		return nil
	},
}

var wordsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one saved word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}

		word := apiClient(cmd).Word(id)
		if word == nil {
			return fmt.Errorf("word %d not found", id)
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
		if word.Note != nil && *word.Note != "" {
			output.Info("  note: %s", *word.Note)
		}
		return nil
	},
}

var wordsSaveCmd = &cobra.Command{
	Use:   "save <term>",
	Short: "Look a word up and save it to your collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := lookupClient(cmd).Lookup(args[0])
		if err != nil {
			return err
		}

		if tagID, _ := cmd.Flags().GetInt("tag"); tagID > 0 {
			word.Tag = &tagID
		}

		saved, err := apiClient(cmd).SaveWord(*word)
		if err != nil {
			if errors.Is(err, client.ErrWordDuplicate) {
				return fmt.Errorf("'%s' is already in your collection", word.Word)
			}
			return err
		}

		output.Success("Saved '%s' (id %d)", saved.Word, saved.ID)
		return nil
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a word from your collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}
		if !apiClient(cmd).DeleteWord(id) {
			return fmt.Errorf("could not delete word %d", id)
		}
		output.Success("Deleted word %d", id)
		return nil
	},
}

var wordsNoteCmd = &cobra.Command{
	Use:   "note <id> <text>",
	Short: "Set the personal note on a word",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}

		word, err := apiClient(cmd).UpdateWordNote(id, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		output.Success("Updated note on '%s'", word.Word)
		return nil
	},
}

// lookupClient builds the dictionary client, with the sqlite cache attached
// when --cache points at a file.
func lookupClient(cmd *cobra.Command) *dictionary.Client {
	c := dictionary.New("")
	if path, _ := cmd.Flags().GetString("cache"); path != "" {
		if cache, err := dictionary.OpenCache(path); err == nil {
			c.WithCache(cache)
		} else {
			output.Warn("lookup cache unavailable: %v", err)
		}
	}
	return c
}

func renderWords(words []client.Word) {
	table := output.NewTable([]string{"ID", "WORD", "PHONETIC", "MEANINGS", "NOTE"})
	for _, w := range words {
		note := ""
		if w.Note != nil {
			note = *w.Note
		}
		table.AddRow([]string{
			strconv.Itoa(w.ID),
			w.Word,
			w.Phonetic,
			strconv.Itoa(len(w.Meanings)),
			note,
		})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsGetCmd)
	wordsCmd.AddCommand(wordsSaveCmd)
	wordsCmd.AddCommand(wordsDeleteCmd)
	wordsCmd.AddCommand(wordsNoteCmd)

	wordsSaveCmd.Flags().Int("tag", 0, "Tag id to file the word under")
	wordsSaveCmd.Flags().String("cache", "", "Path to a local lookup cache (sqlite)")
}
