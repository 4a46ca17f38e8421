package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := apiClient(cmd).Tags()

		outputFormat, _ := cmd.Flags().GetString("output")
		if outputFormat == "json" {
			return output.JSON(tags)
		}

		table := output.NewTable([]string{"ID", "NAME"})
		for _, t := range tags {
			table.AddRow([]string{strconv.Itoa(t.ID), t.Name})
		}
		table.Render()
		return nil
	},
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := apiClient(cmd).CreateTag(args[0])
		if err != nil {
			if errors.Is(err, client.ErrTagDuplicate) {
				return fmt.Errorf("a tag named '%s' already exists", args[0])
			}
			return err
		}
		output.Success("Created tag '%s' (id %d)", tag.Name, tag.ID)
		return nil
	},
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid tag id %q", args[0])
		}
		if !apiClient(cmd).DeleteTag(id) {
			return fmt.Errorf("could not delete tag %d", id)
		}
		output.Success("Deleted tag %d", id)
		return nil
	},
}

var tagsWordsCmd = &cobra.Command{
	Use:   "words <id>",
	Short: "List the words filed under a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid tag id %q", args[0])
		}

		c := apiClient(cmd)
		words := c.WordsByTag(id)

		outputFormat, _ := cmd.Flags().GetString("output")
		if outputFormat == "json" {
			return output.JSON(words)
		}

		if tag := c.Tag(id); tag != nil {
			output.Info("Tag: %s", tag.Name)
		}
		renderWords(words)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsCreateCmd)
	tagsCmd.AddCommand(tagsDeleteCmd)
	tagsCmd.AddCommand(tagsWordsCmd)
}
