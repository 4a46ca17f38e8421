package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aigerimdev/vocabloom-cli/internal/client"
	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Manage personal example sentences",
}

var examplesListCmd = &cobra.Command{
	Use:   "list <word-id>",
	Short: "List the examples attached to a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wordID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}

		examples := apiClient(cmd).UserExamples(wordID)

		outputFormat, _ := cmd.Flags().GetString("output")
		if outputFormat == "json" {
			return output.JSON(examples)
		}

		table := output.NewTable([]string{"ID", "EXAMPLE", "CREATED"})
		for _, e := range examples {
			table.AddRow([]string{strconv.Itoa(e.ID), e.ExampleText, e.CreatedAt})
		}
		table.Render()
		return nil
	},
}

var examplesAddCmd = &cobra.Command{
	Use:   "add <word-id> <text>",
	Short: "Attach an example sentence to a word",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wordID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}

		example, err := apiClient(cmd).CreateUserExample(wordID, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		output.Success("Added example %d", example.ID)
		return nil
	},
}

var examplesUpdateCmd = &cobra.Command{
	Use:   "update <word-id> <example-id> <text>",
	Short: "Replace the text of an example",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		wordID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}
		exampleID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid example id %q", args[1])
		}

		example, err := apiClient(cmd).UpdateUserExample(wordID, exampleID, strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		output.Success("Updated example %d", example.ID)
		return nil
	},
}

var examplesDeleteCmd = &cobra.Command{
	Use:   "delete <word-id> <example-id>",
	Short: "Delete an example",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wordID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}
		exampleID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid example id %q", args[1])
		}

		if !apiClient(cmd).DeleteUserExample(wordID, exampleID) {
			return fmt.Errorf("could not delete example %d", exampleID)
		}
		output.Success("Deleted example %d", exampleID)
		return nil
	},
}

var examplesGenerateCmd = &cobra.Command{
	Use:   "generate <word-id>",
	Short: "Generate an example sentence with AI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wordID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}

		context, _ := cmd.Flags().GetString("context")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		sentence := apiClient(cmd).GenerateExample(wordID, client.GenerateOptions{
			Context:    context,
			Difficulty: difficulty,
		})
		if sentence == "" {
			return errors.New("no example could be generated")
		}
		output.Info("%s", sentence)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
	examplesCmd.AddCommand(examplesListCmd)
	examplesCmd.AddCommand(examplesAddCmd)
	examplesCmd.AddCommand(examplesUpdateCmd)
	examplesCmd.AddCommand(examplesDeleteCmd)
	examplesCmd.AddCommand(examplesGenerateCmd)

	examplesGenerateCmd.Flags().String("context", "", "Context hint for the generated sentence")
	examplesGenerateCmd.Flags().String("difficulty", "", "beginner, intermediate or advanced")
}
