package cmd

import (
	"strings"
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}

	expected := map[string]bool{
		"auth":     false,
		"words":    false,
		"tags":     false,
		"examples": false,
		"say":      false,
		"lookup":   false,
		"seed":     false,
	}

	for _, cmd := range rootCmd.Commands() {
		for key := range expected {
			if strings.HasPrefix(cmd.Use, key) {
				expected[key] = true
				break
			}
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("expected command '%s' to be registered with root command", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "profile", "output", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag '%s' to be defined", name)
		}
	}
}

func TestAuthCommandHasSubcommands(t *testing.T) {
	if authCmd == nil {
		t.Fatal("authCmd should not be nil")
	}

	expected := map[string]bool{
		"login":    false,
		"register": false,
		"logout":   false,
		"whoami":   false,
	}

	for _, cmd := range authCmd.Commands() {
		for key := range expected {
			if strings.HasPrefix(cmd.Use, key) {
				expected[key] = true
			}
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("auth command should have '%s' subcommand", name)
		}
	}
}

func TestWordsCommandHasSubcommands(t *testing.T) {
	if wordsCmd == nil {
		t.Fatal("wordsCmd should not be nil")
	}

	expected := map[string]bool{
		"list":   false,
		"get":    false,
		"save":   false,
		"delete": false,
		"note":   false,
	}

	for _, cmd := range wordsCmd.Commands() {
		for key := range expected {
			if strings.HasPrefix(cmd.Use, key) {
				expected[key] = true
			}
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("words command should have '%s' subcommand", name)
		}
	}
}

func TestExamplesCommandHasSubcommands(t *testing.T) {
	if examplesCmd == nil {
		t.Fatal("examplesCmd should not be nil")
	}

	expected := map[string]bool{
		"list":     false,
		"add":      false,
		"update":   false,
		"delete":   false,
		"generate": false,
	}

	for _, cmd := range examplesCmd.Commands() {
		for key := range expected {
			if strings.HasPrefix(cmd.Use, key) {
				expected[key] = true
			}
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("examples command should have '%s' subcommand", name)
		}
	}
}

func TestLoginCommandFlags(t *testing.T) {
	if authLoginCmd == nil {
		t.Fatal("authLoginCmd should not be nil")
	}

	for _, name := range []string{"username", "password", "api-url"} {
		if authLoginCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag '%s' to be defined on login command", name)
		}
	}
}

func TestWordsSaveCommandFlags(t *testing.T) {
	if wordsSaveCmd == nil {
		t.Fatal("wordsSaveCmd should not be nil")
	}

	for _, name := range []string{"tag", "cache"} {
		if wordsSaveCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag '%s' to be defined on words save command", name)
		}
	}
}

func TestGenerateCommandFlags(t *testing.T) {
	if examplesGenerateCmd == nil {
		t.Fatal("examplesGenerateCmd should not be nil")
	}

	for _, name := range []string{"context", "difficulty"} {
		if examplesGenerateCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag '%s' to be defined on examples generate command", name)
		}
	}
}

func TestSeedCommandFlags(t *testing.T) {
	if seedCmd == nil {
		t.Fatal("seedCmd should not be nil")
	}

	for _, name := range []string{"words", "tags"} {
		if seedCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag '%s' to be defined on seed command", name)
		}
	}
}
