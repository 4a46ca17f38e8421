package main

import (
	"os"

	"github.com/aigerimdev/vocabloom-cli/cmd"
	"github.com/aigerimdev/vocabloom-cli/pkg/output"
)

func main() {
	if err := cmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}
