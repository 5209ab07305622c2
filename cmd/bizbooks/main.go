package main

import (
	"os"

	"github.com/bizbooks-dev/bizbooks/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
