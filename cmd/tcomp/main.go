package main

import (
	"os"

	"github.com/ajwalkiewicz/tcomp/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
