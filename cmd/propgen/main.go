package main

import (
	"os"

	"github.com/teranos/propgen/cmd/propgen/commands"
	"github.com/teranos/propgen/logger"
)

func main() {
	err := commands.Execute()
	logger.Cleanup()
	if err != nil {
		os.Exit(1)
	}
}
