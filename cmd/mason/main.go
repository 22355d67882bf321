package main

import (
	"os"

	"github.com/mason-build/mason/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.CreateCmd())
	rootCmd.AddCommand(commands.LinkCmd())
	rootCmd.AddCommand(commands.ListCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
