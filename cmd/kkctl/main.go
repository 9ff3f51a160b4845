// Package main is the operator CLI: schema migrations, seed data, the first admin
// account and cache maintenance.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"kentkonut/cmd/kkctl/internal/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "kkctl",
		Short:         "Kent Konut CMS operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	commands.Register(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
